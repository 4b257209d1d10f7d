package domain

import "fmt"

// Mode selects how a questionnaire session is navigated.
type Mode string

const (
	// ModeSequential shows one question at a time with a step index
	ModeSequential Mode = "sequential"
	// ModePage shows every question at once on a single page
	ModePage Mode = "page"
)

// NewMode creates a new Mode value object with validation
func NewMode(value string) (Mode, error) {
	m := Mode(value)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate checks if the mode is valid
func (m Mode) Validate() error {
	switch m {
	case ModeSequential, ModePage:
		return nil
	default:
		return fmt.Errorf("invalid mode %q: must be sequential or page", string(m))
	}
}

// String returns the string representation
func (m Mode) String() string {
	return string(m)
}

// IsSequential reports whether the mode keeps a step index
func (m Mode) IsSequential() bool {
	return m == ModeSequential
}
