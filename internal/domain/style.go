package domain

import "fmt"

// Style is the presentation variant a rendering delegate draws questions in.
// Styles are cosmetic; every style renders the same question kinds.
type Style string

const (
	StyleCompact    Style = "compact"    // Card-sized, one question per screen
	StyleFullscreen Style = "fullscreen" // Immersive, alternate screen
	StylePage       Style = "page"       // Long scrolling page
)

// NewStyle creates a new Style value object with validation
func NewStyle(value string) (Style, error) {
	s := Style(value)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks if the style is valid
func (s Style) Validate() error {
	switch s {
	case StyleCompact, StyleFullscreen, StylePage:
		return nil
	default:
		return fmt.Errorf("invalid style %q: must be compact, fullscreen, or page", string(s))
	}
}

// String returns the string representation
func (s Style) String() string {
	return string(s)
}

// DefaultStyleFor returns the style a mode is usually presented in
func DefaultStyleFor(m Mode) Style {
	if m == ModePage {
		return StylePage
	}
	return StyleCompact
}
