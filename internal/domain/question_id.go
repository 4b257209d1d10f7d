package domain

import (
	"fmt"
	"regexp"
)

// QuestionID represents the identifier joining a catalog question to its answer.
// This is a value object that enforces valid ID formats.
type QuestionID string

var (
	// questionIDPattern allows letters, digits, underscores, dots and hyphens,
	// starting with a letter or digit
	questionIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

	// maxQuestionIDLength is the maximum allowed length for a question ID
	maxQuestionIDLength = 100
)

// NewQuestionID creates a new QuestionID value object with validation
func NewQuestionID(value string) (QuestionID, error) {
	id := QuestionID(value)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate checks if the question ID is valid
func (q QuestionID) Validate() error {
	s := string(q)

	if s == "" {
		return fmt.Errorf("question ID cannot be empty")
	}

	if len(s) > maxQuestionIDLength {
		return fmt.Errorf("question ID %q exceeds maximum length of %d characters", s, maxQuestionIDLength)
	}

	if !questionIDPattern.MatchString(s) {
		return fmt.Errorf("question ID %q must start with a letter or digit and contain only letters, digits, '_', '.' and '-'", s)
	}

	return nil
}

// String returns the string representation
func (q QuestionID) String() string {
	return string(q)
}
