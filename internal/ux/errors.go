package ux

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/questionnaire/internal/errors"
)

// ErrorWithSuggestion wraps an error with helpful recovery suggestions
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap provides access to the underlying error
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// EnhanceError adds a suggestion to errors that carry none. Coded errors
// already list their own suggestions and are returned unchanged.
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}
	var se *errors.SurveyError
	if stderrors.As(err, &se) {
		return err
	}

	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "no such file or directory") && strings.Contains(errMsg, "config.yaml"):
		return NewErrorWithSuggestion(err,
			"Run 'questionnaire config path' to see where the configuration is expected")
	case strings.Contains(errMsg, "no such file or directory"):
		return NewErrorWithSuggestion(err,
			"Check the path, or list built-in catalogs with 'questionnaire presets list'")
	case strings.Contains(errMsg, "permission denied"):
		return NewErrorWithSuggestion(err,
			"Check file permissions and ensure you have access to the required files/directories")
	case strings.Contains(errMsg, "database is locked") || strings.Contains(errMsg, "SQLITE_BUSY"):
		return NewErrorWithSuggestion(err,
			"Another questionnaire process is writing to the archive; retry when it finishes")
	case strings.Contains(errMsg, "unknown configuration key"):
		return NewErrorWithSuggestion(err,
			"Run 'questionnaire config view' to see the available keys")
	}
	return err
}

// FormatError provides consistent error formatting with context
func FormatError(err error, context string) error {
	if err == nil {
		return nil
	}

	enhanced := EnhanceError(err)
	if context != "" {
		return fmt.Errorf("%s: %w", context, enhanced)
	}
	return enhanced
}
