package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Catalog errors (CATALOG-001 to CATALOG-099)
	ErrCodeCatalogEmpty           ErrorCode = "CATALOG-001"
	ErrCodeCatalogDuplicateID     ErrorCode = "CATALOG-002"
	ErrCodeCatalogInvalidQuestion ErrorCode = "CATALOG-003"

	// Answer errors (ANSWER-001 to ANSWER-099)
	ErrCodeAnswerUnknownQuestion ErrorCode = "ANSWER-001"
	ErrCodeAnswerTypeMismatch    ErrorCode = "ANSWER-002"

	// Navigation errors (NAV-001 to NAV-099)
	ErrCodeNavAtFirstStep        ErrorCode = "NAV-001"
	ErrCodeNavAtLastStep         ErrorCode = "NAV-002"
	ErrCodeNavOutOfRange         ErrorCode = "NAV-003"
	ErrCodeNavRequiredUnanswered ErrorCode = "NAV-004"
	ErrCodeNavUnavailable        ErrorCode = "NAV-005"

	// Submission errors (SUBMIT-001 to SUBMIT-099)
	ErrCodeSubmitValidationFailed ErrorCode = "SUBMIT-001"
	ErrCodeSubmitNoAnswers        ErrorCode = "SUBMIT-002"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionAlreadySubmitted ErrorCode = "SESSION-001"

	// Preset errors (PRESET-001 to PRESET-099)
	ErrCodePresetUnknown ErrorCode = "PRESET-001"

	// Archive errors (ARCHIVE-001 to ARCHIVE-099)
	ErrCodeArchiveOpen     ErrorCode = "ARCHIVE-001"
	ErrCodeArchiveNotFound ErrorCode = "ARCHIVE-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeDirectoryFailed ErrorCode = "IO-004"
	ErrCodeFileUnmarshal   ErrorCode = "IO-005"
	ErrCodeFileMarshal     ErrorCode = "IO-006"
)

// SurveyError represents an enhanced error with code, affected questions,
// suggestions, and documentation
type SurveyError struct {
	Code        ErrorCode
	Message     string
	QuestionIDs []string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *SurveyError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *SurveyError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a SurveyError with the same code.
// Sentinels declared with New match every error carrying their code.
func (e *SurveyError) Is(target error) bool {
	t, ok := target.(*SurveyError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a new SurveyError
func New(code ErrorCode, message string) *SurveyError {
	return &SurveyError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new SurveyError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *SurveyError {
	return &SurveyError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithQuestions records the question ids the error refers to
func (e *SurveyError) WithQuestions(ids ...string) *SurveyError {
	e.QuestionIDs = append(e.QuestionIDs, ids...)
	return e
}

// WithSuggestion adds a suggestion to the error
func (e *SurveyError) WithSuggestion(suggestion string) *SurveyError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *SurveyError) WithSuggestions(suggestions ...string) *SurveyError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *SurveyError) WithDocs(url string) *SurveyError {
	e.DocsURL = url
	return e
}

// CodeOf returns the code of the first SurveyError in err's chain, or ""
func CodeOf(err error) ErrorCode {
	var se *SurveyError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}

// QuestionsOf returns the question ids attached to the first SurveyError in err's chain
func QuestionsOf(err error) []string {
	var se *SurveyError
	if stderrors.As(err, &se) {
		return se.QuestionIDs
	}
	return nil
}

// Common error constructors for frequently used errors

// NewPresetUnknownError creates an unknown preset error
func NewPresetUnknownError(preset string, known []string) *SurveyError {
	return New(ErrCodePresetUnknown, fmt.Sprintf("unknown preset: %s", preset)).
		WithSuggestion("Run 'questionnaire presets list' to see available presets").
		WithSuggestion(fmt.Sprintf("Use one of: %s", strings.Join(known, ", ")))
}

// NewCatalogInvalidError creates an invalid catalog question error
func NewCatalogInvalidError(id string, details string) *SurveyError {
	return New(ErrCodeCatalogInvalidQuestion, fmt.Sprintf("invalid question %q: %s", id, details)).
		WithQuestions(id).
		WithSuggestion("Run 'questionnaire catalog validate <file>' to check the catalog")
}

// NewArchiveNotFoundError creates a missing archived response error
func NewArchiveNotFoundError(id string) *SurveyError {
	return New(ErrCodeArchiveNotFound, fmt.Sprintf("response not found in archive: %s", id)).
		WithSuggestion("Run 'questionnaire responses list' to see archived responses")
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string) *SurveyError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify the file exists and you have read permissions")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *SurveyError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
