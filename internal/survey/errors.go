package survey

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/questionnaire/internal/errors"
)

// Sentinels for errors.Is. Returned errors carry the same code plus details,
// so compare with errors.Is rather than ==.
var (
	ErrEmptyCatalog               = errors.New(errors.ErrCodeCatalogEmpty, "catalog has no questions")
	ErrDuplicateQuestionID        = errors.New(errors.ErrCodeCatalogDuplicateID, "duplicate question id")
	ErrInvalidQuestion            = errors.New(errors.ErrCodeCatalogInvalidQuestion, "invalid question")
	ErrUnknownQuestion            = errors.New(errors.ErrCodeAnswerUnknownQuestion, "unknown question")
	ErrTypeMismatch               = errors.New(errors.ErrCodeAnswerTypeMismatch, "answer does not match question kind")
	ErrAtFirstStep                = errors.New(errors.ErrCodeNavAtFirstStep, "already at the first question")
	ErrAtLastStep                 = errors.New(errors.ErrCodeNavAtLastStep, "already at the last question")
	ErrOutOfRange                 = errors.New(errors.ErrCodeNavOutOfRange, "step out of range")
	ErrRequiredQuestionUnanswered = errors.New(errors.ErrCodeNavRequiredUnanswered, "required question unanswered")
	ErrNavigationUnavailable      = errors.New(errors.ErrCodeNavUnavailable, "navigation is not available in single-page mode")
	ErrValidationFailed           = errors.New(errors.ErrCodeSubmitValidationFailed, "required questions unanswered")
	ErrNoAnswersProvided          = errors.New(errors.ErrCodeSubmitNoAnswers, "no answers provided")
	ErrSessionAlreadySubmitted    = errors.New(errors.ErrCodeSessionAlreadySubmitted, "session already submitted")
)

func emptySession() error {
	return errors.New(errors.ErrCodeCatalogEmpty, "session needs a catalog with questions").
		WithSuggestion("Build the catalog with NewCatalog")
}

func atFirstStep() error {
	return errors.New(errors.ErrCodeNavAtFirstStep, "already at the first question")
}

func atLastStep() error {
	return errors.New(errors.ErrCodeNavAtLastStep, "already at the last question").
		WithSuggestion("Submit from the last question")
}

func unknownQuestion(id string) error {
	return errors.New(errors.ErrCodeAnswerUnknownQuestion, fmt.Sprintf("unknown question %q", id)).
		WithQuestions(id)
}

func typeMismatch(id string, cause error) error {
	return errors.Wrap(errors.ErrCodeAnswerTypeMismatch, fmt.Sprintf("invalid answer for %q", id), cause).
		WithQuestions(id)
}

func requiredUnanswered(id string) error {
	return errors.New(errors.ErrCodeNavRequiredUnanswered, fmt.Sprintf("question %q is required", id)).
		WithQuestions(id).
		WithSuggestion("Answer the question before moving on")
}

func outOfRange(step, total int) error {
	return errors.New(errors.ErrCodeNavOutOfRange, fmt.Sprintf("step %d outside [0, %d]", step, total-1))
}

func validationFailed(ids []string) error {
	return errors.New(errors.ErrCodeSubmitValidationFailed,
		fmt.Sprintf("required questions unanswered: %s", strings.Join(ids, ", "))).
		WithQuestions(ids...)
}

func noAnswers() error {
	return errors.New(errors.ErrCodeSubmitNoAnswers, "no answers provided").
		WithSuggestion("Answer at least one question before submitting")
}

func alreadySubmitted() error {
	return errors.New(errors.ErrCodeSessionAlreadySubmitted, "session already submitted")
}

func navigationUnavailable() error {
	return errors.New(errors.ErrCodeNavUnavailable, "navigation is not available in single-page mode")
}
