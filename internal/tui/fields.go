package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/felixgeelhaar/questionnaire/internal/console"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

// skipLabel is the option offered for optional select questions
const skipLabel = "(skip)"

// fieldFor builds the huh field that renders q in s. Every field edits a
// plain string; toAnswer turns it back into an answer of q's kind.
func fieldFor(s *survey.Session, q survey.Question, value *string) huh.Field {
	title := q.Prompt
	if q.Required {
		title += " *"
	}
	desc := q.Description
	if s.Flagged(q.ID) {
		desc = strings.TrimSpace(desc + "\nThis question is required")
	}

	if q.Kind.Tag() == survey.KindFreeText {
		if q.Kind.Multiline() {
			return huh.NewText().
				Key(q.ID).
				Title(title).
				Description(desc).
				Lines(4).
				Value(value)
		}
		return huh.NewInput().
			Key(q.ID).
			Title(title).
			Description(desc).
			Value(value)
	}

	return huh.NewSelect[string]().
		Key(q.ID).
		Title(title).
		Description(desc).
		Options(optionsFor(q, hasAnswer(s, q.ID))...).
		Value(value)
}

// optionsFor lists the select options for every non-text kind. Skipping
// a rating clears it; choice, scale and boolean answers cannot be cleared,
// so they only offer the skip option while still unanswered.
func optionsFor(q survey.Question, answered bool) []huh.Option[string] {
	var opts []huh.Option[string]
	if !q.Required && (!answered || q.Kind.Tag() == survey.KindRating) {
		opts = append(opts, huh.NewOption(skipLabel, ""))
	}

	k := q.Kind
	switch k.Tag() {
	case survey.KindRating:
		stars := k.MaxStars()
		for n := 1; n <= stars; n++ {
			label := strings.Repeat("★", n) + strings.Repeat("☆", stars-n)
			opts = append(opts, huh.NewOption(label, strconv.Itoa(n)))
		}
	case survey.KindSingleChoice:
		for _, o := range k.Options() {
			opts = append(opts, huh.NewOption(o, o))
		}
	case survey.KindLinearScale:
		lo, hi := k.Bounds()
		for n := lo; n <= hi; n++ {
			opts = append(opts, huh.NewOption(strconv.Itoa(n), strconv.Itoa(n)))
		}
	case survey.KindBoolean:
		opts = append(opts, huh.NewOption("Yes", "yes"), huh.NewOption("No", "no"))
	}
	return opts
}

func hasAnswer(s *survey.Session, id string) bool {
	_, ok := s.Get(id)
	return ok
}

// currentValue renders the stored answer for id as a field value
func currentValue(s *survey.Session, id string) string {
	a, ok := s.Get(id)
	if !ok {
		return ""
	}
	switch a.Tag() {
	case survey.KindRating, survey.KindLinearScale:
		return strconv.Itoa(a.Int())
	case survey.KindBoolean:
		if a.Bool() {
			return "yes"
		}
		return "no"
	default:
		return a.Text()
	}
}

// toAnswer converts a field value into an answer for q. An empty value
// clears ratings and text; for the other kinds it records nothing and ok
// is false.
func toAnswer(q survey.Question, value string) (a survey.Answer, ok bool, err error) {
	if strings.TrimSpace(value) == "" {
		switch q.Kind.Tag() {
		case survey.KindRating:
			return survey.RatingAnswer(0), true, nil
		case survey.KindFreeText:
			return survey.TextAnswer(""), true, nil
		default:
			return survey.Answer{}, false, nil
		}
	}
	switch q.Kind.Tag() {
	case survey.KindFreeText:
		// Typed text is kept verbatim apart from surrounding blanks
		return survey.TextAnswer(strings.TrimSpace(value)), true, nil
	case survey.KindSingleChoice:
		// Select values are the option itself; the store checks membership
		return survey.ChoiceAnswer(value), true, nil
	}
	a, err = console.ParseInput(q, value)
	if err != nil {
		return survey.Answer{}, false, fmt.Errorf("%s: %w", q.ID, err)
	}
	return a, true, nil
}

// record stores value as the answer to q
func record(s *survey.Session, q survey.Question, value string) error {
	a, ok, err := toAnswer(q, value)
	if err != nil || !ok {
		return err
	}
	_, err = s.Answer(q.ID, a)
	return err
}
