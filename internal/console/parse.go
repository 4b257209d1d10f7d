package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

// ParseInput turns one line of user input into an answer for q.
//
//   - rating: a number, or a run of '*' characters ("***" is 3)
//   - text: the line as typed; in multiline questions "\n" starts a new line
//   - choice: an option number, an exact option (any case), or a fuzzy match
//   - scale: a number
//   - boolean: y/yes/true/1 or n/no/false/0
func ParseInput(q survey.Question, input string) (survey.Answer, error) {
	trimmed := strings.TrimSpace(input)

	switch q.Kind.Tag() {
	case survey.KindRating:
		if trimmed != "" && strings.Trim(trimmed, "*") == "" {
			return survey.RatingAnswer(len(trimmed)), nil
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return survey.Answer{}, fmt.Errorf("enter a number from 1 to %d", q.Kind.MaxStars())
		}
		return survey.RatingAnswer(n), nil

	case survey.KindFreeText:
		if q.Kind.Multiline() {
			return survey.TextAnswer(strings.ReplaceAll(trimmed, `\n`, "\n")), nil
		}
		return survey.TextAnswer(trimmed), nil

	case survey.KindSingleChoice:
		option, err := MatchOption(q.Kind.Options(), trimmed)
		if err != nil {
			return survey.Answer{}, err
		}
		return survey.ChoiceAnswer(option), nil

	case survey.KindLinearScale:
		lo, hi := q.Kind.Bounds()
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return survey.Answer{}, fmt.Errorf("enter a number from %d to %d", lo, hi)
		}
		return survey.ScaleAnswer(n), nil

	case survey.KindBoolean:
		switch strings.ToLower(trimmed) {
		case "y", "yes", "true", "1":
			return survey.BoolAnswer(true), nil
		case "n", "no", "false", "0":
			return survey.BoolAnswer(false), nil
		}
		return survey.Answer{}, fmt.Errorf("answer yes or no")

	default:
		return survey.Answer{}, fmt.Errorf("unsupported question kind %q", q.Kind.Tag())
	}
}

// MatchOption resolves input against options: a case-insensitive exact
// match first, then a 1-based index, then the single best fuzzy match.
func MatchOption(options []string, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("choose one of: %s", strings.Join(options, ", "))
	}

	for _, opt := range options {
		if strings.EqualFold(opt, input) {
			return opt, nil
		}
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(options) {
			return "", fmt.Errorf("choose a number from 1 to %d", len(options))
		}
		return options[n-1], nil
	}

	matches := fuzzy.Find(input, options)
	switch {
	case len(matches) == 0:
		return "", fmt.Errorf("%q matches none of: %s", input, strings.Join(options, ", "))
	case len(matches) > 1 && matches[0].Score == matches[1].Score:
		return "", fmt.Errorf("%q is ambiguous: %s or %s", input, matches[0].Str, matches[1].Str)
	default:
		return matches[0].Str, nil
	}
}
