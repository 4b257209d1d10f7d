package survey

import (
	"strconv"
)

// Answer is a value tagged with the kind it belongs to.
// The zero Answer carries no tag and never fits a question.
type Answer struct {
	tag  KindTag
	num  int
	text string
	flag bool
}

// RatingAnswer is a star count; 0 means "no rating"
func RatingAnswer(stars int) Answer {
	return Answer{tag: KindRating, num: stars}
}

// TextAnswer is a free text value
func TextAnswer(s string) Answer {
	return Answer{tag: KindFreeText, text: s}
}

// ChoiceAnswer is the selected option
func ChoiceAnswer(option string) Answer {
	return Answer{tag: KindSingleChoice, text: option}
}

// ScaleAnswer is a point on a linear scale
func ScaleAnswer(n int) Answer {
	return Answer{tag: KindLinearScale, num: n}
}

// BoolAnswer is a yes/no answer
func BoolAnswer(b bool) Answer {
	return Answer{tag: KindBoolean, flag: b}
}

// Tag returns the kind the answer was built for
func (a Answer) Tag() KindTag { return a.tag }

// Int returns the number of a rating or scale answer
func (a Answer) Int() int { return a.num }

// Text returns the string of a text or choice answer
func (a Answer) Text() string { return a.text }

// Bool returns the value of a boolean answer
func (a Answer) Bool() bool { return a.flag }

// IsZero reports whether a was never set
func (a Answer) IsZero() bool { return a.tag == "" }

// Value returns the answer as a plain Go value (int, string or bool)
func (a Answer) Value() any {
	switch a.tag {
	case KindRating, KindLinearScale:
		return a.num
	case KindFreeText, KindSingleChoice:
		return a.text
	case KindBoolean:
		return a.flag
	default:
		return nil
	}
}

// String renders the raw value
func (a Answer) String() string {
	switch a.tag {
	case KindRating, KindLinearScale:
		return strconv.Itoa(a.num)
	case KindFreeText, KindSingleChoice:
		return a.text
	case KindBoolean:
		if a.flag {
			return "yes"
		}
		return "no"
	default:
		return ""
	}
}

// AnswerFromValue builds an answer of the given kind from a plain value,
// as decoded from JSON, YAML or TOML. Numbers may arrive as int, int64 or float64.
func AnswerFromValue(tag KindTag, v any) (Answer, bool) {
	switch tag {
	case KindRating, KindLinearScale:
		n, ok := toInt(v)
		if !ok {
			return Answer{}, false
		}
		return Answer{tag: tag, num: n}, true
	case KindFreeText, KindSingleChoice:
		s, ok := v.(string)
		if !ok {
			return Answer{}, false
		}
		return Answer{tag: tag, text: s}, true
	case KindBoolean:
		b, ok := v.(bool)
		if !ok {
			return Answer{}, false
		}
		return BoolAnswer(b), true
	default:
		return Answer{}, false
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
