package survey

import (
	"fmt"
	"strings"
)

// KindTag names the shape of a question's answer
type KindTag string

const (
	KindRating       KindTag = "rating"
	KindFreeText     KindTag = "text"
	KindSingleChoice KindTag = "choice"
	KindLinearScale  KindTag = "scale"
	KindBoolean      KindTag = "boolean"
)

// String returns the tag name
func (t KindTag) String() string {
	return string(t)
}

// ParseKindTag accepts the tag names plus the aliases used by catalog authors
// (star, textarea, mcq, yesno, ...).
func ParseKindTag(s string) (KindTag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rating", "star", "stars":
		return KindRating, nil
	case "text", "textarea", "freetext", "free_text":
		return KindFreeText, nil
	case "choice", "mcq", "single_choice", "singlechoice":
		return KindSingleChoice, nil
	case "scale", "linear_scale", "linearscale", "nps":
		return KindLinearScale, nil
	case "boolean", "bool", "yesno", "yes_no":
		return KindBoolean, nil
	default:
		return "", fmt.Errorf("unknown question kind %q (expected rating, text, choice, scale or boolean)", s)
	}
}

// Kind is the tagged variant describing what a question accepts.
// Build one with Rating, FreeText, SingleChoice, LinearScale or Boolean.
type Kind struct {
	tag       KindTag
	maxStars  int
	multiline bool
	options   []string
	min, max  int
}

// DefaultMaxStars is the star count used when a catalog omits it
const DefaultMaxStars = 5

// Upper limits for rating and scale questions; every point is one option
// in a select field.
const (
	MaxRatingStars = 10
	MaxScaleSpan   = 100
)

// Rating accepts an integer in [1, maxStars]
func Rating(maxStars int) Kind {
	return Kind{tag: KindRating, maxStars: maxStars}
}

// FreeText accepts any string; multiline only affects rendering
func FreeText(multiline bool) Kind {
	return Kind{tag: KindFreeText, multiline: multiline}
}

// SingleChoice accepts exactly one of options
func SingleChoice(options ...string) Kind {
	return Kind{tag: KindSingleChoice, options: append([]string(nil), options...)}
}

// LinearScale accepts an integer in [min, max]
func LinearScale(min, max int) Kind {
	return Kind{tag: KindLinearScale, min: min, max: max}
}

// Boolean accepts true or false; unanswered stays distinct from false
func Boolean() Kind {
	return Kind{tag: KindBoolean}
}

// Tag returns the variant tag
func (k Kind) Tag() KindTag { return k.tag }

// MaxStars returns the rating ceiling (Rating only)
func (k Kind) MaxStars() int { return k.maxStars }

// Multiline reports whether free text spans several lines (FreeText only)
func (k Kind) Multiline() bool { return k.multiline }

// Options returns a copy of the choices (SingleChoice only)
func (k Kind) Options() []string { return append([]string(nil), k.options...) }

// Bounds returns the inclusive scale bounds (LinearScale only)
func (k Kind) Bounds() (min, max int) { return k.min, k.max }

// Validate checks the kind's own parameters
func (k Kind) Validate() error {
	switch k.tag {
	case KindRating:
		if k.maxStars < 1 {
			return fmt.Errorf("rating needs at least one star, got %d", k.maxStars)
		}
		if k.maxStars > MaxRatingStars {
			return fmt.Errorf("rating allows at most %d stars, got %d", MaxRatingStars, k.maxStars)
		}
	case KindFreeText, KindBoolean:
	case KindSingleChoice:
		if len(k.options) == 0 {
			return fmt.Errorf("single choice needs at least one option")
		}
		seen := make(map[string]bool, len(k.options))
		for _, opt := range k.options {
			if strings.TrimSpace(opt) == "" {
				return fmt.Errorf("single choice options cannot be blank")
			}
			if seen[opt] {
				return fmt.Errorf("duplicate option %q", opt)
			}
			seen[opt] = true
		}
	case KindLinearScale:
		if k.min >= k.max {
			return fmt.Errorf("scale min (%d) must be lower than max (%d)", k.min, k.max)
		}
		// a negative span means the subtraction overflowed
		if span := k.max - k.min; span < 0 || span > MaxScaleSpan {
			return fmt.Errorf("scale spans at most %d points, got %d to %d", MaxScaleSpan, k.min, k.max)
		}
	case "":
		return fmt.Errorf("question kind is not set")
	default:
		return fmt.Errorf("unknown question kind %q", k.tag)
	}
	return nil
}

// Check reports whether a fits this kind. Rating 0 and an empty string are
// accepted: they are the kind's empty representation.
func (k Kind) Check(a Answer) error {
	if a.tag != k.tag {
		return fmt.Errorf("%s answer given to a %s question", describeTag(a.tag), k.tag)
	}

	switch k.tag {
	case KindRating:
		if a.num < 0 || a.num > k.maxStars {
			return fmt.Errorf("rating %d outside [1, %d]", a.num, k.maxStars)
		}
	case KindSingleChoice:
		for _, opt := range k.options {
			if opt == a.text {
				return nil
			}
		}
		return fmt.Errorf("%q is not one of %s", a.text, strings.Join(k.options, ", "))
	case KindLinearScale:
		if a.num < k.min || a.num > k.max {
			return fmt.Errorf("scale value %d outside [%d, %d]", a.num, k.min, k.max)
		}
	}
	return nil
}

// IsEmpty reports whether a is this kind's unanswered representation
func (k Kind) IsEmpty(a Answer) bool {
	if a.tag == "" {
		return true
	}
	switch k.tag {
	case KindRating:
		return a.num == 0
	case KindFreeText:
		return a.text == ""
	default:
		return false
	}
}

// String renders the kind with its parameters, e.g. "scale(0..10)"
func (k Kind) String() string {
	switch k.tag {
	case KindRating:
		return fmt.Sprintf("rating(%d)", k.maxStars)
	case KindFreeText:
		if k.multiline {
			return "text(multiline)"
		}
		return "text"
	case KindSingleChoice:
		return fmt.Sprintf("choice(%s)", strings.Join(k.options, "|"))
	case KindLinearScale:
		return fmt.Sprintf("scale(%d..%d)", k.min, k.max)
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

func describeTag(t KindTag) string {
	if t == "" {
		return "empty"
	}
	return string(t)
}
