package catalog

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/errors"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

// Document is the on-disk shape of a catalog, shared by YAML, JSON and TOML
type Document struct {
	Name        string          `json:"name" yaml:"name" toml:"name"`
	Title       string          `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Mode        string          `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty"`
	Questions   []QuestionEntry `json:"questions" yaml:"questions" toml:"questions"`
}

// QuestionEntry is one question in a catalog file.
// Kind-specific fields are ignored by other kinds.
type QuestionEntry struct {
	ID          string   `json:"id" yaml:"id" toml:"id"`
	Type        string   `json:"type" yaml:"type" toml:"type"`
	Prompt      string   `json:"prompt" yaml:"prompt" toml:"prompt"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Required    bool     `json:"required,omitempty" yaml:"required,omitempty" toml:"required,omitempty"`
	MaxStars    int      `json:"max_stars,omitempty" yaml:"max_stars,omitempty" toml:"max_stars,omitempty"`
	Multiline   bool     `json:"multiline,omitempty" yaml:"multiline,omitempty" toml:"multiline,omitempty"`
	Options     []string `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
	Min         *int     `json:"min,omitempty" yaml:"min,omitempty" toml:"min,omitempty"`
	Max         *int     `json:"max,omitempty" yaml:"max,omitempty" toml:"max,omitempty"`
}

// Scale bounds used when a catalog omits them
const (
	DefaultScaleMin = 1
	DefaultScaleMax = 10
)

// kind builds the survey kind described by the entry
func (e QuestionEntry) kind() (survey.Kind, error) {
	tag, err := survey.ParseKindTag(e.Type)
	if err != nil {
		return survey.Kind{}, err
	}

	switch tag {
	case survey.KindRating:
		stars := e.MaxStars
		if stars == 0 {
			stars = survey.DefaultMaxStars
		}
		return survey.Rating(stars), nil
	case survey.KindFreeText:
		// "textarea" implies multiline
		return survey.FreeText(e.Multiline || strings.EqualFold(e.Type, "textarea")), nil
	case survey.KindSingleChoice:
		return survey.SingleChoice(e.Options...), nil
	case survey.KindLinearScale:
		lo, hi := DefaultScaleMin, DefaultScaleMax
		if e.Min != nil {
			lo = *e.Min
		}
		if e.Max != nil {
			hi = *e.Max
		}
		return survey.LinearScale(lo, hi), nil
	default:
		return survey.Boolean(), nil
	}
}

// Catalog validates the document and builds the survey catalog
func (d Document) Catalog() (*survey.Catalog, error) {
	questions := make([]survey.Question, len(d.Questions))
	for i, e := range d.Questions {
		k, err := e.kind()
		if err != nil {
			id := e.ID
			if id == "" {
				id = fmt.Sprintf("#%d", i+1)
			}
			return nil, errors.NewCatalogInvalidError(id, err.Error())
		}
		questions[i] = survey.Question{
			ID:          e.ID,
			Prompt:      e.Prompt,
			Description: e.Description,
			Kind:        k,
			Required:    e.Required,
		}
	}

	return survey.NewCatalog(d.Name, questions,
		survey.WithTitle(d.Title),
		survey.WithDescription(d.Description))
}

// SessionMode returns the mode the document asks for, or fallback when unset
func (d Document) SessionMode(fallback domain.Mode) (domain.Mode, error) {
	if d.Mode == "" {
		return fallback, nil
	}
	return domain.NewMode(d.Mode)
}

// FromCatalog converts a catalog back into its file form
func FromCatalog(c *survey.Catalog, mode domain.Mode) Document {
	doc := Document{
		Name:        c.Name(),
		Description: c.Description(),
		Mode:        string(mode),
	}
	if c.Title() != c.Name() {
		doc.Title = c.Title()
	}

	for _, q := range c.Questions() {
		e := QuestionEntry{
			ID:          q.ID,
			Type:        q.Kind.Tag().String(),
			Prompt:      q.Prompt,
			Description: q.Description,
			Required:    q.Required,
		}
		switch q.Kind.Tag() {
		case survey.KindRating:
			e.MaxStars = q.Kind.MaxStars()
		case survey.KindFreeText:
			e.Multiline = q.Kind.Multiline()
		case survey.KindSingleChoice:
			e.Options = q.Kind.Options()
		case survey.KindLinearScale:
			lo, hi := q.Kind.Bounds()
			e.Min, e.Max = &lo, &hi
		}
		doc.Questions = append(doc.Questions, e)
	}
	return doc
}

// FromPreset converts a built-in preset into its file form
func FromPreset(p survey.Preset) (Document, error) {
	c, err := p.Catalog()
	if err != nil {
		return Document{}, err
	}
	return FromCatalog(c, p.Mode), nil
}
