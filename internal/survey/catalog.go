package survey

import (
	"fmt"

	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/errors"
)

// Question is one immutable entry of a catalog
type Question struct {
	ID          string
	Prompt      string
	Description string
	Kind        Kind
	Required    bool
}

// Validate checks the id, prompt and kind of q
func (q Question) Validate() error {
	if err := domain.QuestionID(q.ID).Validate(); err != nil {
		return errors.NewCatalogInvalidError(q.ID, err.Error())
	}
	if q.Prompt == "" {
		return errors.NewCatalogInvalidError(q.ID, "prompt is empty")
	}
	if err := q.Kind.Validate(); err != nil {
		return errors.NewCatalogInvalidError(q.ID, err.Error())
	}
	return nil
}

// Catalog is the ordered, validated list of questions a session runs over.
// It is never mutated after NewCatalog returns.
type Catalog struct {
	name        string
	title       string
	description string
	questions   []Question
	index       map[string]int
}

// CatalogOption sets optional catalog metadata
type CatalogOption func(*Catalog)

// WithTitle sets the human readable title
func WithTitle(title string) CatalogOption {
	return func(c *Catalog) { c.title = title }
}

// WithDescription sets the introduction shown before the first question
func WithDescription(description string) CatalogOption {
	return func(c *Catalog) { c.description = description }
}

// NewCatalog validates questions and returns an immutable catalog.
//
// Errors (match with errors.Is):
//   - ErrEmptyCatalog when questions is empty
//   - ErrInvalidQuestion for a malformed id, empty prompt or invalid kind
//   - ErrDuplicateQuestionID when two questions share an id
func NewCatalog(name string, questions []Question, opts ...CatalogOption) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, errors.New(errors.ErrCodeCatalogEmpty, fmt.Sprintf("catalog %q has no questions", name)).
			WithSuggestion("Add at least one question to the catalog")
	}

	c := &Catalog{
		name:      name,
		questions: make([]Question, len(questions)),
		index:     make(map[string]int, len(questions)),
	}
	for _, opt := range opts {
		opt(c)
	}

	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if first, dup := c.index[q.ID]; dup {
			return nil, errors.New(errors.ErrCodeCatalogDuplicateID,
				fmt.Sprintf("question id %q used at positions %d and %d", q.ID, first+1, i+1)).
				WithQuestions(q.ID)
		}
		c.index[q.ID] = i
		c.questions[i] = q
	}

	return c, nil
}

// Name returns the catalog name
func (c *Catalog) Name() string { return c.name }

// Title returns the title, falling back to the name
func (c *Catalog) Title() string {
	if c.title == "" {
		return c.name
	}
	return c.title
}

// Description returns the introduction text
func (c *Catalog) Description() string { return c.description }

// Len returns the number of questions
func (c *Catalog) Len() int { return len(c.questions) }

// At returns the question at position i
func (c *Catalog) At(i int) (Question, bool) {
	if i < 0 || i >= len(c.questions) {
		return Question{}, false
	}
	return c.questions[i], true
}

// Lookup returns the question with the given id
func (c *Catalog) Lookup(id string) (Question, bool) {
	i, ok := c.index[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// IndexOf returns the position of id
func (c *Catalog) IndexOf(id string) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// Questions returns a copy of the questions in order
func (c *Catalog) Questions() []Question {
	return append([]Question(nil), c.questions...)
}

// IDs returns the question ids in order
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.questions))
	for i, q := range c.questions {
		ids[i] = q.ID
	}
	return ids
}

// Required returns the ids of required questions in order
func (c *Catalog) Required() []string {
	var ids []string
	for _, q := range c.questions {
		if q.Required {
			ids = append(ids, q.ID)
		}
	}
	return ids
}
