package tui

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/felixgeelhaar/questionnaire/internal/console"
	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

// pageForm holds one rendering of a single-page session: every question in
// one scrolling group, each bound to its own value.
type pageForm struct {
	form   *huh.Form
	values map[string]*string
}

// newPageForm builds the page for s. Flagged questions carry the
// required marker and message is shown above the questions.
func newPageForm(s *survey.Session, style domain.Style, message string) *pageForm {
	c := s.Catalog()
	p := &pageForm{values: make(map[string]*string, c.Len())}

	fields := make([]huh.Field, 0, c.Len()+1)
	if message != "" {
		fields = append(fields, huh.NewNote().Title(message))
	}
	for _, q := range c.Questions() {
		v := currentValue(s, q.ID)
		p.values[q.ID] = &v
		fields = append(fields, fieldFor(s, q, &v))
	}

	group := huh.NewGroup(fields...).
		Title(c.Title()).
		Description(c.Description())
	p.form = huh.NewForm(group).WithTheme(themeFor(style))
	return p
}

// apply records every field value on s. It returns the first conversion
// or storage error.
func (p *pageForm) apply(s *survey.Session) error {
	var first error
	for _, q := range s.Catalog().Questions() {
		v, ok := p.values[q.ID]
		if !ok {
			continue
		}
		if err := record(s, q, *v); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// RunPage shows every question on one form and submits when the form is
// confirmed. A failed submit shows the form again with the flagged questions
// marked until submission succeeds or the respondent aborts.
func RunPage(ctx context.Context, s *survey.Session, style domain.Style) (survey.Snapshot, error) {
	message := ""
	for {
		p := newPageForm(s, style, message)
		if err := p.form.RunWithContext(ctx); err != nil {
			if stderrors.Is(err, huh.ErrUserAborted) {
				return survey.Snapshot{}, console.ErrAborted
			}
			return survey.Snapshot{}, fmt.Errorf("run form: %w", err)
		}

		if err := p.apply(s); err != nil {
			message = console.Explain(s.Catalog(), err)
			continue
		}
		snap, err := s.Submit()
		if err == nil {
			return snap, nil
		}
		if stderrors.Is(err, survey.ErrSessionAlreadySubmitted) {
			return survey.Snapshot{}, err
		}
		message = console.Explain(s.Catalog(), err)
	}
}
