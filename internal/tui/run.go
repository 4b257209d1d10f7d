package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/felixgeelhaar/questionnaire/internal/console"
	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

// Run presents s in the terminal until it is submitted. Sequential sessions
// use one screen per question; single-page sessions use one long form.
// An empty style falls back to the mode's default.
func Run(ctx context.Context, s *survey.Session, style domain.Style) (survey.Snapshot, error) {
	if style == "" {
		style = domain.DefaultStyleFor(s.Mode())
	}
	if err := style.Validate(); err != nil {
		return survey.Snapshot{}, err
	}
	if s.Mode().IsSequential() {
		return RunSequential(ctx, s, style)
	}
	return RunPage(ctx, s, style)
}

// RunSequential starts the one-question-per-screen TUI
func RunSequential(ctx context.Context, s *survey.Session, style domain.Style) (survey.Snapshot, error) {
	model := NewSequentialModel(s, style)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if style == domain.StyleFullscreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)

	finalModel, err := p.Run()
	if err != nil {
		return survey.Snapshot{}, fmt.Errorf("run TUI: %w", err)
	}

	m, ok := finalModel.(*SequentialModel)
	if !ok {
		return survey.Snapshot{}, fmt.Errorf("invalid final model type")
	}
	if !m.Completed() {
		return survey.Snapshot{}, console.ErrAborted
	}
	return m.Snapshot(), nil
}
