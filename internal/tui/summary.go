package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

// RenderSummary renders a response summary as styled terminal markdown.
// Pass "notty" as glamourStyle for plain output; empty picks a style from
// the terminal background.
func RenderSummary(sum survey.Summary, glamourStyle string, width int) (string, error) {
	opts := []glamour.TermRendererOption{}
	if glamourStyle == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(glamourStyle))
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(sum.Markdown())
	if err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return out, nil
}
