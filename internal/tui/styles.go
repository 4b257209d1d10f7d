package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/questionnaire/internal/domain"
)

// Styles contains lipgloss styles for the TUI
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Card     lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")), // Purple
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}

// themeFor picks the huh theme a style is drawn with
func themeFor(style domain.Style) *huh.Theme {
	switch style {
	case domain.StyleFullscreen:
		return huh.ThemeCharm()
	case domain.StylePage:
		return huh.ThemeCatppuccin()
	default:
		return huh.ThemeBase()
	}
}

// frame wraps a rendered question according to style. Compact questions sit
// in a bordered card; the other styles use the full width.
func (s Styles) frame(style domain.Style, body string, width int) string {
	if style != domain.StyleCompact {
		return body
	}
	card := s.Card
	if width > 8 && width < 84 {
		card = card.Width(width - 4)
	} else {
		card = card.Width(80)
	}
	return card.Render(body)
}
