package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

// ciEnvVars mark environments where nobody can answer a prompt
var ciEnvVars = []string{
	"CI",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_URL",
	"TRAVIS",
	"CIRCLECI",
	"BUILDKITE",
}

// presetOptions lists presets as select options keyed by name
func presetOptions(presets []survey.Preset) []huh.Option[string] {
	opts := make([]huh.Option[string], len(presets))
	for i, p := range presets {
		opts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", p.Title, p.Name), p.Name)
	}
	return opts
}

// PickPreset asks the respondent which preset to start and returns its name
func PickPreset(presets []survey.Preset) (string, error) {
	if len(presets) == 0 {
		return "", fmt.Errorf("no presets available")
	}

	selected := presets[0].Name
	field := huh.NewSelect[string]().
		Title("Which questionnaire would you like to fill in?").
		Options(presetOptions(presets)...).
		Value(&selected)

	if err := huh.NewForm(huh.NewGroup(field)).Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return selected, nil
}

// IsInteractive returns true if stdin is a terminal (not piped)
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// ShouldPrompt returns true if prompts should be shown based on environment.
// Prompts are disabled in CI environments or when stdin is not a terminal.
func ShouldPrompt() bool {
	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return false
		}
	}
	return IsInteractive()
}
