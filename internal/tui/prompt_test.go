package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

func TestShouldPromptInCI(t *testing.T) {
	for _, envVar := range ciEnvVars {
		t.Run(envVar, func(t *testing.T) {
			t.Setenv(envVar, "true")
			assert.False(t, ShouldPrompt())
		})
	}
}

func TestPickPresetWithoutPresets(t *testing.T) {
	_, err := PickPreset(nil)
	assert.Error(t, err)
}

func TestPresetOptions(t *testing.T) {
	presets := survey.Presets()
	opts := presetOptions(presets)
	require.Len(t, opts, len(presets))
	for i, p := range presets {
		assert.Equal(t, p.Name, opts[i].Value)
		assert.Contains(t, opts[i].Key, p.Title)
	}
}
