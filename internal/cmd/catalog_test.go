package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/questionnaire/internal/errors"
)

const onboardingCatalog = `name: onboarding
title: Onboarding Check-in
mode: page
questions:
  - id: clarity
    prompt: How clear was the onboarding?
    type: scale
    min: 1
    max: 5
    required: true
  - id: buddy
    prompt: Did you have a buddy?
    type: boolean
  - id: notes
    prompt: Anything else?
    type: text
    multiline: true
`

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateCatalogFile(t *testing.T) {
	path := writeCatalog(t, "onboarding.yaml", onboardingCatalog)

	report, err := validateCatalogFile(path)
	require.NoError(t, err)

	assert.Equal(t, "onboarding", report.Name)
	assert.Equal(t, "Onboarding Check-in", report.Title)
	assert.Equal(t, "page", report.Mode.String())
	assert.Equal(t, 3, report.Questions)
	assert.Equal(t, "1", report.Required)
	assert.Len(t, report.Fingerprint, 64)
	assert.Contains(t, report.String(), "is valid")
}

func TestValidateCatalogFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := validateCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeFileNotFound, errors.CodeOf(err))
	})

	t.Run("duplicate ids", func(t *testing.T) {
		path := writeCatalog(t, "dup.yaml", `name: dup
title: Dup
questions:
  - id: a
    prompt: First
    type: boolean
  - id: a
    prompt: Second
    type: boolean
`)
		_, err := validateCatalogFile(path)
		require.Error(t, err)
		assert.Contains(t, errors.QuestionsOf(err), "a")
	})

	t.Run("scale too wide to render", func(t *testing.T) {
		path := writeCatalog(t, "wide.yaml", `name: wide
questions:
  - id: budget
    prompt: Budget
    type: scale
    min: 0
    max: 1000000000
`)
		_, err := validateCatalogFile(path)
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeCatalogInvalidQuestion, errors.CodeOf(err))
	})

	t.Run("no questions", func(t *testing.T) {
		path := writeCatalog(t, "empty.yaml", "name: empty\ntitle: Empty\nquestions: []\n")
		_, err := validateCatalogFile(path)
		assert.Error(t, err)
	})
}
