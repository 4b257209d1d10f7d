package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/questionnaire/internal/catalog"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

func TestListPresets(t *testing.T) {
	list := listPresets()
	require.Len(t, list, len(survey.PresetNames()))

	var service presetInfo
	for _, p := range list {
		if p.Name == "service-review" {
			service = p
		}
	}
	assert.Equal(t, "Share Your Feedback", service.Title)
	assert.Equal(t, "sequential", service.Mode)
	assert.Equal(t, 5, service.Questions)
	assert.Equal(t, 1, service.Required)

	rows := list.Rows()
	require.Len(t, rows, len(list))
	for _, row := range rows {
		assert.Len(t, row, len(list.Headers()))
	}
}

func TestExportPresetRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, name := range survey.PresetNames() {
		for _, ext := range []string{".yaml", ".json", ".toml"} {
			t.Run(name+ext, func(t *testing.T) {
				p, err := survey.LookupPreset(name)
				require.NoError(t, err)

				path := filepath.Join(dir, name+ext)
				require.NoError(t, exportPreset(p, path))

				report, err := validateCatalogFile(path)
				require.NoError(t, err)
				assert.Equal(t, len(p.Questions), report.Questions)
				assert.Equal(t, p.Mode, report.Mode)

				c, err := p.Catalog()
				require.NoError(t, err)
				want, err := catalog.Fingerprint(c)
				require.NoError(t, err)
				assert.Equal(t, want, report.Fingerprint, "exported catalog keeps the preset fingerprint")
			})
		}
	}
}

func TestExportPresetUnknownExtension(t *testing.T) {
	p, err := survey.LookupPreset("service-review")
	require.NoError(t, err)

	err = exportPreset(p, filepath.Join(t.TempDir(), "survey.xml"))
	assert.Error(t, err)
}
