package catalog

import (
	"fmt"

	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/errors"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

// Source is a resolved catalog together with where it came from
type Source struct {
	Catalog     *survey.Catalog
	Mode        domain.Mode
	Fingerprint string
	Origin      string // "preset:<name>" or the file path
}

// Resolve loads a catalog from a preset name or a file path; exactly one must be set.
// The mode comes from the preset or document, defaulting to sequential.
func Resolve(preset, path string) (*Source, error) {
	switch {
	case preset != "" && path != "":
		return nil, errors.New(errors.ErrCodeCatalogInvalidQuestion, "both a preset and a catalog file were given").
			WithSuggestion("Use either --preset or --catalog")
	case preset != "":
		return resolvePreset(preset)
	case path != "":
		return resolveFile(path)
	default:
		return nil, errors.New(errors.ErrCodePresetUnknown, "no catalog selected").
			WithSuggestion("Pass --preset NAME or --catalog FILE").
			WithSuggestion(fmt.Sprintf("Available presets: %v", survey.PresetNames()))
	}
}

func resolvePreset(name string) (*Source, error) {
	p, err := survey.LookupPreset(name)
	if err != nil {
		return nil, err
	}
	c, err := p.Catalog()
	if err != nil {
		return nil, err
	}
	return newSource(c, p.Mode, "preset:"+name)
}

func resolveFile(path string) (*Source, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	c, err := doc.Catalog()
	if err != nil {
		return nil, err
	}
	mode, err := doc.SessionMode(domain.ModeSequential)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalogInvalidQuestion, "invalid catalog mode", err)
	}
	return newSource(c, mode, path)
}

func newSource(c *survey.Catalog, mode domain.Mode, origin string) (*Source, error) {
	fp, err := Fingerprint(c)
	if err != nil {
		return nil, err
	}
	return &Source{Catalog: c, Mode: mode, Fingerprint: fp, Origin: origin}, nil
}
