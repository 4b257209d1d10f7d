package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

// Canonicalize returns a stable JSON form of c for hashing.
// Prompts and descriptions are included: rewording a question changes the fingerprint.
func Canonicalize(c *survey.Catalog) ([]byte, error) {
	questions := make([]map[string]interface{}, 0, c.Len())
	for _, q := range c.Questions() {
		entry := map[string]interface{}{
			"id":          q.ID,
			"kind":        q.Kind.Tag().String(),
			"prompt":      q.Prompt,
			"description": q.Description,
			"required":    q.Required,
		}
		switch q.Kind.Tag() {
		case survey.KindRating:
			entry["max_stars"] = q.Kind.MaxStars()
		case survey.KindFreeText:
			entry["multiline"] = q.Kind.Multiline()
		case survey.KindSingleChoice:
			entry["options"] = q.Kind.Options()
		case survey.KindLinearScale:
			lo, hi := q.Kind.Bounds()
			entry["min"], entry["max"] = lo, hi
		}
		questions = append(questions, entry)
	}

	// encoding/json sorts map keys, so only slice order matters
	return json.Marshal(map[string]interface{}{
		"name":      c.Name(),
		"questions": questions,
	})
}

// Fingerprint returns the hex blake3 hash of the canonical catalog
func Fingerprint(c *survey.Catalog) (string, error) {
	canonical, err := Canonicalize(c)
	if err != nil {
		return "", fmt.Errorf("canonicalize catalog: %w", err)
	}

	hasher := blake3.New()
	if _, err := hasher.Write(canonical); err != nil {
		return "", fmt.Errorf("hash catalog: %w", err)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}
