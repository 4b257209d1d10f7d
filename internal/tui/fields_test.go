package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

func reviewCatalog(t testing.TB) *survey.Catalog {
	t.Helper()
	c, err := survey.NewCatalog("review", []survey.Question{
		{ID: "stars", Prompt: "Rate the product", Kind: survey.Rating(5), Required: true},
		{ID: "pick", Prompt: "Favourite part", Kind: survey.SingleChoice("Price", "Quality")},
		{ID: "nps", Prompt: "Recommend us?", Kind: survey.LinearScale(0, 10)},
		{ID: "again", Prompt: "Buy again?", Kind: survey.Boolean(), Required: true},
		{ID: "notes", Prompt: "Anything else?", Kind: survey.FreeText(true)},
	}, survey.WithTitle("Product Review"))
	require.NoError(t, err)
	return c
}

func newSession(t testing.TB, mode domain.Mode) *survey.Session {
	t.Helper()
	s, err := survey.New(reviewCatalog(t), survey.WithMode(mode))
	require.NoError(t, err)
	return s
}

func question(t testing.TB, c *survey.Catalog, id string) survey.Question {
	t.Helper()
	q, ok := c.Lookup(id)
	require.True(t, ok, id)
	return q
}

func TestOptionsFor(t *testing.T) {
	c := reviewCatalog(t)

	tests := []struct {
		id        string
		wantFirst string
		wantLen   int
	}{
		{"stars", "1", 5},   // required: no skip
		{"pick", "", 3},     // skip + 2 options
		{"nps", "", 12},     // skip + 0..10
		{"again", "yes", 2}, // required boolean
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			opts := optionsFor(question(t, c, tt.id), false)
			require.Len(t, opts, tt.wantLen)
			assert.Equal(t, tt.wantFirst, opts[0].Value)
		})
	}

	stars := optionsFor(question(t, c, "stars"), false)
	assert.Equal(t, "★★★☆☆", stars[2].Key)
	assert.Equal(t, skipLabel, optionsFor(question(t, c, "pick"), false)[0].Key)
}

func TestOptionsForAnsweredQuestionOffersNoSkip(t *testing.T) {
	s := newSession(t, domain.ModePage)
	c := s.Catalog()

	require.NoError(t, record(s, question(t, c, "pick"), "Price"))
	require.NoError(t, record(s, question(t, c, "nps"), "7"))

	for _, id := range []string{"pick", "nps"} {
		opts := optionsFor(question(t, c, id), hasAnswer(s, id))
		for _, o := range opts {
			assert.NotEqual(t, skipLabel, o.Key, id)
		}
	}

	// an optional rating can still be cleared
	optional, err := survey.NewCatalog("optional", []survey.Question{
		{ID: "stars", Prompt: "Rate", Kind: survey.Rating(3)},
	})
	require.NoError(t, err)
	opts := optionsFor(question(t, optional, "stars"), true)
	assert.Equal(t, skipLabel, opts[0].Key)
}

func TestPageFormKeepsChosenAnswersOnRetry(t *testing.T) {
	s := newSession(t, domain.ModePage)
	c := s.Catalog()
	require.NoError(t, record(s, question(t, c, "pick"), "Quality"))
	require.NoError(t, record(s, question(t, c, "again"), "no"))

	// the re-shown form starts from the stored answers, never from a skip
	p := newPageForm(s, domain.StylePage, "")
	assert.Equal(t, "Quality", *p.values["pick"])
	assert.Equal(t, "no", *p.values["again"])
	require.NoError(t, p.apply(s))

	got, ok := s.Get("pick")
	require.True(t, ok)
	assert.Equal(t, survey.ChoiceAnswer("Quality"), got)
}

func TestNumericChoiceOptions(t *testing.T) {
	c, err := survey.NewCatalog("team", []survey.Question{
		{ID: "team", Prompt: "Team size", Kind: survey.SingleChoice("5", "10", "1")},
	})
	require.NoError(t, err)
	q := question(t, c, "team")

	s, err := survey.New(c, survey.WithMode(domain.ModePage))
	require.NoError(t, err)

	for _, option := range []string{"1", "10", "5"} {
		require.NoError(t, record(s, q, option), option)
		got, ok := s.Get("team")
		require.True(t, ok)
		assert.Equal(t, option, got.Text())
		assert.Equal(t, option, currentValue(s, "team"))
	}

	assert.Error(t, record(s, q, "2"), "a select value is never read as an index")
}

func TestToAnswer(t *testing.T) {
	c := reviewCatalog(t)

	tests := []struct {
		name    string
		id      string
		value   string
		want    survey.Answer
		wantOK  bool
		wantErr bool
	}{
		{"rating", "stars", "4", survey.RatingAnswer(4), true, false},
		{"rating cleared", "stars", "", survey.RatingAnswer(0), true, false},
		{"choice", "pick", "Quality", survey.ChoiceAnswer("Quality"), true, false},
		{"choice skipped", "pick", "", survey.Answer{}, false, false},
		{"scale", "nps", "0", survey.ScaleAnswer(0), true, false},
		{"boolean", "again", "no", survey.BoolAnswer(false), true, false},
		{"multiline text kept", "notes", " line one\nline two ", survey.TextAnswer("line one\nline two"), true, false},
		{"text cleared", "notes", "   ", survey.TextAnswer(""), true, false},
		{"bad rating", "stars", "many", survey.Answer{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := toAnswer(question(t, c, tt.id), tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrentValueRoundTrip(t *testing.T) {
	s := newSession(t, domain.ModePage)
	c := s.Catalog()

	values := map[string]string{
		"stars": "3",
		"pick":  "Price",
		"nps":   "9",
		"again": "yes",
		"notes": "fast\ndelivery",
	}
	for id, v := range values {
		require.NoError(t, record(s, question(t, c, id), v))
	}
	for id, v := range values {
		assert.Equal(t, v, currentValue(s, id), id)
	}

	require.NoError(t, record(s, question(t, c, "stars"), ""))
	assert.Equal(t, "", currentValue(s, "stars"))
	assert.Equal(t, 4, s.Answered())
}

func TestThemeFor(t *testing.T) {
	for _, style := range []domain.Style{domain.StyleCompact, domain.StyleFullscreen, domain.StylePage} {
		assert.NotNil(t, themeFor(style), style)
	}
}
