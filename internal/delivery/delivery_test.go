package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/errors"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

func submittedSession(t *testing.T, opts ...survey.Option) (*survey.Session, survey.Snapshot) {
	t.Helper()
	c, err := survey.NewCatalog("feedback", []survey.Question{
		{ID: "stars", Prompt: "Rate us", Kind: survey.Rating(5), Required: true},
		{ID: "again", Prompt: "Again?", Kind: survey.Boolean()},
		{ID: "notes", Prompt: "Notes", Kind: survey.FreeText(true)},
	}, survey.WithTitle("Feedback"))
	require.NoError(t, err)

	s, err := survey.New(c, opts...)
	require.NoError(t, err)
	_, err = s.Answer("stars", survey.RatingAnswer(4))
	require.NoError(t, err)
	_, err = s.Answer("again", survey.BoolAnswer(false))
	require.NoError(t, err)
	snap, err := s.Submit()
	require.NoError(t, err)
	return s, snap
}

func sampleResponse(t *testing.T) Response {
	t.Helper()
	s, snap := submittedSession(t)
	return NewResponse(Meta{
		SessionID:   s.ID(),
		Catalog:     s.Catalog(),
		Fingerprint: "abc123",
		Mode:        s.Mode(),
	}, snap)
}

func TestNewResponse(t *testing.T) {
	r := sampleResponse(t)

	assert.NotEmpty(t, r.ID)
	assert.NotEmpty(t, r.SessionID)
	assert.Equal(t, "feedback", r.Catalog)
	assert.Equal(t, "Feedback", r.Title)
	assert.Equal(t, domain.ModeSequential, r.Mode)
	assert.WithinDuration(t, time.Now(), r.SubmittedAt, time.Minute)
	assert.Equal(t, 2, r.Answers.Len())
}

func TestEncode(t *testing.T) {
	r := sampleResponse(t)

	data, err := Encode(r, FormatJSON)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, map[string]any{"stars": float64(4), "again": false}, decoded["answers"])
	assert.Equal(t, "abc123", decoded["fingerprint"])

	data, err = Encode(r, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "answers:\n    stars: 4\n    again: false\n")
	var y map[string]any
	require.NoError(t, yaml.Unmarshal(data, &y))
	assert.Equal(t, "feedback", y["catalog"])
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "response.json")
	r := sampleResponse(t)

	require.NoError(t, NewFileSink(path, FormatJSON).Deliver(context.Background(), r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), r.ID)
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	r := sampleResponse(t)

	require.NoError(t, NewWriterSink(&buf, FormatYAML).Deliver(context.Background(), r))
	assert.True(t, strings.HasPrefix(buf.String(), "id: "+r.ID))
}

func TestDispatcherCompletion(t *testing.T) {
	var delivered []Response
	recorder := SinkFunc(func(_ context.Context, r Response) error {
		delivered = append(delivered, r)
		return nil
	})
	failing := SinkFunc(func(context.Context, Response) error {
		return fmt.Errorf("disk full")
	})

	c, err := survey.NewCatalog("one", []survey.Question{
		{ID: "q", Prompt: "Q", Kind: survey.Boolean(), Required: true},
	})
	require.NoError(t, err)

	d := NewDispatcher(nil, failing, recorder)
	meta := Meta{SessionID: "session-1", Catalog: c, Fingerprint: "fp", Mode: domain.ModePage}
	s, err := survey.New(c,
		survey.WithID(meta.SessionID),
		survey.WithMode(meta.Mode),
		survey.WithCompletion(d.Completion(context.Background(), meta)))
	require.NoError(t, err)

	resp, derr := d.Result()
	assert.Nil(t, resp)
	assert.NoError(t, derr)

	_, err = s.Answer("q", survey.BoolAnswer(true))
	require.NoError(t, err)
	_, err = s.Submit()
	require.NoError(t, err)

	require.Len(t, delivered, 1, "a failing sink does not stop the others")
	assert.Equal(t, "session-1", delivered[0].SessionID)

	resp, derr = d.Result()
	require.NotNil(t, resp)
	assert.Equal(t, delivered[0].ID, resp.ID)
	assert.ErrorContains(t, derr, "disk full")
}

func TestArchive(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "archive", "responses.db")

	a, err := OpenArchive(path)
	require.NoError(t, err)
	defer a.Close()

	first := sampleResponse(t)
	first.SubmittedAt = time.Date(2026, 1, 2, 3, 4, 5, 100000000, time.UTC)
	second := sampleResponse(t)
	second.SubmittedAt = time.Date(2026, 1, 2, 3, 4, 5, 120000000, time.UTC)

	require.NoError(t, a.Deliver(ctx, first))
	require.NoError(t, a.Deliver(ctx, second))

	records, err := a.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID, "newest first")
	assert.Equal(t, 2, records[0].Answered)

	records, err = a.List(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = a.List(ctx, "other", 0)
	require.NoError(t, err)
	assert.Empty(t, records)

	got, err := a.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, got.SessionID)
	assert.Equal(t, first.Fingerprint, got.Fingerprint)
	assert.True(t, first.SubmittedAt.Equal(got.SubmittedAt))
	assert.Equal(t, first.Answers.Values(), got.Answers.Values())
	assert.Equal(t, first.Answers.IDs(), got.Answers.IDs())

	_, err = a.Get(ctx, "missing")
	assert.Equal(t, errors.ErrCodeArchiveNotFound, errors.CodeOf(err))
}

func TestArchiveDuplicateID(t *testing.T) {
	a, err := OpenArchive(filepath.Join(t.TempDir(), "responses.db"))
	require.NoError(t, err)
	defer a.Close()

	r := sampleResponse(t)
	require.NoError(t, a.Deliver(context.Background(), r))
	err = a.Deliver(context.Background(), r)
	assert.Equal(t, errors.ErrCodeFileWriteFailed, errors.CodeOf(err))
}

func TestArchiveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.db")
	r := sampleResponse(t)

	a, err := OpenArchive(path)
	require.NoError(t, err)
	require.NoError(t, a.Deliver(context.Background(), r))
	require.NoError(t, a.Close())

	a, err = OpenArchive(path)
	require.NoError(t, err)
	defer a.Close()
	got, err := a.Get(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.Catalog, got.Catalog)
}
