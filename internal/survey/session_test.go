package survey

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/questionnaire/internal/domain"
	qerrors "github.com/felixgeelhaar/questionnaire/internal/errors"
	"github.com/felixgeelhaar/questionnaire/internal/log"
)

func newSession(t *testing.T, c *Catalog, opts ...Option) *Session {
	t.Helper()
	s, err := New(c, opts...)
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	c := mustCatalog(t, sampleQuestions()...)
	s := newSession(t, c)

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, StatusInProgress, s.Status())
	assert.Equal(t, domain.ModeSequential, s.Mode())
	assert.Equal(t, 0, s.Step())
	assert.Same(t, c, s.Catalog())

	other := newSession(t, c)
	assert.NotEqual(t, s.ID(), other.ID())
}

func TestNewSessionRejectsBadInput(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.Is(err, ErrEmptyCatalog))

	// the returned error is a fresh value; decorating it leaves the sentinel alone
	var se *qerrors.SurveyError
	require.True(t, errors.As(err, &se))
	assert.NotSame(t, ErrEmptyCatalog, se)
	se.WithSuggestion("extra")
	assert.NotContains(t, ErrEmptyCatalog.Suggestions, "extra")

	c := mustCatalog(t, sampleQuestions()...)
	_, err = New(c, WithMode("carousel"))
	assert.Error(t, err)
}

// Scenario A: one required rating question.
func TestSessionScenarioRequiredRating(t *testing.T) {
	c := mustCatalog(t, Question{ID: "stars", Prompt: "Rate us", Kind: Rating(5), Required: true})
	s := newSession(t, c)

	_, err := s.Submit()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoAnswersProvided))
	assert.Equal(t, StatusInProgress, s.Status())

	_, err = s.Answer("stars", RatingAnswer(4))
	require.NoError(t, err)

	snap, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitted, s.Status())
	assert.Equal(t, map[string]any{"stars": 4}, snap.Values())
}

// Scenario B: required choice plus optional text.
func TestSessionScenarioRequiredChoice(t *testing.T) {
	c := mustCatalog(t,
		Question{ID: "Q1", Prompt: "Pick one", Kind: SingleChoice("A", "B"), Required: true},
		Question{ID: "Q2", Prompt: "Say something", Kind: FreeText(false)},
	)
	s := newSession(t, c, WithMode(domain.ModePage))

	_, err := s.Answer("Q2", TextAnswer("hello"))
	require.NoError(t, err)

	_, err = s.Submit()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, []string{"Q1"}, qerrors.QuestionsOf(err))
	assert.Equal(t, StatusInProgress, s.Status())

	_, err = s.Answer("Q1", ChoiceAnswer("A"))
	require.NoError(t, err)

	snap, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Q1": "A", "Q2": "hello"}, snap.Values())
	assert.Equal(t, []string{"Q1", "Q2"}, snap.IDs())
}

// Scenario C: sequential gate on a required first question.
func TestSessionScenarioSequentialGate(t *testing.T) {
	c := mustCatalog(t,
		Question{ID: "Q1", Prompt: "One", Kind: Boolean(), Required: true},
		Question{ID: "Q2", Prompt: "Two", Kind: FreeText(false)},
		Question{ID: "Q3", Prompt: "Three", Kind: LinearScale(1, 10)},
	)
	s := newSession(t, c)

	err := s.Next()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequiredQuestionUnanswered))
	assert.Equal(t, []string{"Q1"}, qerrors.QuestionsOf(err))
	assert.Equal(t, 0, s.Step())
	assert.True(t, s.Flagged("Q1"))

	_, err = s.Answer("Q1", BoolAnswer(false))
	require.NoError(t, err)
	assert.False(t, s.Flagged("Q1"))

	require.NoError(t, s.Next())
	assert.Equal(t, 1, s.Step())

	require.NoError(t, s.Previous())
	assert.Equal(t, 0, s.Step())
}

func TestSessionFrozenAfterSubmit(t *testing.T) {
	c := mustCatalog(t, sampleQuestions()...)
	s := newSession(t, c)

	_, err := s.Answer("satisfaction", RatingAnswer(5))
	require.NoError(t, err)
	snap, err := s.Submit()
	require.NoError(t, err)

	_, err = s.Answer("satisfaction", RatingAnswer(1))
	assert.True(t, errors.Is(err, ErrSessionAlreadySubmitted))
	_, err = s.Answer("feedback", TextAnswer("late"))
	assert.True(t, errors.Is(err, ErrSessionAlreadySubmitted))

	assert.True(t, errors.Is(s.Next(), ErrSessionAlreadySubmitted))
	assert.True(t, errors.Is(s.Previous(), ErrSessionAlreadySubmitted))
	assert.True(t, errors.Is(s.JumpTo(1), ErrSessionAlreadySubmitted))

	again, err := s.Submit()
	assert.True(t, errors.Is(err, ErrSessionAlreadySubmitted))
	assert.Equal(t, snap.Values(), again.Values())

	assert.Equal(t, map[string]any{"satisfaction": 5}, snap.Values())
	assert.Equal(t, snap.Values(), s.Snapshot().Values())
	got, _ := s.Get("satisfaction")
	assert.Equal(t, 5, got.Int())
}

func TestSessionCompletionCalledOnce(t *testing.T) {
	c := mustCatalog(t, sampleQuestions()...)
	var calls []Snapshot
	s := newSession(t, c, WithCompletion(func(snap Snapshot) {
		calls = append(calls, snap)
	}))

	_, err := s.Submit()
	require.Error(t, err)
	_, err = s.Answer("recommend", BoolAnswer(true))
	require.NoError(t, err)
	_, err = s.Submit()
	require.Error(t, err, "satisfaction is still required")
	assert.Empty(t, calls)

	_, err = s.Answer("satisfaction", RatingAnswer(3))
	require.NoError(t, err)
	snap, err := s.Submit()
	require.NoError(t, err)
	_, _ = s.Submit()

	require.Len(t, calls, 1)
	assert.Equal(t, snap.Values(), calls[0].Values())
	assert.Equal(t, StatusSubmitted, s.Status())
}

func TestSessionPageMode(t *testing.T) {
	c := mustCatalog(t, sampleQuestions()...)
	s := newSession(t, c, WithMode(domain.ModePage))

	assert.True(t, errors.Is(s.Next(), ErrNavigationUnavailable))
	assert.True(t, errors.Is(s.Previous(), ErrNavigationUnavailable))
	assert.True(t, errors.Is(s.JumpTo(0), ErrNavigationUnavailable))
	_, ok := s.CurrentQuestion()
	assert.False(t, ok)
	assert.True(t, s.AtLast())

	assert.Equal(t, 0.0, s.Progress())
	_, err := s.Answer("recommend", BoolAnswer(false))
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, s.Progress(), 1e-9)
	_, err = s.Answer("feedback", TextAnswer("ok"))
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, s.Progress(), 1e-9)
}

func TestSessionSequentialProgress(t *testing.T) {
	c := mustCatalog(t,
		Question{ID: "a", Prompt: "A", Kind: Boolean()},
		Question{ID: "b", Prompt: "B", Kind: Boolean()},
		Question{ID: "c", Prompt: "C", Kind: Boolean()},
		Question{ID: "d", Prompt: "D", Kind: Boolean()},
	)
	s := newSession(t, c)

	assert.Equal(t, 0.25, s.Progress())
	require.NoError(t, s.JumpTo(3))
	assert.Equal(t, 1.0, s.Progress())
	assert.True(t, s.AtLast())

	q, ok := s.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "d", q.ID)
}

func TestSessionFlagsAfterFailedSubmit(t *testing.T) {
	c := mustCatalog(t,
		Question{ID: "name", Prompt: "Name", Kind: FreeText(false), Required: true},
		Question{ID: "email", Prompt: "Email", Kind: FreeText(false)},
		Question{ID: "attending", Prompt: "Attending?", Kind: Boolean(), Required: true},
	)
	s := newSession(t, c, WithMode(domain.ModePage))

	_, err := s.Answer("email", TextAnswer("a@b.c"))
	require.NoError(t, err)
	_, err = s.Submit()
	require.Error(t, err)

	assert.True(t, s.Flagged("name"))
	assert.True(t, s.Flagged("attending"))
	assert.False(t, s.Flagged("email"))
	first, ok := s.FirstFlagged()
	require.True(t, ok)
	assert.Equal(t, "name", first)

	_, err = s.Answer("name", TextAnswer("Ada"))
	require.NoError(t, err)
	assert.False(t, s.Flagged("name"))
	first, _ = s.FirstFlagged()
	assert.Equal(t, "attending", first)
	assert.Equal(t, []string{"attending"}, s.Unsatisfied())
}

func TestSessionSubmitValidatesSkippedQuestions(t *testing.T) {
	c := mustCatalog(t,
		Question{ID: "intro", Prompt: "Intro", Kind: FreeText(false)},
		Question{ID: "must", Prompt: "Must", Kind: Boolean(), Required: true},
		Question{ID: "outro", Prompt: "Outro", Kind: FreeText(false)},
	)
	s := newSession(t, c)

	_, err := s.Answer("outro", TextAnswer("bye"))
	require.NoError(t, err)
	require.NoError(t, s.JumpTo(2))

	_, err = s.Submit()
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, []string{"must"}, qerrors.QuestionsOf(err))
}

func TestSessionLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.Config{Level: log.LevelDebug, Format: log.FormatJSON, Output: log.NewOutput(&buf)})

	c := mustCatalog(t, sampleQuestions()...)
	s := newSession(t, c, WithLogger(logger))
	_, err := s.Answer("satisfaction", RatingAnswer(5))
	require.NoError(t, err)
	_, err = s.Submit()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"answer recorded"`)
	assert.Contains(t, out, `"msg":"session submitted"`)
	assert.Contains(t, out, s.ID())
}

func TestSessionWithID(t *testing.T) {
	c := mustCatalog(t, sampleQuestions()...)
	s := newSession(t, c, WithID("fixed-id"))
	assert.Equal(t, "fixed-id", s.ID())

	s = newSession(t, c, WithID(""))
	assert.NotEmpty(t, s.ID())
}
