package survey

import (
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/errors"
	"github.com/felixgeelhaar/questionnaire/internal/log"
)

// Status is the lifecycle state of a session
type Status int

const (
	StatusInProgress Status = iota
	StatusSubmitted
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusSubmitted:
		return "submitted"
	default:
		return "in_progress"
	}
}

// Session runs one respondent through a catalog.
//
// A session has a single owner: every call completes before the next one is
// made, so it carries no locking. Once Submit succeeds the answers are frozen
// and every mutating call fails with ErrSessionAlreadySubmitted.
type Session struct {
	id         string
	catalog    *Catalog
	mode       domain.Mode
	store      *Store
	nav        *Navigator
	status     Status
	submitted  Snapshot
	flagged    map[string]bool
	onComplete func(Snapshot)
	logger     *log.Logger
}

// Option configures a Session
type Option func(*Session)

// WithMode selects sequential (default) or single-page navigation
func WithMode(mode domain.Mode) Option {
	return func(s *Session) { s.mode = mode }
}

// WithCompletion registers the callback run exactly once, after a successful Submit
func WithCompletion(fn func(Snapshot)) Option {
	return func(s *Session) { s.onComplete = fn }
}

// WithID overrides the generated session id, e.g. to correlate with a response envelope
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// WithLogger sets the logger used for answer and navigation events
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// New starts a session over c. The catalog was validated by NewCatalog;
// a nil or empty catalog is rejected with ErrEmptyCatalog.
func New(c *Catalog, opts ...Option) (*Session, error) {
	if c == nil || c.Len() == 0 {
		return nil, emptySession()
	}

	s := &Session{
		id:      uuid.New().String(),
		catalog: c,
		mode:    domain.ModeSequential,
		store:   NewStore(c),
		status:  StatusInProgress,
		flagged: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.mode.Validate(); err != nil {
		return nil, err
	}
	if s.logger == nil {
		s.logger = log.Discard()
	}
	s.logger = s.logger.WithSession(s.id)

	if s.mode.IsSequential() {
		s.nav = NewNavigator(c, s.store)
	}

	s.logger.Debug("session started",
		"catalog", c.Name(),
		"questions", c.Len(),
		"mode", s.mode.String())

	return s, nil
}

// ID returns the session's unique id
func (s *Session) ID() string { return s.id }

// Catalog returns the catalog the session runs over
func (s *Session) Catalog() *Catalog { return s.catalog }

// Mode returns the navigation mode
func (s *Session) Mode() domain.Mode { return s.mode }

// Status returns InProgress or Submitted
func (s *Session) Status() Status { return s.status }

// Answer stores a for question id and returns the answered count.
// Answering a flagged question clears its flag.
func (s *Session) Answer(id string, a Answer) (int, error) {
	if s.status == StatusSubmitted {
		return s.store.Answered(), alreadySubmitted()
	}

	count, err := s.store.Set(id, a)
	if err != nil {
		s.logger.WithError(err).Debug("answer rejected", "question_id", id)
		return count, err
	}

	delete(s.flagged, id)
	s.logger.Debug("answer recorded", "question_id", id, "answered", count)
	return count, nil
}

// Get returns the stored answer for id
func (s *Session) Get(id string) (Answer, bool) {
	return s.store.Get(id)
}

// Answered returns the number of questions with a non-empty answer
func (s *Session) Answered() int {
	return s.store.Answered()
}

// Next advances to the following question (sequential mode)
func (s *Session) Next() error {
	if err := s.navigable(); err != nil {
		return err
	}
	if err := s.nav.Advance(); err != nil {
		if stderrors.Is(err, ErrRequiredQuestionUnanswered) {
			for _, id := range errors.QuestionsOf(err) {
				s.flagged[id] = true
			}
		}
		return err
	}
	s.logger.Debug("step changed", "step", s.nav.Step())
	return nil
}

// Previous goes back one question (sequential mode); never gated by validation
func (s *Session) Previous() error {
	if err := s.navigable(); err != nil {
		return err
	}
	if err := s.nav.Retreat(); err != nil {
		return err
	}
	s.logger.Debug("step changed", "step", s.nav.Step())
	return nil
}

// JumpTo moves to step (sequential mode)
func (s *Session) JumpTo(step int) error {
	if err := s.navigable(); err != nil {
		return err
	}
	if err := s.nav.JumpTo(step); err != nil {
		return err
	}
	s.logger.Debug("step changed", "step", step)
	return nil
}

func (s *Session) navigable() error {
	if s.status == StatusSubmitted {
		return alreadySubmitted()
	}
	if s.nav == nil {
		return navigationUnavailable()
	}
	return nil
}

// Step returns the current step; always 0 in single-page mode
func (s *Session) Step() int {
	if s.nav == nil {
		return 0
	}
	return s.nav.Step()
}

// AtFirst reports whether Previous would fail at the boundary
func (s *Session) AtFirst() bool {
	return s.nav == nil || s.nav.AtFirst()
}

// AtLast reports whether the session sits on the last question.
// Single-page sessions are always "at last": submit is reachable.
func (s *Session) AtLast() bool {
	return s.nav == nil || s.nav.AtLast()
}

// CurrentQuestion returns the question at the current step (sequential mode)
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.nav == nil {
		return Question{}, false
	}
	return s.catalog.At(s.nav.Step())
}

// Progress returns a fraction in [0, 1]: (step+1)/N in sequential mode,
// answered/N in single-page mode.
func (s *Session) Progress() float64 {
	total := float64(s.catalog.Len())
	if s.nav != nil {
		return float64(s.nav.Step()+1) / total
	}
	return float64(s.store.Answered()) / total
}

// Unsatisfied returns the required questions still unanswered
func (s *Session) Unsatisfied() []string {
	return Unsatisfied(s.catalog, s.store)
}

// Flagged reports whether id was named by the last failed Submit (or Next)
// and has not been answered since
func (s *Session) Flagged(id string) bool {
	return s.flagged[id]
}

// FirstFlagged returns the earliest flagged question in catalog order
func (s *Session) FirstFlagged() (string, bool) {
	for _, q := range s.catalog.questions {
		if s.flagged[q.ID] {
			return q.ID, true
		}
	}
	return "", false
}

// Snapshot returns the frozen answers after submission, or a copy of the
// current answers before it
func (s *Session) Snapshot() Snapshot {
	if s.status == StatusSubmitted {
		return s.submitted
	}
	return s.store.Snapshot()
}

// Submit validates every required question and freezes the session.
//
// Errors, checked in this order:
//   - ErrSessionAlreadySubmitted on a second call
//   - ErrNoAnswersProvided when nothing was answered at all
//   - ErrValidationFailed naming every unsatisfied required question
//
// On success the completion callback runs once with the returned snapshot.
func (s *Session) Submit() (Snapshot, error) {
	if s.status == StatusSubmitted {
		return s.submitted, alreadySubmitted()
	}

	if !HasAnswers(s.catalog, s.store) {
		err := noAnswers()
		s.logger.WithError(err).Info("submit rejected")
		return Snapshot{}, err
	}

	if ids := Unsatisfied(s.catalog, s.store); len(ids) > 0 {
		for _, id := range ids {
			s.flagged[id] = true
		}
		err := validationFailed(ids)
		s.logger.WithError(err).Info("submit rejected")
		return Snapshot{}, err
	}

	s.submitted = s.store.Snapshot()
	s.status = StatusSubmitted
	s.flagged = make(map[string]bool)
	s.logger.Info("session submitted",
		"catalog", s.catalog.Name(),
		"answered", s.submitted.Len())

	if s.onComplete != nil {
		s.onComplete(s.submitted)
	}
	return s.submitted, nil
}
