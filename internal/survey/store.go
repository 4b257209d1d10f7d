package survey

// AnswerReader is the read side shared by Store and Snapshot
type AnswerReader interface {
	Get(id string) (Answer, bool)
}

// Store maps question ids to answers for one catalog.
// Every stored answer fits its question's kind; empty answers are never stored.
type Store struct {
	catalog *Catalog
	answers map[string]Answer
}

// NewStore creates an empty store bound to c
func NewStore(c *Catalog) *Store {
	return &Store{
		catalog: c,
		answers: make(map[string]Answer, c.Len()),
	}
}

// Get returns the answer for id, if any
func (s *Store) Get(id string) (Answer, bool) {
	a, ok := s.answers[id]
	return a, ok
}

// Set replaces the answer for id and returns the number of answered questions.
// An empty answer (Rating 0, empty text) removes the entry.
func (s *Store) Set(id string, a Answer) (int, error) {
	q, ok := s.catalog.Lookup(id)
	if !ok {
		return len(s.answers), unknownQuestion(id)
	}
	if err := q.Kind.Check(a); err != nil {
		return len(s.answers), typeMismatch(id, err)
	}

	if q.Kind.IsEmpty(a) {
		delete(s.answers, id)
	} else {
		s.answers[id] = a
	}
	return len(s.answers), nil
}

// Answered returns the number of questions with a non-empty answer
func (s *Store) Answered() int {
	return len(s.answers)
}

// Snapshot returns an immutable copy ordered by the catalog
func (s *Store) Snapshot() Snapshot {
	return newSnapshot(s.catalog.IDs(), s.answers)
}
