package survey

// Navigator tracks the current step of a sequential session.
// The step always stays within [0, catalog length - 1].
type Navigator struct {
	catalog *Catalog
	answers AnswerReader
	step    int
}

// NewNavigator starts at step 0. Forward moves consult answers to gate
// required questions.
func NewNavigator(c *Catalog, answers AnswerReader) *Navigator {
	return &Navigator{catalog: c, answers: answers}
}

// Step returns the current zero-based index
func (n *Navigator) Step() int { return n.step }

// AtFirst reports whether the current step is the first
func (n *Navigator) AtFirst() bool { return n.step == 0 }

// AtLast reports whether the current step is the last
func (n *Navigator) AtLast() bool { return n.step == n.catalog.Len()-1 }

// Advance moves one step forward. It fails at the last step, and when the
// current question is required but unanswered; the step is then unchanged.
func (n *Navigator) Advance() error {
	if n.AtLast() {
		return atLastStep()
	}
	q := n.catalog.questions[n.step]
	if q.Required && !answered(q, n.answers) {
		return requiredUnanswered(q.ID)
	}
	n.step++
	return nil
}

// Retreat moves one step back. It is never gated by validation.
func (n *Navigator) Retreat() error {
	if n.AtFirst() {
		return atFirstStep()
	}
	n.step--
	return nil
}

// JumpTo moves directly to step
func (n *Navigator) JumpTo(step int) error {
	if step < 0 || step >= n.catalog.Len() {
		return outOfRange(step, n.catalog.Len())
	}
	n.step = step
	return nil
}
