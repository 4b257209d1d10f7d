package survey

// Unsatisfied returns, in catalog order, the required questions whose answer
// is absent or empty. A Boolean false counts as answered.
func Unsatisfied(c *Catalog, r AnswerReader) []string {
	var ids []string
	for _, q := range c.questions {
		if !q.Required {
			continue
		}
		if !answered(q, r) {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// HasAnswers reports whether any question of c has a non-empty answer in r
func HasAnswers(c *Catalog, r AnswerReader) bool {
	for _, q := range c.questions {
		if answered(q, r) {
			return true
		}
	}
	return false
}

func answered(q Question, r AnswerReader) bool {
	a, ok := r.Get(q.ID)
	return ok && !q.Kind.IsEmpty(a)
}
