package survey

import (
	"fmt"
	"strings"
)

// SummaryItem is one row of a results summary
type SummaryItem struct {
	ID       string `json:"id" yaml:"id"`
	Prompt   string `json:"prompt" yaml:"prompt"`
	Kind     string `json:"kind" yaml:"kind"`
	Required bool   `json:"required" yaml:"required"`
	Answered bool   `json:"answered" yaml:"answered"`
	Display  string `json:"display" yaml:"display"`
}

// Summary describes a submitted (or in-progress) answer set for display
type Summary struct {
	Title    string        `json:"title" yaml:"title"`
	Answered int           `json:"answered" yaml:"answered"`
	Total    int           `json:"total" yaml:"total"`
	Items    []SummaryItem `json:"items" yaml:"items"`
}

// Summarize pairs every catalog question with its answer in snap.
// With a nil catalog only the answered entries are listed, keyed by id.
func Summarize(c *Catalog, snap Snapshot) Summary {
	if c == nil {
		return summarizeSnapshot(snap)
	}

	s := Summary{Title: c.Title(), Total: c.Len()}
	for _, q := range c.questions {
		item := SummaryItem{
			ID:       q.ID,
			Prompt:   q.Prompt,
			Kind:     q.Kind.String(),
			Required: q.Required,
		}
		if a, ok := snap.Get(q.ID); ok && !q.Kind.IsEmpty(a) {
			item.Answered = true
			item.Display = displayAnswer(q.Kind, a)
			s.Answered++
		}
		s.Items = append(s.Items, item)
	}
	return s
}

func summarizeSnapshot(snap Snapshot) Summary {
	s := Summary{Answered: snap.Len(), Total: snap.Len()}
	for _, id := range snap.ids {
		a := snap.answers[id]
		s.Items = append(s.Items, SummaryItem{
			ID:       id,
			Prompt:   id,
			Kind:     a.tag.String(),
			Answered: true,
			Display:  displayAnswer(Kind{tag: a.tag}, a),
		})
	}
	return s
}

// displayAnswer renders a for humans; ratings become stars when the ceiling is known
func displayAnswer(k Kind, a Answer) string {
	switch a.tag {
	case KindRating:
		if k.maxStars > 0 {
			return fmt.Sprintf("%s%s (%d/%d)",
				strings.Repeat("★", a.num), strings.Repeat("☆", k.maxStars-a.num), a.num, k.maxStars)
		}
		return fmt.Sprintf("%d stars", a.num)
	case KindLinearScale:
		if k.tag == KindLinearScale {
			return fmt.Sprintf("%d (%d-%d)", a.num, k.min, k.max)
		}
		return a.String()
	case KindBoolean:
		if a.flag {
			return "Yes"
		}
		return "No"
	default:
		return a.String()
	}
}

// Markdown renders the summary as a markdown document
func (s Summary) Markdown() string {
	var b strings.Builder

	title := s.Title
	if title == "" {
		title = "Responses"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "_%d of %d questions answered_\n\n", s.Answered, s.Total)

	for _, item := range s.Items {
		prompt := item.Prompt
		if item.Required {
			prompt += " *"
		}
		fmt.Fprintf(&b, "## %s\n\n", prompt)

		switch {
		case !item.Answered:
			b.WriteString("_No answer_\n\n")
		case strings.Contains(item.Display, "\n"):
			for _, line := range strings.Split(item.Display, "\n") {
				fmt.Fprintf(&b, "> %s\n", line)
			}
			b.WriteString("\n")
		default:
			fmt.Fprintf(&b, "%s\n\n", item.Display)
		}
	}
	return b.String()
}
