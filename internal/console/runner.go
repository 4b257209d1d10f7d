package console

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/questionnaire/internal/errors"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

// ErrAborted is returned when the respondent quits or input ends before submission
var ErrAborted = stderrors.New("questionnaire aborted")

// Line commands understood at every prompt
const (
	cmdBack   = ":back"
	cmdQuit   = ":quit"
	cmdSubmit = ":submit"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	promptStyle   = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	requiredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Runner drives a session over line-oriented input and output, one question
// per prompt. It renders every kind and reports each line back as an answer.
type Runner struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewRunner creates a runner reading answers from in and writing prompts to out
func NewRunner(in io.Reader, out io.Writer) *Runner {
	return &Runner{in: bufio.NewScanner(in), out: out}
}

// Run asks every question until the session submits. Sequential sessions
// walk the steps; single-page sessions ask each question in turn and then
// revisit the flagged ones after a failed submit.
func (r *Runner) Run(ctx context.Context, s *survey.Session) (survey.Snapshot, error) {
	c := s.Catalog()
	r.printf("%s\n", titleStyle.Render(c.Title()))
	if c.Description() != "" {
		r.printf("%s\n", c.Description())
	}
	r.printf("%s\n\n", hintStyle.Render("Commands: :back, :submit, :quit"))

	if s.Mode().IsSequential() {
		return r.runSequential(ctx, s)
	}
	return r.runPage(ctx, s)
}

func (r *Runner) runSequential(ctx context.Context, s *survey.Session) (survey.Snapshot, error) {
	for {
		if err := ctx.Err(); err != nil {
			return survey.Snapshot{}, err
		}

		q, _ := s.CurrentQuestion()
		r.printf("%s\n", hintStyle.Render(fmt.Sprintf("Question %d of %d", s.Step()+1, s.Catalog().Len())))
		line, err := r.ask(q, s)
		if err != nil {
			return survey.Snapshot{}, err
		}

		switch line {
		case cmdQuit:
			return survey.Snapshot{}, ErrAborted
		case cmdBack:
			if err := s.Previous(); err != nil {
				r.fail(s, err)
			}
			continue
		case cmdSubmit:
			if snap, ok := r.submit(s); ok {
				return snap, nil
			}
			continue
		}

		if !r.record(s, q, line) {
			continue
		}

		// Enter advances; on the last step it submits
		if !s.AtLast() {
			if err := s.Next(); err != nil {
				r.fail(s, err)
			}
			continue
		}
		if snap, ok := r.submit(s); ok {
			return snap, nil
		}
	}
}

func (r *Runner) runPage(ctx context.Context, s *survey.Session) (survey.Snapshot, error) {
	pending := s.Catalog().Questions()
	for {
		for _, q := range pending {
			if err := ctx.Err(); err != nil {
				return survey.Snapshot{}, err
			}
			for {
				line, err := r.ask(q, s)
				if err != nil {
					return survey.Snapshot{}, err
				}
				if line == cmdQuit {
					return survey.Snapshot{}, ErrAborted
				}
				if line == cmdBack || line == cmdSubmit {
					r.printf("%s\n", hintStyle.Render("Answer the questions in order; the form submits after the last one."))
					continue
				}
				if r.record(s, q, line) {
					break
				}
			}
		}

		if snap, ok := r.submit(s); ok {
			return snap, nil
		}

		// Revisit only the flagged questions
		pending = pending[:0]
		for _, q := range s.Catalog().Questions() {
			if s.Flagged(q.ID) {
				pending = append(pending, q)
			}
		}
		if len(pending) == 0 {
			pending = s.Catalog().Questions()
		}
	}
}

// ask renders q and reads one line. EOF aborts.
func (r *Runner) ask(q survey.Question, s *survey.Session) (string, error) {
	label := q.Prompt
	if q.Required {
		label += requiredStyle.Render(" *")
	}
	r.printf("%s\n", promptStyle.Render(label))
	if q.Description != "" {
		r.printf("%s\n", hintStyle.Render(q.Description))
	}
	if s.Flagged(q.ID) {
		r.printf("%s\n", errorStyle.Render("This question is required"))
	}
	for _, line := range describe(q) {
		r.printf("  %s\n", line)
	}
	if current, ok := s.Get(q.ID); ok {
		r.printf("%s\n", hintStyle.Render("Current answer: "+current.String()+" (Enter keeps it)"))
	}
	r.printf("> ")

	if !r.in.Scan() {
		r.printf("\n")
		if err := r.in.Err(); err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return "", ErrAborted
	}
	return strings.TrimSpace(r.in.Text()), nil
}

// record applies line to q. An empty line keeps the current answer (or
// skips an optional question). It reports whether the caller may move on.
func (r *Runner) record(s *survey.Session, q survey.Question, line string) bool {
	if line == "" {
		if _, ok := s.Get(q.ID); ok || !q.Required {
			return true
		}
		r.fail(s, errors.New(errors.ErrCodeNavRequiredUnanswered, "this question is required"))
		return false
	}

	a, err := ParseInput(q, line)
	if err != nil {
		r.printf("%s\n\n", errorStyle.Render(err.Error()))
		return false
	}
	if _, err := s.Answer(q.ID, a); err != nil {
		r.fail(s, err)
		return false
	}
	r.printf("\n")
	return true
}

// submit tries to submit. After a validation failure a sequential session
// jumps to the first unanswered required question.
func (r *Runner) submit(s *survey.Session) (survey.Snapshot, bool) {
	snap, err := s.Submit()
	if err == nil {
		r.printf("%s\n", titleStyle.Render("Thank you! Your responses have been submitted."))
		return snap, true
	}

	r.fail(s, err)
	if stderrors.Is(err, survey.ErrValidationFailed) && s.Mode().IsSequential() {
		if id, ok := s.FirstFlagged(); ok {
			if i, ok := s.Catalog().IndexOf(id); ok {
				_ = s.JumpTo(i)
			}
		}
	}
	return survey.Snapshot{}, false
}

// fail prints the short message of err
func (r *Runner) fail(s *survey.Session, err error) {
	r.printf("%s\n\n", errorStyle.Render(Explain(s.Catalog(), err)))
}

// Explain returns the respondent-facing message for err. Validation
// failures name the unanswered questions by prompt.
func Explain(c *survey.Catalog, err error) string {
	var se *errors.SurveyError
	if !stderrors.As(err, &se) {
		return err.Error()
	}
	if !stderrors.Is(err, survey.ErrValidationFailed) {
		return se.Message
	}
	names := make([]string, 0, len(se.QuestionIDs))
	for _, id := range se.QuestionIDs {
		if q, ok := c.Lookup(id); ok {
			names = append(names, q.Prompt)
		}
	}
	return "Please answer all required questions: " + strings.Join(names, "; ")
}

// describe lists the input hints for q's kind
func describe(q survey.Question) []string {
	k := q.Kind
	switch k.Tag() {
	case survey.KindRating:
		return []string{hintStyle.Render(fmt.Sprintf("Rate 1-%d (number or *)", k.MaxStars()))}
	case survey.KindFreeText:
		if k.Multiline() {
			return []string{hintStyle.Render(`Type your answer; use \n for a new line`)}
		}
		return nil
	case survey.KindSingleChoice:
		opts := k.Options()
		lines := make([]string, len(opts))
		for i, opt := range opts {
			lines[i] = fmt.Sprintf("%d) %s", i+1, opt)
		}
		return lines
	case survey.KindLinearScale:
		lo, hi := k.Bounds()
		return []string{hintStyle.Render(fmt.Sprintf("Pick a number from %d to %d", lo, hi))}
	case survey.KindBoolean:
		return []string{hintStyle.Render("yes / no")}
	default:
		return nil
	}
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
