package tui

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/felixgeelhaar/questionnaire/internal/console"
	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

type keyMap struct {
	Quit key.Binding
	Back key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "back"),
		),
	}
}

// SequentialModel is the bubbletea model for sequential sessions: one
// question per screen, Enter advances and submits on the last step.
type SequentialModel struct {
	session *survey.Session
	style   domain.Style
	styles  Styles
	keys    keyMap
	bar     progress.Model

	form    *huh.Form
	value   string
	message string

	width     int
	snapshot  survey.Snapshot
	completed bool
	quitting  bool
}

// NewSequentialModel creates the model for s drawn in style
func NewSequentialModel(s *survey.Session, style domain.Style) *SequentialModel {
	m := &SequentialModel{
		session: s,
		style:   style,
		styles:  DefaultStyles(),
		keys:    defaultKeyMap(),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
	m.buildForm()
	return m
}

// buildForm creates the field for the current question
func (m *SequentialModel) buildForm() {
	q, ok := m.session.CurrentQuestion()
	if !ok {
		m.form = nil
		return
	}
	m.value = currentValue(m.session, q.ID)

	group := huh.NewGroup(fieldFor(m.session, q, &m.value)).
		Title(fmt.Sprintf("Question %d of %d", m.session.Step()+1, m.session.Catalog().Len()))
	m.form = huh.NewForm(group).
		WithTheme(themeFor(m.style)).
		WithShowHelp(false)
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width)
	}
}

// Init initializes the model
func (m *SequentialModel) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

// Update handles messages and updates the model
func (m *SequentialModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			return m, m.back()
		}
	}

	if m.completed || m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
		switch m.form.State {
		case huh.StateCompleted:
			return m, m.commit()
		case huh.StateAborted:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, cmd
}

// back moves to the previous question without saving the field
func (m *SequentialModel) back() tea.Cmd {
	if err := m.session.Previous(); err != nil {
		m.message = console.Explain(m.session.Catalog(), err)
		return nil
	}
	m.message = ""
	m.buildForm()
	return m.form.Init()
}

// commit records the field value, then advances or submits
func (m *SequentialModel) commit() tea.Cmd {
	q, _ := m.session.CurrentQuestion()
	if err := record(m.session, q, m.value); err != nil {
		m.message = console.Explain(m.session.Catalog(), err)
		return m.rebuild()
	}

	if !m.session.AtLast() {
		if err := m.session.Next(); err != nil {
			m.message = console.Explain(m.session.Catalog(), err)
		} else {
			m.message = ""
		}
		return m.rebuild()
	}

	snap, err := m.session.Submit()
	if err != nil {
		m.message = console.Explain(m.session.Catalog(), err)
		if stderrors.Is(err, survey.ErrValidationFailed) {
			m.jumpToFirstFlagged()
		}
		return m.rebuild()
	}

	m.snapshot = snap
	m.completed = true
	return tea.Quit
}

func (m *SequentialModel) rebuild() tea.Cmd {
	m.buildForm()
	if m.form == nil {
		return nil
	}
	return m.form.Init()
}

func (m *SequentialModel) jumpToFirstFlagged() {
	id, ok := m.session.FirstFlagged()
	if !ok {
		return
	}
	if i, ok := m.session.Catalog().IndexOf(id); ok {
		_ = m.session.JumpTo(i)
	}
}

// Completed reports whether the session was submitted
func (m *SequentialModel) Completed() bool { return m.completed }

// Snapshot returns the submitted answers
func (m *SequentialModel) Snapshot() survey.Snapshot { return m.snapshot }

// View renders the UI
func (m *SequentialModel) View() string {
	if m.quitting {
		return "Questionnaire cancelled.\n"
	}
	if m.completed {
		return m.styles.Success.Render("✓ Thank you! Your responses have been submitted.") + "\n"
	}

	var b strings.Builder
	c := m.session.Catalog()
	b.WriteString(m.styles.Title.Render(c.Title()))
	b.WriteString("\n")
	if c.Description() != "" {
		b.WriteString(m.styles.Subtitle.Render(c.Description()))
		b.WriteString("\n")
	}
	b.WriteString(m.bar.ViewAs(m.session.Progress()))
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(m.styles.frame(m.style, m.form.View(), m.width))
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(m.styles.Error.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.helpLine()))
	return b.String()
}

func (m *SequentialModel) helpLine() string {
	action := "next"
	if m.session.AtLast() {
		action = "submit"
	}
	parts := []string{"enter " + action}
	if !m.session.AtFirst() {
		parts = append(parts, m.keys.Back.Help().Key+" "+m.keys.Back.Help().Desc)
	}
	parts = append(parts, m.keys.Quit.Help().Key+" "+m.keys.Quit.Help().Desc)
	return strings.Join(parts, " • ")
}
