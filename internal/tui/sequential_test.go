package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

func newModel(t *testing.T) (*SequentialModel, *survey.Session) {
	t.Helper()
	s := newSession(t, domain.ModeSequential)
	return NewSequentialModel(s, domain.StyleCompact), s
}

func TestNewSequentialModel(t *testing.T) {
	m, _ := newModel(t)

	require.NotNil(t, m.form)
	assert.False(t, m.Completed())
	assert.Equal(t, "", m.value)
}

func TestSequentialCommitAdvances(t *testing.T) {
	m, s := newModel(t)

	m.value = "4"
	m.commit()

	assert.Equal(t, 1, s.Step())
	assert.Empty(t, m.message)
	a, ok := s.Get("stars")
	require.True(t, ok)
	assert.Equal(t, 4, a.Int())
}

func TestSequentialCommitRequiredBlocks(t *testing.T) {
	m, s := newModel(t)

	m.value = ""
	m.commit()

	assert.Equal(t, 0, s.Step())
	assert.True(t, s.Flagged("stars"))
	assert.NotEmpty(t, m.message)
	assert.Contains(t, m.View(), m.message)
}

func TestSequentialBackKey(t *testing.T) {
	m, s := newModel(t)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.Equal(t, 0, s.Step())
	assert.NotEmpty(t, m.message, "back on the first step reports an error")

	m.value = "5"
	m.commit()
	require.Equal(t, 1, s.Step())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.Equal(t, 0, s.Step())
	assert.Empty(t, m.message)
	assert.Equal(t, "5", m.value, "the field shows the stored answer")
}

func TestSequentialQuitKey(t *testing.T) {
	m, s := newModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Equal(t, survey.StatusInProgress, s.Status())
	assert.Contains(t, m.View(), "cancelled")
}

func TestSequentialWalkAndSubmit(t *testing.T) {
	m, s := newModel(t)

	for _, v := range []string{"4", "Quality", "9", "yes", "Great\nvalue"} {
		assert.Empty(t, m.message)
		m.value = v
		if s.AtLast() {
			cmd := m.commit()
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			break
		}
		m.commit()
	}

	require.True(t, m.Completed())
	assert.Equal(t, survey.StatusSubmitted, s.Status())
	assert.Equal(t, 5, m.Snapshot().Len())
	assert.Contains(t, m.View(), "Thank you")
}

func TestSequentialSubmitJumpsToFirstError(t *testing.T) {
	m, s := newModel(t)

	require.NoError(t, s.JumpTo(4))
	m.buildForm()
	m.value = "only notes"
	m.commit()

	assert.False(t, m.Completed())
	assert.Equal(t, 0, s.Step(), "jumps back to the first unanswered required question")
	assert.True(t, s.Flagged("stars"))
	assert.True(t, s.Flagged("again"))
	assert.Contains(t, m.message, "Rate the product")
}

func TestSequentialWindowSize(t *testing.T) {
	m, _ := newModel(t)

	_, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60, m.width)
	assert.Contains(t, m.View(), "Product Review")
}

func TestSequentialHelpLine(t *testing.T) {
	m, s := newModel(t)
	assert.Equal(t, "enter next • ctrl+c quit", m.helpLine())

	require.NoError(t, s.JumpTo(4))
	assert.Equal(t, "enter submit • ctrl+b back • ctrl+c quit", m.helpLine())
}
