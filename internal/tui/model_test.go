package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func press(t *testing.T, m Model, k tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	mm, ok := next.(Model)
	require.True(t, ok)
	return mm, cmd
}

func TestInitialResult(t *testing.T) {
	m := New(Options{Decimals: 6})
	assert.Equal(t, "6", m.Result())
	assert.Empty(t, m.Err())
	assert.Contains(t, m.View(), "Result: ")
}

func TestSubmit(t *testing.T) {
	m := New(Options{Decimals: 6})
	m.input.SetValue("")
	m = typeText(t, m, "1 + 2.5 - 3")
	m, _ = press(t, m, tea.KeyEnter)
	assert.Equal(t, "0.5", m.Result())
	assert.Empty(t, m.Err())
}

func TestSubmitFailureClearsResult(t *testing.T) {
	m := New(Options{Decimals: 6})
	m.input.SetValue("5/0")
	m, _ = press(t, m, tea.KeyEnter)
	assert.Equal(t, "-", m.Result())
	assert.Equal(t, "Can't divide by zero.", m.Err())
	assert.Contains(t, m.View(), "Can't divide by zero.")

	m.input.SetValue("(2+3)*4")
	m, _ = press(t, m, tea.KeyEnter)
	assert.Equal(t, "20", m.Result())
	assert.Empty(t, m.Err())
}

func TestPrepare(t *testing.T) {
	m := New(Options{Decimals: 6, Prepare: strings.ToLower})
	m.input.SetValue("1,2")
	m, _ = press(t, m, tea.KeyEnter)
	assert.Equal(t, "3", m.Result())
}

func TestQuit(t *testing.T) {
	m := New(Options{})
	_, cmd := press(t, m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
