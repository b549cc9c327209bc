// Package tui implements an interactive calculator screen.
package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/strcalc"
	"github.com/zephyrtronium/strcalc/internal/display"
)

// Initial is the expression shown when the screen opens.
const Initial = "1, 2, 3"

// Options configure the model.
type Options struct {
	Decimals int
	// Prepare, if not nil, transforms input before evaluation.
	Prepare func(string) string
	Logger  *slog.Logger
}

// Model is the Bubble Tea model of the calculator.
type Model struct {
	input  textinput.Model
	opts   Options
	result string
	err    string
	width  int
}

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	resultStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helperStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// New creates the model with the initial expression already evaluated.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. 1,2,3 or 1 + 2.5 - 3"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.SetValue(Initial)
	ti.Focus()
	m := Model{input: ti, opts: opts, width: 80}
	m.submit()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = max(msg.Width-4, 10)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit evaluates the current input. A failure clears the result.
func (m *Model) submit() {
	text := m.input.Value()
	if m.opts.Prepare != nil {
		text = m.opts.Prepare(text)
	}
	o := strcalc.Evaluate(text)
	if m.opts.Logger != nil {
		m.opts.Logger.Debug("submit", "input", m.input.Value(), "outcome", o.String())
	}
	if !o.OK() {
		m.result = ""
		m.err = display.Describe(o.Err())
		return
	}
	m.result = display.FormatValue(o.Value(), m.opts.Decimals)
	m.err = ""
}

// Result returns the displayed result, or "-" if there is none.
func (m Model) Result() string {
	if m.result == "" {
		return "-"
	}
	return m.result
}

// Err returns the displayed error message, if any.
func (m Model) Err() string {
	return m.err
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render("Enter numbers to add."))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Result: "))
	b.WriteString(resultStyle.Render(m.Result()))
	b.WriteString("\n\n")
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
	} else {
		help := "Commas (,) and colons (:) between numbers add them. Operators, parentheses, decimals, and negative numbers work too."
		b.WriteString(helperStyle.Width(max(m.width-2, 20)).Render(help))
	}
	b.WriteString("\n\n")
	b.WriteString(helperStyle.Render("enter: calculate • esc: quit"))
	b.WriteString("\n")
	return b.String()
}
