// Package playground is an interactive prompt against the live dispatch
// tree: it shows completions as you type and executes on enter.
package playground

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grafter-tools/grafter/internal/dispatch"
	"github.com/grafter-tools/grafter/internal/ui/style"
)

const historyLimit = 8

type Model struct {
	input       textinput.Model
	registry    *dispatch.Registry
	role        string
	completions []string
	history     []string
}

func New(registry *dispatch.Registry, role string) Model {
	input := textinput.New()
	input.Placeholder = "type a command"
	input.Prompt = "> "
	input.Focus()

	m := Model{
		input:    input,
		registry: registry,
		role:     role,
	}
	m.completions = registry.Complete(context.Background(), role, "")
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m = m.execute()
			return m, nil
		case tea.KeyTab:
			m = m.acceptCompletion()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.completions = m.registry.Complete(context.Background(), m.role, m.input.Value())
	return m, cmd
}

func (m Model) execute() Model {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m
	}

	var result string
	if err := m.registry.Execute(m.role, line); err != nil {
		result = fmt.Sprintf("%s %s", style.Error("✗"), err.Error())
	} else {
		result = fmt.Sprintf("%s %s", style.Success("✓"), line)
	}

	m.history = append(m.history, result)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
	m.input.SetValue("")
	m.completions = m.registry.Complete(context.Background(), m.role, "")
	return m
}

// acceptCompletion replaces the trailing token with the first completion.
func (m Model) acceptCompletion() Model {
	if len(m.completions) == 0 {
		return m
	}
	value := m.input.Value()
	cut := strings.LastIndexByte(value, ' ') + 1
	m.input.SetValue(value[:cut] + m.completions[0])
	m.input.CursorEnd()
	m.completions = m.registry.Complete(context.Background(), m.role, m.input.Value())
	return m
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(style.Header("graft playground"))
	b.WriteString(style.Muted(fmt.Sprintf("  (role: %s, esc to quit)", m.role)))
	b.WriteString("\n\n")

	for _, line := range m.history {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(m.completions) > 0 {
		styled := make([]string, len(m.completions))
		for i, c := range m.completions {
			styled[i] = style.Literal(c)
		}
		b.WriteString(style.Muted("  completions: "))
		b.WriteString(strings.Join(styled, "  "))
		b.WriteString("\n")
	}
	return b.String()
}

// Run starts the playground against the given registry.
func Run(registry *dispatch.Registry, role string) error {
	_, err := tea.NewProgram(New(registry, role)).Run()
	return err
}
