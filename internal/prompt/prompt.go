// Package prompt collects single validated lines of text from a terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user leaves a prompt with Esc or Ctrl+C.
var ErrCancelled = errors.New("input cancelled")

// Question describes one value to collect.
type Question struct {
	// Prompt is printed in front of the input.
	Prompt string
	// Validate checks the trimmed input on Enter. A non-nil error is shown
	// to the user and the question is asked again. nil accepts anything.
	Validate func(string) error
}

// Asker returns a validated answer or ErrCancelled.
type Asker interface {
	Ask(q Question) (string, error)
}

// Terminal asks questions with a bubbletea program on In and Out.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

func (t *Terminal) Ask(q Question) (string, error) {
	p := tea.NewProgram(newModel(q), tea.WithInput(t.In), tea.WithOutput(t.Out))

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	m, ok := final.(model)
	if !ok || m.cancelled {
		return "", ErrCancelled
	}
	return m.answer, nil
}

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// model is a one-line text input
type model struct {
	question  Question
	input     []rune
	errMsg    string
	answer    string
	done      bool
	cancelled bool
}

func newModel(q Question) model {
	return model{question: q}
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles key presses
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	}

	return m, nil
}

func (m model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(string(m.input))

	if m.question.Validate != nil {
		if err := m.question.Validate(value); err != nil {
			m.errMsg = err.Error()
			m.input = nil
			return m, nil
		}
	}

	m.errMsg = ""
	m.answer = value
	m.done = true
	return m, tea.Quit
}

// View renders the prompt, the pending input and the last validation error
func (m model) View() string {
	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(promptStyle.Render(m.question.Prompt))
	b.WriteString(string(m.input))
	if !m.done && !m.cancelled {
		b.WriteString("█")
	}
	b.WriteString("\n")

	return b.String()
}
