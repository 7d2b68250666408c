// Package picker lets a person choose a jumble's answer from its candidates
// in the terminal.
package picker

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/domino14/word_jumble/internal/jumble"
	"github.com/domino14/word_jumble/internal/solver"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Skip   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
	Skip:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("q", "skip")),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

type model struct {
	jumble     jumble.Jumble
	candidates []string
	cursor     int
	chosen     string
	done       bool
}

func newModel(j jumble.Jumble, candidates []string) model {
	return model{jumble: j, candidates: candidates}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(kmsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(kmsg, keys.Down):
		if m.cursor < len(m.candidates)-1 {
			m.cursor++
		}
	case key.Matches(kmsg, keys.Choose):
		m.chosen = m.candidates[m.cursor]
		m.done = true
		return m, tea.Quit
	case key.Matches(kmsg, keys.Skip):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Which word is %s?", m.jumble)))
	b.WriteString("\n\n")
	for i, c := range m.candidates {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + strings.ToUpper(c)))
		} else {
			b.WriteString("  " + strings.ToUpper(c))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(strings.Join([]string{
		keys.Up.Help().Key + " " + keys.Up.Help().Desc,
		keys.Down.Help().Key + " " + keys.Down.Help().Desc,
		keys.Choose.Help().Key + " " + keys.Choose.Help().Desc,
		keys.Skip.Help().Key + " " + keys.Skip.Help().Desc,
	}, " • ")))
	b.WriteString("\n")
	return b.String()
}

// Chooser asks in the terminal whenever a jumble has more than one
// candidate. A lone candidate is taken without asking.
type Chooser struct {
	In  io.Reader
	Out io.Writer
}

func (c Chooser) Choose(j jumble.Jumble, candidates []string) (string, error) {
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	opts := []tea.ProgramOption{}
	if c.In != nil {
		opts = append(opts, tea.WithInput(c.In))
	}
	if c.Out != nil {
		opts = append(opts, tea.WithOutput(c.Out))
	}
	final, err := tea.NewProgram(newModel(j, candidates), opts...).Run()
	if err != nil {
		return "", err
	}
	m := final.(model)
	if m.chosen == "" {
		return "", fmt.Errorf("%w: skipped %s", solver.ErrNoChoice, j)
	}
	return m.chosen, nil
}
