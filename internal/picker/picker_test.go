package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"

	"github.com/domino14/word_jumble/internal/jumble"
)

var listenCandidates = []string{"enlist", "listen", "silent"}

func press(m model, msgs ...tea.KeyMsg) (model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(model)
	}
	return m, cmd
}

func TestPickerChoose(t *testing.T) {
	is := is.New(t)
	m := newModel(jumble.Jumble{Letters: "tilsen"}, listenCandidates)
	m, cmd := press(m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown}, // stays on the last row
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	is.Equal(m.chosen, "listen")
	is.True(m.done)
	is.True(cmd != nil) // quits
}

func TestPickerVimKeys(t *testing.T) {
	is := is.New(t)
	m := newModel(jumble.Jumble{Letters: "tilsen"}, listenCandidates)
	m, _ = press(m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, // already at the top
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	is.Equal(m.chosen, "silent")
}

func TestPickerSkip(t *testing.T) {
	is := is.New(t)
	m := newModel(jumble.Jumble{Letters: "tilsen"}, listenCandidates)
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	is.Equal(m.chosen, "")
	is.True(m.done)
	is.True(cmd != nil)
}

func TestPickerView(t *testing.T) {
	is := is.New(t)
	m := newModel(jumble.Jumble{Letters: "tilsen"}, listenCandidates)
	view := m.View()
	is.True(strings.Contains(view, "TILSEN"))
	is.True(strings.Contains(view, "> ENLIST"))
	is.True(strings.Contains(view, "  LISTEN"))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	is.Equal(m.View(), "")
}

func TestChooserSingleCandidate(t *testing.T) {
	is := is.New(t)
	w, err := Chooser{}.Choose(jumble.Jumble{Letters: "tefon"}, []string{"often"})
	is.NoErr(err)
	is.Equal(w, "often")
}
