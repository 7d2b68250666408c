package solver

import (
	"fmt"
	"io"
	"strings"

	"github.com/domino14/word_jumble/internal/puzzle"
)

// TextPresenter prints results for a person reading a terminal.
type TextPresenter struct {
	W io.Writer
}

func spaced(letters []byte) string {
	parts := make([]string, len(letters))
	for i, c := range letters {
		parts[i] = strings.ToUpper(string(c))
	}
	return strings.Join(parts, ", ")
}

func (tp TextPresenter) PresentJumble(r JumbleResult) {
	fmt.Fprintf(tp.W, "Jumble: %s\n", r.Jumble)
	if len(r.Candidates) == 0 {
		fmt.Fprintf(tp.W, "No solutions found for %s. Try a supplementary dictionary.\n\n", r.Jumble)
		return
	}
	fmt.Fprintf(tp.W, "Possible solutions: %s\n", strings.Join(r.Candidates, ", "))
	if !r.Resolved() {
		fmt.Fprintf(tp.W, "No solution selected.\n\n")
		return
	}
	fmt.Fprintf(tp.W, "Selected solution: %s\n", strings.ToUpper(r.Chosen))
	fmt.Fprintf(tp.W, "Circled letters: %s\n\n", spaced(r.Circled))
}

func (tp TextPresenter) PresentPhrases(p *puzzle.Puzzle, r *Result) {
	var circled strings.Builder
	for _, jr := range r.Jumbles {
		circled.Write(jr.Circled)
	}
	fmt.Fprintf(tp.W, "All circled letters: %s\n", strings.ToUpper(circled.String()))
	lengths := make([]string, len(p.Final.Lengths))
	for i, l := range p.Final.Lengths {
		lengths[i] = fmt.Sprintf("%d letters", l)
	}
	fmt.Fprintf(tp.W, "Final jumble format: %s\n\n", strings.Join(lengths, ", "))

	if n := len(r.Unresolved()); n > 0 {
		fmt.Fprintf(tp.W, "%d jumble(s) unresolved; the final phrase may be incomplete.\n", n)
	}
	if len(r.Phrases) == 0 {
		fmt.Fprintf(tp.W, "No phrase found for these letters.\n")
	} else {
		fmt.Fprintf(tp.W, "Possible phrases:\n")
		for _, c := range r.Phrases {
			fmt.Fprintf(tp.W, "  %s\n", strings.ToUpper(c.String()))
		}
	}
	if p.Final.Expected != "" {
		expected := strings.ToUpper(p.Final.Expected)
		switch {
		case r.ExpectedFound:
			fmt.Fprintf(tp.W, "\nFINAL SOLUTION: %s\n", expected)
		case r.ExpectedLetters:
			fmt.Fprintf(tp.W, "\nLetters match %s but it is not in the dictionary.\n", expected)
		default:
			fmt.Fprintf(tp.W, "\nUnable to confirm %s from the circled letters.\n", expected)
		}
	}
	if p.Riddle != "" && r.ExpectedFound {
		fmt.Fprintf(tp.W, "%s\n", strings.Replace(strings.ToUpper(p.Riddle), "____",
			strings.ToUpper(p.Final.Expected), 1))
	}
}
