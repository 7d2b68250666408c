// Package puzzle holds static jumble puzzle definitions: the scrambled
// words, which letters of each answer are circled, and the shape of the
// final phrase.
package puzzle

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/domino14/word_jumble/internal/common"
	"github.com/domino14/word_jumble/internal/jumble"
)

// ErrInvalidPuzzle wraps jumble.ErrConfiguration.
var ErrInvalidPuzzle = fmt.Errorf("%w: invalid puzzle", jumble.ErrConfiguration)

type Final struct {
	// Lengths are the word lengths of the final phrase, in order.
	Lengths []int `yaml:"lengths"`
	// Expected is an optional answer key such as "in-stinks".
	Expected string `yaml:"expected,omitempty"`
}

type Puzzle struct {
	Name    string          `yaml:"name"`
	Riddle  string          `yaml:"riddle,omitempty"`
	Jumbles []jumble.Jumble `yaml:"jumbles"`
	Final   Final           `yaml:"final"`
}

// Default is the newspaper puzzle the solver was first written for.
func Default() *Puzzle {
	return &Puzzle{
		Name:   "farley",
		Riddle: "Farley rolled on the barn floor because of his ____",
		Jumbles: []jumble.Jumble{
			{Letters: "TEFON", Circles: []int{3, 5}, Answer: "often"},
			{Letters: "SOKIK", Circles: []int{1, 2, 4}, Answer: "kiosk"},
			{Letters: "NIUMEM", Circles: []int{5}, Answer: "immune"},
			{Letters: "SICONU", Circles: []int{4, 5}, Answer: "cousin"},
		},
		Final: Final{
			Lengths:  []int{2, 6},
			Expected: "in-stinks",
		},
	}
}

// Load reads a puzzle definition from a YAML file and validates it.
func Load(path string) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading puzzle file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Puzzle, error) {
	p := &Puzzle{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing puzzle file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NumCircled is how many letters the jumbles contribute to the final
// phrase.
func (p *Puzzle) NumCircled() int {
	n := 0
	for _, j := range p.Jumbles {
		n += len(j.Circles)
	}
	return n
}

// Validate checks every jumble and that the final phrase uses exactly the
// circled letters.
func (p *Puzzle) Validate() error {
	if len(p.Jumbles) == 0 {
		return fmt.Errorf("%w: no jumbles", ErrInvalidPuzzle)
	}
	for _, j := range p.Jumbles {
		if err := jumble.Validate(j); err != nil {
			return err
		}
	}
	if len(p.Final.Lengths) == 0 {
		return fmt.Errorf("%w: final phrase has no word lengths", ErrInvalidPuzzle)
	}
	sum := 0
	for _, l := range p.Final.Lengths {
		if l < 1 {
			return fmt.Errorf("%w: final word length %d", ErrInvalidPuzzle, l)
		}
		sum += l
	}
	if sum != p.NumCircled() {
		return fmt.Errorf("%w: final lengths %v add up to %d but %d letters are circled",
			ErrInvalidPuzzle, p.Final.Lengths, sum, p.NumCircled())
	}
	if p.Final.Expected != "" {
		words := strings.Split(p.Final.Expected, "-")
		if len(words) != len(p.Final.Lengths) {
			return fmt.Errorf("%w: expected phrase %q does not have %d words",
				ErrInvalidPuzzle, p.Final.Expected, len(p.Final.Lengths))
		}
		for i, w := range words {
			if _, ok := common.NormalizeWord(w); !ok || len(w) != p.Final.Lengths[i] {
				return fmt.Errorf("%w: expected phrase %q does not match lengths %v",
					ErrInvalidPuzzle, p.Final.Expected, p.Final.Lengths)
			}
		}
	}
	return nil
}
