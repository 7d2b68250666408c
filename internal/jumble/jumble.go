// Package jumble resolves single scrambled words against an anagram index
// and pulls out the letters a puzzle circles in each solution.
package jumble

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/word_jumble/internal/anagram"
	"github.com/domino14/word_jumble/internal/common"
)

var (
	// ErrConfiguration marks a puzzle definition that can never be solved
	// as written. It aborts the run.
	ErrConfiguration = errors.New("invalid puzzle configuration")
	// ErrIndexOutOfRange is returned when a circle position falls outside
	// the solved word.
	ErrIndexOutOfRange = fmt.Errorf("%w: circle position out of range", ErrConfiguration)
)

// Jumble is one scrambled word in a puzzle. Circles are 1-based positions
// into the solved word, not into Letters.
type Jumble struct {
	Letters string `yaml:"letters"`
	Circles []int  `yaml:"circles"`
	// Answer is an optional answer key, used to pick among several
	// candidates without asking.
	Answer string `yaml:"answer,omitempty"`
}

func (j Jumble) String() string {
	return strings.ToUpper(j.Letters)
}

// Validate checks the static definition of a jumble.
func Validate(j Jumble) error {
	letters := strings.ToLower(j.Letters)
	if w, ok := common.NormalizeWord(letters); !ok || w != letters {
		return fmt.Errorf("%w: jumble %q must be non-empty ASCII letters", ErrConfiguration, j.Letters)
	}
	if len(j.Circles) == 0 {
		return fmt.Errorf("%w: jumble %q has no circled positions", ErrConfiguration, j.Letters)
	}
	for _, p := range j.Circles {
		if p < 1 || p > len(letters) {
			return fmt.Errorf("%w: position %d in jumble %q (length %d)",
				ErrIndexOutOfRange, p, j.Letters, len(letters))
		}
	}
	if j.Answer != "" && common.Signature(strings.ToLower(j.Answer)) != common.Signature(letters) {
		return fmt.Errorf("%w: answer %q is not an anagram of %q", ErrConfiguration, j.Answer, j.Letters)
	}
	return nil
}

// Resolve returns every dictionary word that is an anagram of the jumble's
// letters, in alphabetical order. An empty result means the dictionary does
// not contain the answer; it is not an error.
func Resolve(j Jumble, idx *anagram.Index) []string {
	letters := strings.ToLower(j.Letters)
	candidates := idx.Lookup(common.Signature(letters))
	words := make([]string, 0, len(candidates))
	for _, c := range candidates {
		// Lookup is already sorted; this only guards against noisy
		// dictionaries.
		if len(c) == len(letters) {
			words = append(words, c)
		}
	}
	log.Debug().Str("jumble", letters).Strs("candidates", words).Msg("resolved")
	return words
}

// ExtractCircled returns word's letters at the given 1-based positions, in
// the order the positions are given.
func ExtractCircled(word string, positions []int) ([]byte, error) {
	circled := make([]byte, 0, len(positions))
	for _, p := range positions {
		if p < 1 || p > len(word) {
			return nil, fmt.Errorf("%w: position %d in %q (length %d)",
				ErrIndexOutOfRange, p, word, len(word))
		}
		circled = append(circled, word[p-1])
	}
	return circled, nil
}
