// Package phrase solves the final step of a jumble puzzle: splitting the
// circled letters into a fixed sequence of dictionary words.
package phrase

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/word_jumble/internal/anagram"
)

// Candidate is one way to spell the whole letter bank as words of the
// requested lengths, in order.
type Candidate []string

func (c Candidate) String() string {
	return strings.Join(c, "-")
}

type searcher struct {
	bank    LetterBank
	lengths []int
	idx     *anagram.Index
	chosen  []string
	results []Candidate
}

// FindPartitions returns every sequence of dictionary words whose lengths
// match lengths, in order, and whose letters use up the bank exactly.
// Words at each step are tried alphabetically, so the result order is
// stable. The caller's bank is not modified. No match is an empty result,
// never an error; this includes a bank whose size differs from the sum of
// lengths.
func FindPartitions(bank LetterBank, lengths []int, idx *anagram.Index) []Candidate {
	s := &searcher{
		bank:    bank,
		lengths: lengths,
		idx:     idx,
		chosen:  make([]string, 0, len(lengths)),
		results: []Candidate{},
	}
	s.search(0)
	log.Debug().Str("bank", bank.String()).Ints("lengths", lengths).
		Int("found", len(s.results)).Msg("phrase-search")
	return s.results
}

func (s *searcher) search(step int) {
	if step == len(s.lengths) {
		if s.bank.Empty() {
			c := make(Candidate, len(s.chosen))
			copy(c, s.chosen)
			s.results = append(s.results, c)
		}
		return
	}
	need := 0
	for _, n := range s.lengths[step:] {
		need += n
	}
	if need != s.bank.Total() {
		// Cannot end with an empty bank from here.
		return
	}
	for _, w := range s.wordsFor(s.lengths[step]) {
		if !s.bank.Take(w) {
			continue
		}
		s.chosen = append(s.chosen, w)
		s.search(step + 1)
		s.chosen = s.chosen[:len(s.chosen)-1]
		s.bank.Restore(w)
	}
}

// wordsFor lists, alphabetically, the dictionary words of length n that can
// be spelled from the current bank.
func (s *searcher) wordsFor(n int) []string {
	words := []string{}
	for _, sig := range s.bank.subSignatures(n) {
		for _, w := range s.idx.Lookup(sig) {
			if len(w) == n {
				words = append(words, w)
			}
		}
	}
	sort.Strings(words)
	return words
}
