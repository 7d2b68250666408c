// Package solver runs a whole jumble puzzle: it resolves every jumble,
// collects the circled letters of the chosen answers and searches for the
// final phrase.
package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/word_jumble/internal/anagram"
	"github.com/domino14/word_jumble/internal/jumble"
	"github.com/domino14/word_jumble/internal/phrase"
	"github.com/domino14/word_jumble/internal/puzzle"
)

// ErrNoChoice is returned by a Chooser that could not, or would not, pick a
// candidate. The jumble is then reported as unresolved.
var ErrNoChoice = errors.New("no candidate chosen")

// Chooser picks the answer to a jumble among its candidates. candidates is
// never empty.
type Chooser interface {
	Choose(j jumble.Jumble, candidates []string) (string, error)
}

// Presenter shows results as they are produced.
type Presenter interface {
	PresentJumble(r JumbleResult)
	PresentPhrases(p *puzzle.Puzzle, r *Result)
}

type JumbleResult struct {
	Jumble     jumble.Jumble
	Candidates []string
	// Chosen and Circled are empty when the jumble is unresolved.
	Chosen  string
	Circled []byte
}

func (r JumbleResult) Resolved() bool {
	return r.Chosen != ""
}

type Result struct {
	Jumbles []JumbleResult
	Bank    phrase.LetterBank
	Phrases []phrase.Candidate
	// ExpectedLetters is set when the puzzle has an answer key and the bank
	// holds exactly its letters; ExpectedFound when the answer key is also
	// among Phrases.
	ExpectedLetters bool
	ExpectedFound   bool
}

// Unresolved lists the jumbles that got no answer.
func (r *Result) Unresolved() []jumble.Jumble {
	js := []jumble.Jumble{}
	for _, jr := range r.Jumbles {
		if !jr.Resolved() {
			js = append(js, jr.Jumble)
		}
	}
	return js
}

// Solved is true when every jumble was resolved and at least one final
// phrase was found.
func (r *Result) Solved() bool {
	return len(r.Unresolved()) == 0 && len(r.Phrases) > 0
}

type Solver struct {
	Index     *anagram.Index
	Chooser   Chooser
	Presenter Presenter
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Info().Msgf("%s took %s", name, elapsed)
}

// Solve runs the puzzle. It fails only on an invalid puzzle, a chooser
// error other than ErrNoChoice, or a cancelled context; missing words are
// reported through the Result.
func (s *Solver) Solve(ctx context.Context, p *puzzle.Puzzle) (*Result, error) {
	defer timeTrack(time.Now(), "solve")
	if err := p.Validate(); err != nil {
		return nil, err
	}
	res := &Result{}

	for _, j := range p.Jumbles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		jr, err := s.resolveOne(j)
		if err != nil {
			return nil, err
		}
		if jr.Resolved() {
			// Validate already checked the letters.
			if err := res.Bank.Add(string(jr.Circled)); err != nil {
				return nil, err
			}
		}
		res.Jumbles = append(res.Jumbles, jr)
		if s.Presenter != nil {
			s.Presenter.PresentJumble(jr)
		}
	}

	res.Phrases = phrase.FindPartitions(res.Bank, p.Final.Lengths, s.Index)
	if p.Final.Expected != "" {
		expected := strings.ReplaceAll(strings.ToLower(p.Final.Expected), "-", "")
		want, err := phrase.NewLetterBank(expected)
		if err != nil {
			return nil, err
		}
		res.ExpectedLetters = want.Equal(&res.Bank)
		for _, c := range res.Phrases {
			if c.String() == strings.ToLower(p.Final.Expected) {
				res.ExpectedFound = true
			}
		}
	}
	log.Info().Str("bank", res.Bank.String()).Int("phrases", len(res.Phrases)).
		Int("unresolved", len(res.Unresolved())).Msg("puzzle-solved")

	if s.Presenter != nil {
		s.Presenter.PresentPhrases(p, res)
	}
	return res, nil
}

func (s *Solver) resolveOne(j jumble.Jumble) (JumbleResult, error) {
	jr := JumbleResult{Jumble: j, Candidates: jumble.Resolve(j, s.Index)}
	if len(jr.Candidates) == 0 {
		log.Warn().Str("jumble", j.String()).Msg("no-candidates")
		return jr, nil
	}
	chosen, err := s.Chooser.Choose(j, jr.Candidates)
	if errors.Is(err, ErrNoChoice) {
		log.Warn().Err(err).Str("jumble", j.String()).Msg("unresolved")
		return jr, nil
	}
	if err != nil {
		return jr, err
	}
	circled, err := jumble.ExtractCircled(chosen, j.Circles)
	if err != nil {
		return jr, fmt.Errorf("jumble %s: %w", j, err)
	}
	jr.Chosen = chosen
	jr.Circled = circled
	return jr, nil
}
