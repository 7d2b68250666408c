package solver

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/domino14/word_jumble/internal/jumble"
)

// AnswerKeyChooser picks without asking anyone. A jumble's answer key wins
// if it is among the candidates. Otherwise a lone candidate is taken, and
// with TakeFirst so is the first of several.
type AnswerKeyChooser struct {
	TakeFirst bool
}

func (c AnswerKeyChooser) Choose(j jumble.Jumble, candidates []string) (string, error) {
	if j.Answer != "" {
		answer := strings.ToLower(j.Answer)
		if slices.Contains(candidates, answer) {
			return answer, nil
		}
		return "", fmt.Errorf("%w: expected solution %q not among candidates", ErrNoChoice, answer)
	}
	if len(candidates) == 1 || c.TakeFirst {
		return candidates[0], nil
	}
	return "", fmt.Errorf("%w: %d candidates for %s", ErrNoChoice, len(candidates), j)
}

// FallbackChooser asks Primary first and Secondary only if Primary made no
// choice.
type FallbackChooser struct {
	Primary   Chooser
	Secondary Chooser
}

func (c FallbackChooser) Choose(j jumble.Jumble, candidates []string) (string, error) {
	w, err := c.Primary.Choose(j, candidates)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, ErrNoChoice) {
		return "", err
	}
	return c.Secondary.Choose(j, candidates)
}
