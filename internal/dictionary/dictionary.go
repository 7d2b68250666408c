// Package dictionary loads the word lists the solver indexes. Entries are
// normalized to lowercase ASCII; anything else is skipped.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/domino14/word_jumble/internal/common"
)

// DefaultPath is the system word list on most unix machines.
const DefaultPath = "/usr/share/dict/words"

// Builtin is used when no word list can be found. It holds just enough to
// solve the default puzzle.
var Builtin = []string{"often", "kiosk", "immune", "cousin", "in", "stinks"}

// ReadWords reads one entry per line. Only the first field of each line is
// used, so lists with definitions after the word work too. It returns the
// normalized words and how many entries were skipped.
func ReadWords(r io.Reader) ([]string, int, error) {
	words := []string{}
	skipped := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		w, ok := common.NormalizeWord(fields[0])
		if !ok {
			skipped++
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, err
	}
	return words, skipped, nil
}

// LoadFile reads a word list from disk.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, skipped, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	log.Info().Str("path", path).Msgf("loaded %s words (%s skipped)",
		humanize.Comma(int64(len(words))), humanize.Comma(int64(skipped)))
	return words, nil
}

// Load reads the primary word list plus any supplementary lists. A missing
// primary list is not fatal: the builtin list is used in its place. A
// missing supplement is an error, since the user asked for it by name.
func Load(primary string, supplements []string) ([]string, error) {
	words, err := LoadFile(primary)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", primary).Msg("dictionary not found, using builtin word list")
		words = append([]string{}, Builtin...)
	} else if err != nil {
		return nil, err
	}
	for _, path := range supplements {
		extra, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("supplementary dictionary: %w", err)
		}
		words = append(words, extra...)
	}
	return words, nil
}
