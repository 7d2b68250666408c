// Package dbmaker writes SQLite alphagram databases from plain word lists,
// so the solver can load a prepared dictionary without parsing text.
package dbmaker

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sort"

	// sqlite3 driver is used to write the databases.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/domino14/word_jumble/internal/common"
)

var ErrDatabaseExists = errors.New("database already exists")

type Alphagram struct {
	words     []string
	alphagram string
}

func (a *Alphagram) String() string {
	return fmt.Sprintf("Alphagram: %s (%d)", a.alphagram, len(a.words))
}

type AlphByLength []*Alphagram

func (a AlphByLength) Len() int      { return len(a) }
func (a AlphByLength) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a AlphByLength) Less(i, j int) bool {
	if len(a[i].alphagram) != len(a[j].alphagram) {
		return len(a[i].alphagram) < len(a[j].alphagram)
	}
	return a[i].alphagram < a[j].alphagram
}

// populateAlphagrams groups normalized words by alphagram. Duplicates are
// dropped; entries that do not normalize are skipped.
func populateAlphagrams(words []string) map[string]*Alphagram {
	alphagrams := make(map[string]*Alphagram)
	seen := map[string]bool{}
	for _, raw := range words {
		word, ok := common.NormalizeWord(raw)
		if !ok || seen[word] {
			continue
		}
		seen[word] = true
		alphagram := common.Signature(word)
		alph, ok := alphagrams[alphagram]
		if !ok {
			alphagrams[alphagram] = &Alphagram{[]string{word}, alphagram}
		} else {
			alph.words = append(alph.words, word)
		}
	}
	for _, alph := range alphagrams {
		sort.Strings(alph.words)
	}
	return alphagrams
}

func sortedAlphagrams(theMap map[string]*Alphagram) []*Alphagram {
	x := make([]*Alphagram, 0, len(theMap))
	for _, value := range theMap {
		x = append(x, value)
	}
	sort.Sort(AlphByLength(x))
	return x
}

const schema = `
CREATE TABLE alphagrams (
	alphagram TEXT PRIMARY KEY,
	length INTEGER NOT NULL,
	num_anagrams INTEGER NOT NULL
);
CREATE TABLE words (
	word TEXT PRIMARY KEY,
	alphagram TEXT NOT NULL REFERENCES alphagrams(alphagram)
);
CREATE INDEX alpha_length_index ON alphagrams(length);
CREATE INDEX word_alphagram_index ON words(alphagram);
`

// CreateAlphagramDatabase writes words to a new SQLite database at
// outputPath. Unless force is set an existing file is left alone and
// ErrDatabaseExists is returned. The database is written to a temporary
// file first and renamed into place when complete.
func CreateAlphagramDatabase(words []string, outputPath string, force bool) (int, error) {
	if _, err := os.Stat(outputPath); err == nil && !force {
		return 0, fmt.Errorf("%w: %s", ErrDatabaseExists, outputPath)
	}
	tmpPath := outputPath + ".tmp"
	os.Remove(tmpPath)

	alphs := sortedAlphagrams(populateAlphagrams(words))
	log.Info().Int("alphagrams", len(alphs)).Str("output", outputPath).Msg("creating-alphagram-db")

	numWords, err := writeDatabase(tmpPath, alphs)
	if err != nil {
		os.Remove(tmpPath)
		return 0, err
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		return 0, err
	}
	return numWords, nil
}

func writeDatabase(path string, alphs []*Alphagram) (int, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return 0, fmt.Errorf("creating schema: %w", err)
	}
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	alphStmt, err := tx.Prepare(`
		INSERT INTO alphagrams(alphagram, length, num_anagrams) VALUES (?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer alphStmt.Close()
	wordStmt, err := tx.Prepare(`
		INSERT INTO words(word, alphagram) VALUES (?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer wordStmt.Close()

	numWords := 0
	for i, alph := range alphs {
		if _, err := alphStmt.Exec(alph.alphagram, len(alph.alphagram), len(alph.words)); err != nil {
			return 0, err
		}
		for _, w := range alph.words {
			if _, err := wordStmt.Exec(w, alph.alphagram); err != nil {
				return 0, err
			}
			numWords++
		}
		if (i+1)%10000 == 0 {
			log.Debug().Msgf("%d...", i+1)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return numWords, nil
}
