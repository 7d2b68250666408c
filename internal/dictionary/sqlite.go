package dictionary

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	// sqlite3 driver is used to read alphagram databases.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// LoadSQLite reads every word from an alphagram database written by
// dbmaker.
func LoadSQLite(path string) ([]string, error) {
	// sql.Open would happily create an empty database.
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT word FROM words ORDER BY word")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", path, err)
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Msgf("loaded %s words from db", humanize.Comma(int64(len(words))))
	return words, nil
}
