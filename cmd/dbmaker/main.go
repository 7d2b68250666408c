// The caller of the db creator.
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/word_jumble/dbmaker"
	"github.com/domino14/word_jumble/internal/dictionary"
)

type Config struct {
	wordList    string
	output      string
	forceCreate bool
	logLevel    string
}

// Load loads the configs from the given arguments
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("dbmaker", flag.ContinueOnError)

	fs.StringVar(&c.wordList, "wordlist", dictionary.DefaultPath, "word list to convert, one word per line")
	fs.StringVar(&c.output, "output", "jumble.db", "The output database")
	fs.BoolVar(&c.forceCreate, "force", false, "Create DB even if it already exists (overwrite)")
	fs.StringVar(&c.logLevel, "log-level", "info", "log level")
	return fs.Parse(args)
}

func main() {
	cfg := &Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.logLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Info().Str("wordlist", cfg.wordList).Str("output", cfg.output).Msg("dbmaker-started")

	// MkdirAll will make any intermediate dirs but fail gracefully if they exist.
	if err := os.MkdirAll(filepath.Dir(cfg.output), os.ModePerm); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	words, err := dictionary.LoadFile(cfg.wordList)
	if err != nil {
		log.Fatal().Err(err).Msg("could not read word list")
	}
	n, err := dbmaker.CreateAlphagramDatabase(words, cfg.output, cfg.forceCreate)
	if errors.Is(err, dbmaker.ErrDatabaseExists) {
		log.Fatal().Err(err).Msg("pass -force to overwrite")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	log.Info().Int("words", n).Str("output", cfg.output).Msg("dbmaker-done")
}
