package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/word_jumble/config"
	"github.com/domino14/word_jumble/internal/anagram"
	"github.com/domino14/word_jumble/internal/dictionary"
	"github.com/domino14/word_jumble/internal/jumble"
	"github.com/domino14/word_jumble/internal/picker"
	"github.com/domino14/word_jumble/internal/puzzle"
	"github.com/domino14/word_jumble/internal/solver"
)

func setLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func loadWords(cfg *config.Config) ([]string, error) {
	if cfg.DBPath != "" {
		words, err := dictionary.LoadSQLite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		for _, path := range cfg.Supplements {
			extra, err := dictionary.LoadFile(path)
			if err != nil {
				return nil, err
			}
			words = append(words, extra...)
		}
		return words, nil
	}
	return dictionary.Load(cfg.DictPath, cfg.Supplements)
}

func loadPuzzle(cfg *config.Config) (*puzzle.Puzzle, error) {
	if cfg.PuzzlePath == "" {
		return puzzle.Default(), nil
	}
	return puzzle.Load(cfg.PuzzlePath)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	setLogLevel(cfg.LogLevel)
	log.Debug().Interface("config", cfg).Msg("jumble-started")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p, err := loadPuzzle(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load puzzle")
	}
	words, err := loadWords(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load dictionary")
	}
	idx, err := anagram.BuildConcurrent(ctx, words, cfg.Shards)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build index")
	}
	log.Info().Int("words", idx.Len()).Int("alphagrams", idx.Buckets()).Msg("index-built")

	var chooser solver.Chooser = solver.AnswerKeyChooser{TakeFirst: cfg.TakeFirst}
	if cfg.Interactive {
		chooser = solver.FallbackChooser{
			Primary:   chooser,
			Secondary: picker.Chooser{In: os.Stdin, Out: os.Stderr},
		}
	}
	s := &solver.Solver{
		Index:     idx,
		Chooser:   chooser,
		Presenter: solver.TextPresenter{W: os.Stdout},
	}
	res, err := s.Solve(ctx, p)
	if errors.Is(err, jumble.ErrConfiguration) {
		log.Fatal().Err(err).Msg("puzzle definition is invalid")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if !res.Solved() {
		stop()
		os.Exit(1)
	}
}
