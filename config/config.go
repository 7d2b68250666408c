package config

import (
	"strings"

	"github.com/namsral/flag"

	"github.com/domino14/word_jumble/internal/dictionary"
)

type Config struct {
	DictPath    string
	Supplements []string
	DBPath      string
	PuzzlePath  string
	Interactive bool
	TakeFirst   bool
	Shards      int

	LogLevel string
}

// Load loads the configs from the given arguments. Every flag can also be
// set through the environment, e.g. JUMBLE_DICT_PATH.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("jumble", "JUMBLE", flag.ContinueOnError)

	var supplements string
	fs.StringVar(&c.DictPath, "dict-path", dictionary.DefaultPath, "word list to solve with, one word per line")
	fs.StringVar(&supplements, "supplement", "", "comma-separated extra word lists, for words the main list lacks")
	fs.StringVar(&c.DBPath, "db-path", "", "alphagram database made by dbmaker; used instead of dict-path when set")
	fs.StringVar(&c.PuzzlePath, "puzzle", "", "puzzle definition (YAML); the built-in puzzle is solved when empty")
	fs.BoolVar(&c.Interactive, "interactive", false, "ask which word to use when a jumble has several answers")
	fs.BoolVar(&c.TakeFirst, "first", false, "use the alphabetically first answer when a jumble has several")
	fs.IntVar(&c.Shards, "shards", 1, "number of goroutines used to build the anagram index")

	fs.StringVar(&c.LogLevel, "log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.Supplements = nil
	for _, s := range strings.Split(supplements, ",") {
		if s = strings.TrimSpace(s); s != "" {
			c.Supplements = append(c.Supplements, s)
		}
	}
	return nil
}
