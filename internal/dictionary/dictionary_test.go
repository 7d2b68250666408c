package dictionary

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func writeList(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadWords(t *testing.T) {
	is := is.New(t)
	list := "Often\nkiosk a kind of booth\n\n  immune  \ndon't\nAlice's\nnaïve\ncousin\n"
	words, skipped, err := ReadWords(strings.NewReader(list))
	is.NoErr(err)
	is.Equal(words, []string{"often", "kiosk", "immune", "cousin"})
	is.Equal(skipped, 3)
}

func TestLoadFallsBackToBuiltin(t *testing.T) {
	is := is.New(t)
	words, err := Load(filepath.Join(t.TempDir(), "missing.txt"), nil)
	is.NoErr(err)
	is.Equal(words, Builtin)

	// The fallback is a copy.
	words[0] = "changed"
	is.Equal(Builtin[0], "often")
}

func TestLoadWithSupplements(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	primary := writeList(t, dir, "words.txt", "often\nkiosk\n")
	extra := writeList(t, dir, "extra.txt", "IMMUNE\ncousin\n")

	words, err := Load(primary, []string{extra})
	is.NoErr(err)
	is.Equal(words, []string{"often", "kiosk", "immune", "cousin"})
}

func TestLoadMissingSupplement(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	primary := writeList(t, dir, "words.txt", "often\n")
	_, err := Load(primary, []string{filepath.Join(dir, "nope.txt")})
	is.True(errors.Is(err, fs.ErrNotExist))
}

func TestLoadSQLiteMissing(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "nope.db")
	_, err := LoadSQLite(path)
	is.True(errors.Is(err, fs.ErrNotExist))
	_, statErr := os.Stat(path)
	is.True(errors.Is(statErr, fs.ErrNotExist)) // no empty db left behind
}
