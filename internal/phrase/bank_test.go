package phrase

import (
	"testing"

	"github.com/matryer/is"
)

func TestLetterBank(t *testing.T) {
	is := is.New(t)
	b, err := NewLetterBank("TNKISNSI")
	is.NoErr(err)
	is.Equal(b.Total(), 8)
	is.Equal(b.Count('n'), 2)
	is.Equal(b.Count('S'), 2)
	is.Equal(b.Count('z'), 0)
	is.Equal(b.String(), "iiknnsst")

	is.True(b.Take("in"))
	is.Equal(b.Total(), 6)
	is.Equal(b.String(), "iknsst")
	b.Restore("in")
	is.Equal(b.String(), "iiknnsst")
}

func TestLetterBankTakeShortage(t *testing.T) {
	is := is.New(t)
	b, err := NewLetterBank("abc")
	is.NoErr(err)
	is.True(!b.Take("abz"))
	is.True(!b.Take("aa"))
	// failed takes leave the bank untouched
	is.Equal(b.String(), "abc")
	is.Equal(b.Total(), 3)
}

func TestLetterBankRejectsNonLetters(t *testing.T) {
	is := is.New(t)
	_, err := NewLetterBank("in-stinks")
	is.True(err != nil)

	var b LetterBank
	is.True(b.Empty())
	is.True(b.Add("a1") != nil)
	is.True(b.Empty()) // nothing added on error
}

func TestLetterBankEqual(t *testing.T) {
	is := is.New(t)
	a, _ := NewLetterBank("instinks")
	b, _ := NewLetterBank("TNKISNSI")
	c, _ := NewLetterBank("instinct")
	is.True(a.Equal(&b))
	is.True(!a.Equal(&c))
}

func TestSubSignatures(t *testing.T) {
	is := is.New(t)
	b, _ := NewLetterBank("aab")
	is.Equal(b.subSignatures(2), []string{"aa", "ab"})
	is.Equal(b.subSignatures(1), []string{"a", "b"})
	is.Equal(b.subSignatures(3), []string{"aab"})
	is.Equal(b.subSignatures(0), []string{""})
	is.Equal(len(b.subSignatures(4)), 0)
	is.Equal(len(b.subSignatures(-1)), 0)

	bank, _ := NewLetterBank("tnkisnsi")
	// k and t appear once, so no "kk" or "tt".
	is.Equal(bank.subSignatures(2), []string{
		"ii", "ik", "in", "is", "it", "kn", "ks", "kt",
		"nn", "ns", "nt", "ss", "st",
	})
}
