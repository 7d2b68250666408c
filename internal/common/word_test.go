package common

import (
	"testing"

	"github.com/matryer/is"
)

type alphagramtestpair struct {
	word      string
	alphagram string
}

var signatureTests = []alphagramtestpair{
	{"often", "efnot"},
	{"tefon", "efnot"},
	{"kiosk", "ikkos"},
	{"immune", "eimmnu"},
	{"stinks", "iknsst"},
	{"a", "a"},
	{"", ""},
}

func TestSignature(t *testing.T) {
	is := is.New(t)
	for _, pair := range signatureTests {
		is.Equal(Signature(pair.word), pair.alphagram) // signature of word
	}
}

func TestSignatureAnagramEquivalence(t *testing.T) {
	is := is.New(t)
	is.Equal(Signature("listen"), Signature("silent"))
	is.Equal(Signature("sokik"), Signature("kiosk"))
	is.True(Signature("often") != Signature("oftens"))
	// Same letters, different counts.
	is.True(Signature("aab") != Signature("abb"))
}

func TestNormalizeWord(t *testing.T) {
	is := is.New(t)
	w, ok := NormalizeWord("  Often\n")
	is.True(ok)
	is.Equal(w, "often")

	for _, bad := range []string{"", "   ", "don't", "naïve", "abc1", "two words"} {
		_, ok := NormalizeWord(bad)
		is.True(!ok) // rejected entry
	}
}
