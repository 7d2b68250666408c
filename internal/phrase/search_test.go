package phrase

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/word_jumble/internal/anagram"
)

var phraseDict = []string{
	"in", "is", "it", "sink", "skin", "snit", "tins", "stink", "stinks",
	"kiosk", "often",
}

func mustBank(t *testing.T, letters string) LetterBank {
	t.Helper()
	b, err := NewLetterBank(letters)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestFindPartitionsInStinks(t *testing.T) {
	idx := anagram.Build([]string{"in", "stinks"})
	bank := mustBank(t, "TNKISNSI")

	res := FindPartitions(bank, []int{2, 6}, idx)
	assert.Equal(t, []Candidate{{"in", "stinks"}}, res)
	assert.Equal(t, "in-stinks", res[0].String())
}

func TestFindPartitionsLargerDictionary(t *testing.T) {
	idx := anagram.Build(phraseDict)
	bank := mustBank(t, "tnkisnsi")

	assert.Equal(t, []Candidate{{"in", "stinks"}}, FindPartitions(bank, []int{2, 6}, idx))
	assert.Equal(t, []Candidate{
		{"sink", "snit"}, {"sink", "tins"},
		{"skin", "snit"}, {"skin", "tins"},
		{"snit", "sink"}, {"snit", "skin"},
		{"tins", "sink"}, {"tins", "skin"},
	}, FindPartitions(bank, []int{4, 4}, idx))
}

func TestFindPartitionsSizeMismatch(t *testing.T) {
	idx := anagram.Build(phraseDict)

	short := mustBank(t, "tnkisns")
	res := FindPartitions(short, []int{2, 6}, idx)
	assert.NotNil(t, res)
	assert.Empty(t, res)

	long := mustBank(t, "tnkisnsix")
	assert.Empty(t, FindPartitions(long, []int{2, 6}, idx))
}

func TestFindPartitionsNoWords(t *testing.T) {
	assert.Empty(t, FindPartitions(mustBank(t, "tnkisnsi"), []int{2, 6}, anagram.Build(nil)))
	assert.Empty(t, FindPartitions(mustBank(t, "tnkisnsi"), []int{8}, anagram.Build(phraseDict)))
	assert.Empty(t, FindPartitions(mustBank(t, "in"), []int{0, 2}, anagram.Build(phraseDict)))
}

func TestFindPartitionsEmptyBankNoLengths(t *testing.T) {
	// Nothing to place and nothing left over: the empty phrase.
	res := FindPartitions(LetterBank{}, nil, anagram.Build(phraseDict))
	assert.Equal(t, []Candidate{{}}, res)
}

func TestFindPartitionsLeavesBankAlone(t *testing.T) {
	is := is.New(t)
	idx := anagram.Build(phraseDict)
	bank := mustBank(t, "tnkisnsi")
	before := bank.String()
	FindPartitions(bank, []int{4, 4}, idx)
	is.Equal(bank.String(), before)
	is.Equal(bank.Total(), 8)
}

func TestFindPartitionsCandidatesSpellBank(t *testing.T) {
	is := is.New(t)
	idx := anagram.Build(phraseDict)
	bank := mustBank(t, "tnkisnsi")
	for _, lengths := range [][]int{{2, 6}, {4, 4}, {2, 2, 4}} {
		for _, c := range FindPartitions(bank, lengths, idx) {
			is.Equal(len(c), len(lengths))
			var used LetterBank
			for i, w := range c {
				is.Equal(len(w), lengths[i]) // word length matches its slot
				is.NoErr(used.Add(w))
			}
			is.True(used.Equal(&bank)) // candidate letters equal the bank
		}
	}
}

func TestFindPartitionsDeterministic(t *testing.T) {
	idx := anagram.Build(phraseDict)
	bank := mustBank(t, "tnkisnsi")
	first := FindPartitions(bank, []int{4, 4}, idx)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, FindPartitions(bank, []int{4, 4}, idx))
	}
}
