package phrase

import (
	"fmt"
	"strings"
)

const alphabetSize = 26

// LetterBank is a multiset of lowercase letters. It works like a rack: the
// search takes letters out of it for a word and puts them back when it
// backtracks.
type LetterBank struct {
	counts [alphabetSize]int
	total  int
}

// NewLetterBank builds a bank from letters. Case is ignored; anything other
// than an ASCII letter is an error.
func NewLetterBank(letters string) (LetterBank, error) {
	var b LetterBank
	if err := b.Add(letters); err != nil {
		return LetterBank{}, err
	}
	return b, nil
}

// Add puts more letters into the bank.
func (b *LetterBank) Add(letters string) error {
	letters = strings.ToLower(letters)
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c < 'a' || c > 'z' {
			return fmt.Errorf("letter bank only holds a-z, got %q", c)
		}
	}
	for i := 0; i < len(letters); i++ {
		b.counts[letters[i]-'a']++
		b.total++
	}
	return nil
}

// Count is how many of letter c the bank holds.
func (b *LetterBank) Count(c byte) int {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 'a' || c > 'z' {
		return 0
	}
	return b.counts[c-'a']
}

func (b *LetterBank) Total() int {
	return b.total
}

func (b *LetterBank) Empty() bool {
	return b.total == 0
}

// Take removes the letters of word from the bank. If the bank does not hold
// all of them it is left unchanged and Take returns false.
func (b *LetterBank) Take(word string) bool {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' || b.counts[c-'a'] == 0 {
			// undo what we took so far
			b.Restore(word[:i])
			return false
		}
		b.counts[c-'a']--
		b.total--
	}
	return true
}

// Restore puts back letters previously removed with Take.
func (b *LetterBank) Restore(word string) {
	for i := 0; i < len(word); i++ {
		b.counts[word[i]-'a']++
		b.total++
	}
}

// Equal reports whether both banks hold exactly the same letters.
func (b *LetterBank) Equal(o *LetterBank) bool {
	return b.counts == o.counts
}

// String returns the bank's letters in sorted order.
func (b *LetterBank) String() string {
	var sb strings.Builder
	for i, n := range b.counts {
		for range n {
			sb.WriteByte(byte('a' + i))
		}
	}
	return sb.String()
}

// subSignatures lists, in ascending order, the signature of every distinct
// sub-multiset of the bank with exactly n letters.
func (b *LetterBank) subSignatures(n int) []string {
	if n < 0 || n > b.total {
		return nil
	}
	// avail[i] is how many letters remain from index i onward.
	var avail [alphabetSize + 1]int
	for i := alphabetSize - 1; i >= 0; i-- {
		avail[i] = avail[i+1] + b.counts[i]
	}
	sigs := []string{}
	buf := make([]byte, 0, n)

	var gen func(letter, remaining int)
	gen = func(letter, remaining int) {
		if remaining == 0 {
			sigs = append(sigs, string(buf))
			return
		}
		if letter == alphabetSize || avail[letter] < remaining {
			return
		}
		most := min(b.counts[letter], remaining)
		for k := most; k >= 0; k-- {
			for range k {
				buf = append(buf, byte('a'+letter))
			}
			gen(letter+1, remaining-k)
			buf = buf[:len(buf)-k]
		}
	}
	gen(0, n)
	return sigs
}
