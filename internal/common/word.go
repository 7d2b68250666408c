package common

import (
	"sort"
	"strings"
)

// Signature returns the alphagram of s: its letters sorted ascending. Two
// words are anagrams of each other iff their signatures are equal.
func Signature(s string) string {
	letters := []byte(s)
	sort.Slice(letters, func(i, j int) bool {
		return letters[i] < letters[j]
	})
	return string(letters)
}

// NormalizeWord lowercases and trims a raw dictionary entry. It returns
// false if the entry is empty or contains anything but ASCII letters.
func NormalizeWord(raw string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(raw))
	if w == "" {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", false
		}
	}
	return w, true
}
