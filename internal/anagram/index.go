// Package anagram holds the alphagram index used for every dictionary
// lookup in the solver. An Index maps a signature (the sorted letters of a
// word) to the set of dictionary words that share it.
package anagram

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/word_jumble/internal/common"
)

// Index is immutable once built and may be shared by any number of
// goroutines.
type Index struct {
	buckets  map[string]map[string]struct{}
	numWords int
}

// Build creates an index over words. Duplicate words are stored once and
// empty strings are skipped. An empty dictionary yields an empty index.
func Build(words []string) *Index {
	idx := &Index{buckets: buildBuckets(words)}
	idx.count()
	return idx
}

// BuildConcurrent splits words into shards, builds each shard's buckets in
// its own goroutine and merges them. The result is equal to Build(words).
func BuildConcurrent(ctx context.Context, words []string, shards int) (*Index, error) {
	if shards <= 1 || len(words) < shards {
		return Build(words), nil
	}
	partials := make([]map[string]map[string]struct{}, shards)
	shardSize := (len(words) + shards - 1) / shards

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < shards; i++ {
		lo := i * shardSize
		hi := min(lo+shardSize, len(words))
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partials[i] = buildBuckets(words[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := map[string]map[string]struct{}{}
	for _, p := range partials {
		for sig, bucket := range p {
			dst, ok := merged[sig]
			if !ok {
				merged[sig] = bucket
				continue
			}
			for w := range bucket {
				dst[w] = struct{}{}
			}
		}
	}
	idx := &Index{buckets: merged}
	idx.count()
	log.Debug().Int("shards", shards).Int("words", idx.numWords).Msg("built-index-concurrently")
	return idx, nil
}

func buildBuckets(words []string) map[string]map[string]struct{} {
	buckets := map[string]map[string]struct{}{}
	for _, w := range words {
		if w == "" {
			continue
		}
		sig := common.Signature(w)
		bucket, ok := buckets[sig]
		if !ok {
			bucket = map[string]struct{}{}
			buckets[sig] = bucket
		}
		bucket[w] = struct{}{}
	}
	return buckets
}

func (idx *Index) count() {
	idx.numWords = 0
	for _, b := range idx.buckets {
		idx.numWords += len(b)
	}
}

// Lookup returns the words filed under signature, sorted. It returns nil
// when there are none.
func (idx *Index) Lookup(signature string) []string {
	bucket, ok := idx.buckets[signature]
	if !ok {
		return nil
	}
	words := make([]string, 0, len(bucket))
	for w := range bucket {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Contains reports whether word itself is in the index.
func (idx *Index) Contains(word string) bool {
	_, ok := idx.buckets[common.Signature(word)][word]
	return ok
}

// Len is the number of distinct words in the index.
func (idx *Index) Len() int {
	return idx.numWords
}

// Buckets is the number of distinct signatures.
func (idx *Index) Buckets() int {
	return len(idx.buckets)
}
