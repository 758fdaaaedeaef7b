package grapheme

import (
	"iter"

	"github.com/rivo/uniseg"
)

// Iter yields the grapheme clusters of text in order. Each yielded cluster
// is its own string, safe to retain.
func Iter(text []byte) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := text
		state := -1
		var cluster []byte
		for len(rest) > 0 {
			cluster, rest, _, state = uniseg.FirstGraphemeCluster(rest, state)
			if !yield(string(cluster)) {
				return
			}
		}
	}
}

// Count returns the number of grapheme clusters in text.
func Count(text []byte) int {
	rest := text
	state := -1
	n := 0
	for len(rest) > 0 {
		_, rest, _, state = uniseg.FirstGraphemeCluster(rest, state)
		n++
	}
	return n
}
