package concat

import "iter"

// Fragment is a single pending chunk awaiting materialization. It is
// immutable once constructed and is consumed whole when the queue
// materializes it into a root buffer.
type Fragment[E any] struct {
	data []E
}

// FragmentOf wraps chunk without copying it. The fragment aliases chunk's
// backing array, so the caller must not mutate chunk while the fragment is
// pending. A zero-length chunk is legal and yields a fragment of length 0.
func FragmentOf[E any](chunk []E) Fragment[E] {
	return Fragment[E]{data: chunk}
}

// FragmentCopyOf captures a private copy of chunk, for callers that cannot
// keep chunk alive or unmodified until materialization.
func FragmentCopyOf[E any](chunk []E) Fragment[E] {
	if len(chunk) == 0 {
		return Fragment[E]{}
	}
	owned := make([]E, len(chunk))
	copy(owned, chunk)
	return Fragment[E]{data: owned}
}

// Len returns the fragment's element count.
func (f Fragment[E]) Len() int { return len(f.data) }

// All yields the fragment's elements in order.
func (f Fragment[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range f.data {
			if !yield(e) {
				return
			}
		}
	}
}
