package concat

import "iter"

// Builder accumulates element chunks destined to be joined into one
// contiguous slice, postponing every copy until a read forces it.
//
// The builder's logical value is root followed by the pending fragments in
// append order. Concat and ConcatCopy only enqueue; Normalize, NormalizeTo,
// Slice and Done move pending data into root. Root only grows — elements
// already materialized are never rewritten or removed.
//
// A Builder is not safe for concurrent use. Concat, ConcatCopy, Normalize,
// NormalizeTo, Slice and Done mutate the container; Len, Materialized,
// Normalized, NeedsNormalization, Pending and All only read it.
type Builder[E any] struct {
	root     []E
	pending  FragmentQueue[E]
	finished bool
}

// New creates a Builder whose materialized prefix starts as root. The
// builder takes ownership of root and will append to it.
func New[E any](root []E) *Builder[E] {
	return &Builder[E]{root: root}
}

// NewEmpty creates a Builder with no materialized data.
func NewEmpty[E any]() *Builder[E] {
	return &Builder[E]{}
}

// Concat enqueues chunk as a pending fragment and returns the builder for
// chaining. Nothing is copied: the builder aliases chunk's backing array,
// and the caller must not mutate chunk until it has been materialized.
// Never fails; an empty chunk enqueues a zero-length fragment.
func (b *Builder[E]) Concat(chunk []E) *Builder[E] {
	b.mustBeBuilding()
	b.pending.Push(FragmentOf(chunk))
	return b
}

// ConcatCopy enqueues a private copy of chunk. Use it when chunk's backing
// array cannot be kept alive and unmodified for as long as the fragment is
// pending.
func (b *Builder[E]) ConcatCopy(chunk []E) *Builder[E] {
	b.mustBeBuilding()
	b.pending.Push(FragmentCopyOf(chunk))
	return b
}

// ExpectFragments pre-sizes the queue for n upcoming Concat calls.
func (b *Builder[E]) ExpectFragments(n int) *Builder[E] {
	b.mustBeBuilding()
	b.pending.Grow(n)
	return b
}

// Len returns the logical length: materialized plus pending.
func (b *Builder[E]) Len() int {
	b.mustBeBuilding()
	return len(b.root) + b.pending.TotalPending()
}

// Materialized returns how many elements are already contiguous in root.
func (b *Builder[E]) Materialized() int {
	b.mustBeBuilding()
	return len(b.root)
}

// Normalized reports whether no fragments are pending.
func (b *Builder[E]) Normalized() bool {
	b.mustBeBuilding()
	return b.pending.IsEmpty()
}

// Normalize materializes every pending fragment into root. Calling it again
// is a no-op.
func (b *Builder[E]) Normalize() {
	b.mustBeBuilding()
	b.root, _ = b.pending.MaterializeAll(b.root)
}

// NormalizeTo materializes whole fragments until at least n elements are
// contiguous or nothing is pending, whichever comes first. n past the
// logical length saturates; n at or below Materialized() is a no-op.
func (b *Builder[E]) NormalizeTo(n int) {
	b.mustBeBuilding()
	if need := n - len(b.root); need > 0 {
		b.root, _ = b.pending.MaterializeUpTo(b.root, need)
	}
}

// NeedsNormalization reports whether any part of r still lies in pending
// fragments. Callers may use it with NormalizeTo as a fast-path hint, but
// Slice already normalizes on demand.
func (b *Builder[E]) NeedsNormalization(r Range) bool {
	b.mustBeBuilding()
	return r.End > len(b.root)
}

// Slice returns a read-only view of the logical elements in r. It
// materializes the minimal whole-fragment prefix needed to cover r.End;
// fragments entirely past r.End stay pending. Returns ErrOutOfBounds,
// without mutating the container, if r is malformed or r.End exceeds Len().
func (b *Builder[E]) Slice(r Range) ([]E, error) {
	b.mustBeBuilding()
	if !r.wellFormed() || r.End > b.Len() {
		return nil, ErrOutOfBounds
	}
	if r.End > len(b.root) {
		b.NormalizeTo(r.End)
	}
	return b.root[r.Start:r.End:r.End], nil
}

// All yields the logical sequence in order: root first, then each pending
// fragment. Iteration never materializes and never mutates the builder;
// each range over the result starts a fresh pass.
func (b *Builder[E]) All() iter.Seq[E] {
	b.mustBeBuilding()
	return func(yield func(E) bool) {
		for _, e := range b.root {
			if !yield(e) {
				return
			}
		}
		for e := range b.pending.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// Pending yields the not-yet-materialized fragments in queue order.
func (b *Builder[E]) Pending() iter.Seq[Fragment[E]] {
	b.mustBeBuilding()
	return b.pending.Fragments()
}

// PendingFragments returns the number of fragments still queued.
func (b *Builder[E]) PendingFragments() int {
	b.mustBeBuilding()
	return b.pending.Len()
}

// Done materializes everything and returns the finished slice. The builder
// is finished afterwards: any further method call panics.
func (b *Builder[E]) Done() []E {
	b.mustBeBuilding()
	b.root, _ = b.pending.MaterializeAll(b.root)
	b.finished = true
	root := b.root
	b.root = nil
	return root
}

func (b *Builder[E]) mustBeBuilding() {
	if b.finished {
		panic("concat: container used after Done")
	}
}
