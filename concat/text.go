package concat

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/lazyconcat/internal/grapheme"
)

// Text is the string form of the container: fragments are strings, the
// materialized prefix is a byte buffer, and the finished value is a string.
// Offsets and lengths are in bytes.
//
// Enqueuing a string never copies it — strings are immutable, so holding a
// view of the caller's string is always safe. Copying happens only when a
// read materializes fragments into the root buffer.
type Text struct {
	b Builder[byte]
}

// NewText creates a Text whose materialized prefix starts as root.
func NewText(root string) *Text {
	t := &Text{}
	if root != "" {
		t.b.root = append(t.b.root, root...)
	}
	return t
}

// NewEmptyText creates a Text with no materialized data.
func NewEmptyText() *Text {
	return &Text{}
}

// Concat enqueues s as a pending fragment and returns the text for
// chaining. Nothing is copied. Never fails; an empty string enqueues a
// zero-length fragment.
func (t *Text) Concat(s string) *Text {
	t.b.mustBeBuilding()
	t.b.pending.Push(FragmentOf(bytesView(s)))
	return t
}

// ExpectFragments pre-sizes the queue for n upcoming Concat calls.
func (t *Text) ExpectFragments(n int) *Text {
	t.b.ExpectFragments(n)
	return t
}

// Len returns the logical length in bytes: materialized plus pending.
func (t *Text) Len() int { return t.b.Len() }

// Materialized returns how many bytes are already contiguous in root.
func (t *Text) Materialized() int { return t.b.Materialized() }

// Normalized reports whether no fragments are pending.
func (t *Text) Normalized() bool { return t.b.Normalized() }

// Normalize materializes every pending fragment into root. Calling it
// again is a no-op.
func (t *Text) Normalize() { t.b.Normalize() }

// NormalizeTo materializes whole fragments until at least n bytes are
// contiguous or nothing is pending. n past the logical length saturates.
func (t *Text) NormalizeTo(n int) { t.b.NormalizeTo(n) }

// NeedsNormalization reports whether any part of r still lies in pending
// fragments.
func (t *Text) NeedsNormalization(r Range) bool { return t.b.NeedsNormalization(r) }

// PendingFragments returns the number of fragments still queued.
func (t *Text) PendingFragments() int { return t.b.PendingFragments() }

// Pending yields the not-yet-materialized fragments as strings, in queue
// order.
func (t *Text) Pending() iter.Seq[string] {
	t.b.mustBeBuilding()
	return func(yield func(string) bool) {
		for f := range t.b.pending.Fragments() {
			if !yield(stringView(f.data)) {
				return
			}
		}
	}
}

// Slice returns the logical bytes in r as a string, materializing the
// minimal whole-fragment prefix needed to cover r.End. The result is a
// copy, so it stays valid and immutable however the container is used
// afterwards. Returns ErrOutOfBounds, without mutating the container, if r
// is malformed or r.End exceeds Len().
//
// Offsets are bytes, not runes: a range that starts or ends inside a
// multi-byte encoding returns the raw byte content, exactly as slicing a
// Go string would.
func (t *Text) Slice(r Range) (string, error) {
	view, err := t.b.Slice(r)
	if err != nil {
		return "", err
	}
	return string(view), nil
}

// Bytes yields the logical byte sequence in order: root first, then each
// pending fragment. Iteration never materializes and never mutates the
// text; each range over the result starts a fresh pass.
func (t *Text) Bytes() iter.Seq[byte] { return t.b.All() }

// Runes yields the logical rune sequence in order. Each fragment is a
// self-contained string, so rune decoding never crosses a fragment
// boundary; invalid UTF-8 decodes to U+FFFD as it does when ranging over a
// Go string. Lazy and non-mutating, like Bytes.
func (t *Text) Runes() iter.Seq[rune] {
	t.b.mustBeBuilding()
	return func(yield func(rune) bool) {
		if !yieldRunes(t.b.root, yield) {
			return
		}
		for f := range t.b.pending.Fragments() {
			if !yieldRunes(f.data, yield) {
				return
			}
		}
	}
}

// Graphemes yields the logical grapheme clusters in order. Cluster
// segmentation needs contiguous text (a cluster may span a fragment
// boundary), so this normalizes the container first.
func (t *Text) Graphemes() iter.Seq[string] {
	t.b.Normalize()
	return grapheme.Iter(t.b.root)
}

// GraphemeCount returns the number of grapheme clusters in the logical
// text. Normalizes first, like Graphemes.
func (t *Text) GraphemeCount() int {
	t.b.Normalize()
	return grapheme.Count(t.b.root)
}

// String renders the logical value — root plus pending fragments — without
// materializing or mutating anything. It equals what Done would return.
func (t *Text) String() string {
	t.b.mustBeBuilding()
	var sb strings.Builder
	sb.Grow(len(t.b.root) + t.b.pending.TotalPending())
	sb.Write(t.b.root)
	for f := range t.b.pending.Fragments() {
		sb.Write(f.data)
	}
	return sb.String()
}

// Done materializes everything and returns the finished string. The text is
// finished afterwards: any further method call panics. The returned string
// reuses the root buffer, which is never touched again.
func (t *Text) Done() string {
	return stringView(t.b.Done())
}

func yieldRunes(b []byte, yield func(rune) bool) bool {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if !yield(r) {
			return false
		}
		i += size
	}
	return true
}
