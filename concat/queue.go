package concat

import "iter"

// FragmentQueue is an append-order sequence of pending fragments with an
// incrementally maintained total length. Fragments leave the queue only
// from the front, and only whole: materialization never splits a fragment.
//
// The zero value is an empty queue ready for use.
type FragmentQueue[E any] struct {
	frags   []Fragment[E]
	head    int
	pending int
}

// Push appends f to the tail of the queue.
func (q *FragmentQueue[E]) Push(f Fragment[E]) {
	q.frags = append(q.frags, f)
	q.pending += f.Len()
}

// Len returns the number of fragments currently queued.
func (q *FragmentQueue[E]) Len() int { return len(q.frags) - q.head }

// IsEmpty reports whether no fragments are queued.
func (q *FragmentQueue[E]) IsEmpty() bool { return q.Len() == 0 }

// TotalPending returns the summed length of all queued fragments.
// Invariant: equals the sum of Len() over the fragments in the queue.
func (q *FragmentQueue[E]) TotalPending() int { return q.pending }

// Grow pre-sizes the queue for at least n additional fragments, compacting
// away already-consumed slots.
func (q *FragmentQueue[E]) Grow(n int) {
	if n <= 0 || cap(q.frags)-len(q.frags) >= n {
		return
	}
	next := make([]Fragment[E], q.Len(), q.Len()+n)
	copy(next, q.frags[q.head:])
	q.frags = next
	q.head = 0
}

// popFront removes and returns the head fragment. The vacated slot is
// zeroed so the fragment's backing data becomes collectable once copied.
func (q *FragmentQueue[E]) popFront() (Fragment[E], bool) {
	if q.IsEmpty() {
		var zero Fragment[E]
		return zero, false
	}
	f := q.frags[q.head]
	q.frags[q.head] = Fragment[E]{}
	q.head++
	if q.head == len(q.frags) {
		q.frags = q.frags[:0]
		q.head = 0
	}
	q.pending -= f.Len()
	return f, true
}

// MaterializeUpTo pops whole fragments from the front and appends their
// contents to root until at least target elements have been appended or the
// queue is empty. Because fragments are consumed whole, the amount appended
// may exceed target. It returns the grown root and the number of elements
// appended.
func (q *FragmentQueue[E]) MaterializeUpTo(root []E, target int) ([]E, int) {
	appended := 0
	for appended < target {
		f, ok := q.popFront()
		if !ok {
			break
		}
		root = append(root, f.data...)
		appended += f.Len()
	}
	return root, appended
}

// MaterializeAll drains the queue into root in order and returns the grown
// root and the number of elements appended.
func (q *FragmentQueue[E]) MaterializeAll(root []E) ([]E, int) {
	appended := 0
	for {
		f, ok := q.popFront()
		if !ok {
			return root, appended
		}
		root = append(root, f.data...)
		appended += f.Len()
	}
}

// All yields the elements of every queued fragment in order without
// consuming anything.
func (q *FragmentQueue[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := q.head; i < len(q.frags); i++ {
			for _, e := range q.frags[i].data {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Fragments yields the queued fragments in order without consuming them.
func (q *FragmentQueue[E]) Fragments() iter.Seq[Fragment[E]] {
	return func(yield func(Fragment[E]) bool) {
		for i := q.head; i < len(q.frags); i++ {
			if !yield(q.frags[i]) {
				return
			}
		}
	}
}
