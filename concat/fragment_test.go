package concat

import (
	"slices"
	"testing"
)

func TestFragmentOf_AliasesChunk(t *testing.T) {
	chunk := []int{1, 2, 3}
	f := FragmentOf(chunk)
	if f.Len() != 3 {
		t.Fatalf("len=%d, want 3", f.Len())
	}

	chunk[0] = 99
	got := slices.Collect(f.All())
	if !slices.Equal(got, []int{99, 2, 3}) {
		t.Fatalf("elements=%v, want shared backing array", got)
	}
}

func TestFragmentCopyOf_IsIndependent(t *testing.T) {
	chunk := []int{1, 2, 3}
	f := FragmentCopyOf(chunk)

	chunk[0] = 99
	got := slices.Collect(f.All())
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("elements=%v, want private copy", got)
	}
}

func TestFragment_ZeroLength(t *testing.T) {
	for _, f := range []Fragment[int]{FragmentOf[int](nil), FragmentCopyOf([]int{})} {
		if f.Len() != 0 {
			t.Fatalf("len=%d, want 0", f.Len())
		}
		if got := slices.Collect(f.All()); got != nil {
			t.Fatalf("elements=%v, want none", got)
		}
	}
}

func TestFragment_AllStopsEarly(t *testing.T) {
	f := FragmentOf([]int{1, 2, 3})
	n := 0
	for range f.All() {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("yielded %d after break, want 1", n)
	}
}
