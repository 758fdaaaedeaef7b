package grapheme

import (
	"slices"
	"testing"
)

func collect(text string) []string {
	var out []string
	for c := range Iter([]byte(text)) {
		out = append(out, c)
	}
	return out
}

func TestIter_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "👨‍👩‍👧‍👦" + "b"
	got := collect(text)
	want := []string{"a", "é", "👨‍👩‍👧‍👦", "b"}
	if !slices.Equal(got, want) {
		t.Fatalf("clusters=%q, want %q", got, want)
	}
}

func TestIter_Empty(t *testing.T) {
	if got := collect(""); got != nil {
		t.Fatalf("clusters of empty text=%q, want none", got)
	}
}

func TestIter_StopsWhenYieldReturnsFalse(t *testing.T) {
	n := 0
	for range Iter([]byte("abc")) {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("yielded %d clusters after break, want 1", n)
	}
}

func TestCount(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "abc", want: 3},
		{text: "é", want: 1},
		{text: "👨‍👩‍👧‍👦", want: 1},
		{text: "a" + "é" + "👨‍👩‍👧‍👦" + "b", want: 4},
	}

	for _, tc := range cases {
		if got := Count([]byte(tc.text)); got != tc.want {
			t.Fatalf("Count(%q)=%d, want %d", tc.text, got, tc.want)
		}
	}
}
