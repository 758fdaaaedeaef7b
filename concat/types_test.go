package concat

import "testing"

func TestRange_LenAndIsEmpty(t *testing.T) {
	cases := []struct {
		r         Range
		wantLen   int
		wantEmpty bool
	}{
		{r: Range{}, wantLen: 0, wantEmpty: true},
		{r: Range{Start: 2, End: 5}, wantLen: 3, wantEmpty: false},
		{r: Range{Start: 4, End: 4}, wantLen: 0, wantEmpty: true},
		{r: Range{Start: 5, End: 2}, wantLen: 0, wantEmpty: true},
	}

	for _, tc := range cases {
		if got := tc.r.Len(); got != tc.wantLen {
			t.Fatalf("%+v: Len()=%d, want %d", tc.r, got, tc.wantLen)
		}
		if got := tc.r.IsEmpty(); got != tc.wantEmpty {
			t.Fatalf("%+v: IsEmpty()=%v, want %v", tc.r, got, tc.wantEmpty)
		}
	}
}
