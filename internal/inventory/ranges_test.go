// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"strconv"
	"strings"
	"testing"
)

func TestCompressRanges(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
		want string
	}{
		{name: "empty", ids: nil, want: ""},
		{name: "single", ids: []int{5}, want: "5"},
		{name: "run of two stays individual", ids: []int{1, 2}, want: "1|2"},
		{name: "run of three compresses", ids: []int{1, 2, 3}, want: "1..3"},
		{name: "mixed runs and singletons", ids: []int{1, 2, 4, 5, 6, 9}, want: "1|2|4..6|9"},
		{name: "all consecutive", ids: []int{10, 11, 12, 13, 14}, want: "10..14"},
		{name: "all isolated", ids: []int{1, 3, 5, 7}, want: "1|3|5|7"},
		{name: "duplicate breaks the run", ids: []int{1, 1, 2}, want: "1|1|2"},
		{name: "zero id", ids: []int{0, 1, 2}, want: "0..2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompressRanges(tt.ids); got != tt.want {
				t.Errorf("CompressRanges(%v) = %q, want %q", tt.ids, got, tt.want)
			}
		})
	}
}

// TestCompressRanges_RoundTrip expands the emitted tokens back into integers
// and checks that the original sequence is reconstructed exactly.
func TestCompressRanges_RoundTrip(t *testing.T) {
	sequences := [][]int{
		{},
		{42},
		{1, 2},
		{1, 2, 3},
		{1, 2, 4, 5, 6, 9},
		{3, 3, 4, 5, 6},
		{0, 2, 3, 4, 100, 101, 102, 500},
	}

	for _, seq := range sequences {
		got := expandRanges(t, CompressRanges(seq))
		if len(got) != len(seq) {
			t.Errorf("round trip of %v yielded %v", seq, got)
			continue
		}
		for i := range seq {
			if got[i] != seq[i] {
				t.Errorf("round trip of %v yielded %v", seq, got)
				break
			}
		}
	}
}

func expandRanges(t *testing.T, s string) []int {
	t.Helper()
	if s == "" {
		return nil
	}

	var out []int
	for _, tok := range strings.Split(s, "|") {
		if lo, hi, ok := strings.Cut(tok, ".."); ok {
			start, err := strconv.Atoi(lo)
			if err != nil {
				t.Fatalf("bad range start in %q: %v", tok, err)
			}
			end, err := strconv.Atoi(hi)
			if err != nil {
				t.Fatalf("bad range end in %q: %v", tok, err)
			}
			for v := start; v <= end; v++ {
				out = append(out, v)
			}
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			t.Fatalf("bad singleton token %q: %v", tok, err)
		}
		out = append(out, v)
	}
	return out
}
