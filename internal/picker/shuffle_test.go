package picker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// countingRand wraps a generator and records how many values were drawn.
type countingRand struct {
	gen   *Generator
	calls int
}

func (c *countingRand) next() float64 {
	c.calls++
	return c.gen.Float64()
}

func TestShufflePrefixDoesNotMutateInput(t *testing.T) {
	items := []string{"A", "B", "C", "D", "E"}
	snapshot := append([]string(nil), items...)

	ShufflePrefix(items, 3, NewGenerator(DeriveSeed("x")).Float64)

	if diff := cmp.Diff(snapshot, items); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}

func TestShufflePrefixDrawCount(t *testing.T) {
	tests := []struct {
		name      string
		items     []int
		k         int
		wantLen   int
		wantCalls int
	}{
		{name: "empty", items: nil, k: 0, wantLen: 0, wantCalls: 0},
		{name: "single item", items: []int{1}, k: 1, wantLen: 1, wantCalls: 0},
		{name: "k zero still shuffles", items: []int{1, 2, 3, 4, 5}, k: 0, wantLen: 0, wantCalls: 4},
		{name: "partial", items: []int{1, 2, 3, 4, 5}, k: 2, wantLen: 2, wantCalls: 4},
		{name: "full", items: []int{1, 2, 3, 4, 5}, k: 5, wantLen: 5, wantCalls: 4},
		{name: "k clamped high", items: []int{1, 2, 3}, k: 10, wantLen: 3, wantCalls: 2},
		{name: "k clamped low", items: []int{1, 2, 3}, k: -1, wantLen: 0, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &countingRand{gen: NewGenerator(DeriveSeed(tt.name))}
			got := ShufflePrefix(tt.items, tt.k, r.next)
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
			if r.calls != tt.wantCalls {
				t.Errorf("draws = %d, want %d", r.calls, tt.wantCalls)
			}
		})
	}
}

func TestShufflePrefixIsPrefixOfFullShuffle(t *testing.T) {
	items := []string{"Ada", "Ben", "Cai", "Dee", "Eli", "Fay", "Gus"}
	full := ShufflePrefix(items, len(items), NewGenerator(DeriveSeed("prefix")).Float64)
	for k := 0; k <= len(items); k++ {
		got := ShufflePrefix(items, k, NewGenerator(DeriveSeed("prefix")).Float64)
		if diff := cmp.Diff(full[:k], got); diff != "" {
			t.Errorf("k=%d is not a prefix of the full shuffle (-want +got):\n%s", k, diff)
		}
	}
}

func TestShufflePrefixIsPermutation(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := ShufflePrefix(items, len(items), NewGenerator(DeriveSeed("perm")).Float64)

	seen := make([]bool, len(items))
	for _, v := range got {
		if seen[v] {
			t.Fatalf("value %d appears twice in %v", v, got)
		}
		seen[v] = true
	}
}

func TestShufflePrefixResultDoesNotAliasFurtherAppends(t *testing.T) {
	items := []string{"A", "B", "C", "D"}
	got := ShufflePrefix(items, 2, NewGenerator(DeriveSeed("cap")).Float64)
	if cap(got) != 2 {
		t.Errorf("cap = %d, want 2", cap(got))
	}
}
