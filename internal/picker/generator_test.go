package picker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGeneratorReferenceVectors(t *testing.T) {
	tests := []struct {
		name string
		seed SeedState
		want []uint32
	}{
		{
			name: "small words",
			seed: SeedState{1, 2, 3, 4},
			want: []uint32{8, 35, 56623210, 207756683, 3469086937},
		},
		{
			name: "all zero",
			seed: SeedState{0, 0, 0, 0},
			want: []uint32{1, 2, 12, 18874399, 56669315},
		},
		{
			name: "high bits set",
			seed: SeedState{0xdeadbeef, 0xcafebabe, 0x12345678, 0x9abcdef0},
			want: []uint32{1147754654, 154119949, 3977009432, 2837437336, 1629805096},
		},
		{
			name: "derived from date key",
			seed: DeriveSeed("2026-02-11"),
			want: []uint32{3974330236, 3169642505, 3329528432},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(tt.seed)
			got := make([]uint32, len(tt.want))
			for i := range got {
				got[i] = gen.Uint32()
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("sequence mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGeneratorFloat64(t *testing.T) {
	gen := NewGenerator(SeedState{1, 2, 3, 4})
	if got, want := gen.Float64(), 8.0/4294967296.0; got != want {
		t.Errorf("first Float64 = %v, want %v", got, want)
	}

	gen = NewGenerator(DeriveSeed("range check"))
	next := gen.Float64
	for i := 0; i < 10000; i++ {
		v := next()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d = %v, outside [0, 1)", i, v)
		}
	}
}

func TestGeneratorsAreIndependent(t *testing.T) {
	seed := DeriveSeed("2026-02-11")
	a := NewGenerator(seed)
	b := NewGenerator(seed)

	a.Uint32()
	a.Uint32()

	fresh := NewGenerator(seed)
	if b.Uint32() != fresh.Uint32() {
		t.Error("advancing one generator affected another built from the same seed")
	}
}
