package picker

import "math/bits"

// Generator is an sfc32 small-fast-counter generator. The sequence depends
// only on the seed words, so it is identical on every platform.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	a, b, c, d uint32
}

// NewGenerator returns a generator positioned at the start of seed's sequence.
func NewGenerator(seed SeedState) *Generator {
	return &Generator{a: seed[0], b: seed[1], c: seed[2], d: seed[3]}
}

// Uint32 advances the state by one step and returns the raw output word.
func (g *Generator) Uint32() uint32 {
	t := g.a + g.b
	g.a = g.b ^ g.b>>9
	g.b = g.c + g.c<<3
	g.c = bits.RotateLeft32(g.c, 21)
	g.d++
	t += g.d
	g.c += t
	return t
}

// Float64 returns the next value in [0, 1) as Uint32() / 2^32.
func (g *Generator) Float64() float64 {
	return float64(g.Uint32()) / (1 << 32)
}
