package picker

import "unicode/utf16"

// SeedState is the four-word state that fully determines a Generator's
// output. Equal seed strings always produce equal states.
type SeedState [4]uint32

const (
	m1 uint32 = 597399067
	m2 uint32 = 2869860233
	m3 uint32 = 951274213
	m4 uint32 = 2716044179
)

// DeriveSeed hashes s into a SeedState (cyrb128). Characters are consumed as
// UTF-16 code units so non-ASCII seeds hash the same way browsers and Workers
// do. All arithmetic wraps at 32 bits.
func DeriveSeed(s string) SeedState {
	h1, h2, h3, h4 := uint32(1779033703), uint32(3144134277), uint32(1013904242), uint32(27644437)

	for _, unit := range utf16.Encode([]rune(s)) {
		k := uint32(unit)
		h1 = h2 ^ (h1^k)*m1
		h2 = h3 ^ (h2^k)*m2
		h3 = h4 ^ (h3^k)*m3
		h4 = h1 ^ (h4^k)*m4
	}

	h1 = (h3 ^ h1>>18) * m1
	h2 = (h4 ^ h2>>22) * m2
	h3 = (h1 ^ h3>>17) * m3
	h4 = (h2 ^ h4>>19) * m4

	return SeedState{h1 ^ h2 ^ h3 ^ h4, h2 ^ h1, h3 ^ h1, h4 ^ h1}
}
