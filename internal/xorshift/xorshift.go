// Package xorshift implements the 32-bit "xor" generator from p. 4 of Marsaglia, "Xorshift RNGs".
package xorshift

// DefaultSeed - Replaces a zero seed, the generator state must never be zero
const DefaultSeed uint32 = 2463534242

// Next - Returns the state following r
func Next(r uint32) uint32 {
	r ^= r << 13
	r ^= r >> 17
	r ^= r << 5
	return r
}

// Generator - Holds the state of one key stream
type Generator struct {
	state uint32
}

// NewGenerator - Returns a pointer to a new Generator, a zero seed is replaced by DefaultSeed
func NewGenerator(seed uint32) *Generator {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Generator{state: seed}
}

// Next - Advances the generator and returns the new state
func (G *Generator) Next() uint32 {
	G.state = Next(G.state)
	return G.state
}

// NextMasked - Advances the generator and returns the new state masked with mask as a key
func (G *Generator) NextMasked(mask uint32) int64 {
	return int64(G.Next() & mask)
}
