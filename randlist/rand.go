// Package randlist generates reproducible lists of unsigned 32-bit values
// from a seed.
package randlist

import (
	"math"
	"math/bits"
)

// DefaultSeed is the seed used by the benchmark sweep unless overridden.
const DefaultSeed = uint64(96251)

const fallbackSeed = uint64(0xdeadbeefcafebabe)

// Generator is a deterministic xorshift64* stream. It is not safe for
// concurrent use.
type Generator struct {
	state uint64
}

// New returns a Generator seeded with seed. A zero seed is replaced by a fixed
// non-zero constant since xorshift has no successor for an all-zero state.
func New(seed uint64) *Generator {
	if seed == 0 {
		seed = fallbackSeed
	}
	return &Generator{state: seed}
}

// Uint64 returns the next 64-bit value of the stream.
func (g *Generator) Uint64() uint64 {
	x := g.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	g.state = x
	return x * 2685821657736338717
}

// Uint32n returns a value uniformly distributed in [0, n). It panics if n is 0.
func (g *Generator) Uint32n(n uint32) uint32 {
	if n == 0 {
		panic("randlist: Uint32n called with n == 0")
	}
	hi, lo := bits.Mul32(uint32(g.Uint64()>>32), n)
	if lo < n {
		threshold := -n % n
		for lo < threshold {
			hi, lo = bits.Mul32(uint32(g.Uint64()>>32), n)
		}
	}
	return hi
}

// List returns length values drawn uniformly from [0, length/2). Half-range
// sampling makes repeats common so the smallest missing value is usually
// small but non-zero. When length/2 is zero every value is 0; when it exceeds
// math.MaxUint32 the range is clamped to [0, math.MaxUint32).
func (g *Generator) List(length int) []uint32 {
	if length <= 0 {
		return nil
	}
	out := make([]uint32, length)
	bound := listBound(length)
	if bound == 0 {
		return out
	}
	for i := range out {
		out[i] = g.Uint32n(bound)
	}
	return out
}

// listBound returns the exclusive upper bound of values in a list of length
// values.
func listBound(length int) uint32 {
	half := uint64(length / 2)
	if half > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(half)
}
