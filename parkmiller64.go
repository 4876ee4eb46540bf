// Copyright (C) 2018. See AUTHORS.

package prng

import "math/bits"

// ParkMiller64 is a multiplicative generator with the prime modulus 2^63-25.
// Products are formed in 128 bits. The output is the top 32 bits of the 63
// bit state.
type ParkMiller64 struct {
	state  uint64
	seeded bool
}

var _ Source = (*ParkMiller64)(nil)

const (
	pm64M = 1<<63 - 25
	pm64A = 6458928179451363983

	// by Fermat a^(m-1) = 1 (mod m), so skips are taken modulo m-1.
	pm64Period = pm64M - 1

	pm64DefaultSeed = 1
	pm64Shift       = 31

	// (state-1) >> 31 over the states below pm64Span << 31 hits every
	// value in [0, pm64Span) exactly 2^31 times.
	pm64Span = 1<<32 - 1
)

// Seed sets the state. A seed of zero is replaced by the default seed. Every
// uint32 is below the modulus, so no reduction is needed.
func (p *ParkMiller64) Seed(seed uint32) {
	if seed == 0 {
		seed = pm64DefaultSeed
	}
	p.state = uint64(seed)
	p.seeded = true
}

func (p *ParkMiller64) ensureSeeded() {
	if !p.seeded {
		p.Seed(pm64DefaultSeed)
	}
}

// Next advances the generator one step and returns a uint32.
func (p *ParkMiller64) Next() uint32 {
	p.ensureSeeded()
	p.state = mulMod64(pm64A, p.state, pm64M)
	return uint32(p.state >> pm64Shift)
}

// Bounded returns a uint32 uniformly in [lower, upper]. The bounds may be
// given in either order.
//
// The output of Next is slightly uneven: the state lies in [1, 2^63-26],
// so 0 and 2^32-1 are produced by fewer states than other values. Bounded
// instead draws from uniform, which is exact. Ranges wider than
// 2^32-1 values are truncated to 2^32-1 values starting at the lower bound.
func (p *ParkMiller64) Bounded(lower, upper uint32) uint32 {
	return bounded(p.uniform, 0, pm64Span, lower, upper)
}

// uniform steps until the state lies in [1, pm64Span<<31] and returns
// (state-1) >> 31, uniform over [0, pm64Span). About one step in 2^32
// is skipped.
func (p *ParkMiller64) uniform() uint32 {
	for {
		p.Next()
		if x := p.state - 1; x < pm64Span<<pm64Shift {
			return uint32(x >> pm64Shift)
		}
	}
}

// Skip jumps n steps ahead, or behind when n is negative, and returns the
// output at the new state.
func (p *ParkMiller64) Skip(n int64) uint32 {
	p.ensureSeeded()
	mul, h := uint64(1), uint64(pm64A)
	for k := normalizeSkip(n, pm64Period); k > 0; k >>= 1 {
		if k&1 != 0 {
			mul = mulMod64(mul, h, pm64M)
		}
		h = mulMod64(h, h, pm64M)
	}
	p.state = mulMod64(mul, p.state, pm64M)
	return uint32(p.state >> pm64Shift)
}

// State returns the raw recurrence value.
func (p *ParkMiller64) State() uint64 {
	p.ensureSeeded()
	return p.state
}

// Period returns m-1. The multiplier is a primitive root of m.
func (p *ParkMiller64) Period() uint64 { return pm64Period }

// mulMod64 returns x * y % m using a 128 bit intermediate product.
func mulMod64(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return bits.Rem64(hi, lo, m)
}
