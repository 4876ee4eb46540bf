// Copyright (C) 2018. See AUTHORS.

package prng

// ParkMiller is the Park-Miller "minimal standard" multiplicative generator
// with the revised multiplier 48271, the same recurrence as C++
// minstd_rand. The state is always in [1, m-1] and is returned as is.
//
// The product a * X is formed in 64 bits. See Schrage for the same sequence
// computed without a double width product.
type ParkMiller struct {
	state  uint32
	seeded bool
}

var _ Source = (*ParkMiller)(nil)

// X_n+1 = (a * X_n) % m, with m prime.
const (
	pmM = 1<<31 - 1
	pmA = 48271

	// 48271 is a primitive root of m, so every nonzero seed lies on the one
	// cycle of length m-1.
	pmPeriod = pmM - 1

	pmDefaultSeed = 1
)

// Seed sets the state. The seed is reduced modulo m and a result of zero is
// replaced by the default seed, since zero is a fixed point.
func (p *ParkMiller) Seed(seed uint32) {
	p.state = primeSeed31(seed)
	p.seeded = true
}

func (p *ParkMiller) ensureSeeded() {
	if !p.seeded {
		p.Seed(pmDefaultSeed)
	}
}

// Next advances the generator one step and returns the new state.
func (p *ParkMiller) Next() uint32 {
	p.ensureSeeded()
	p.state = uint32(pmA * uint64(p.state) % pmM)
	return p.state
}

// Bounded returns a uint32 uniformly in [lower, upper]. The bounds may be
// given in either order. Ranges wider than m-1 values are truncated to m-1
// values starting at the lower bound.
func (p *ParkMiller) Bounded(lower, upper uint32) uint32 {
	return bounded(p.Next, 1, pmPeriod, lower, upper)
}

// Skip jumps n steps ahead, or behind when n is negative, and returns the
// new state.
func (p *ParkMiller) Skip(n int64) uint32 {
	p.ensureSeeded()
	mul := uint64(1)
	h := uint64(pmA)
	for k := normalizeSkip(n, pmPeriod); k > 0; k >>= 1 {
		if k&1 != 0 {
			mul = mul * h % pmM
		}
		h = h * h % pmM
	}
	p.state = uint32(mul * uint64(p.state) % pmM)
	return p.state
}

// State returns the raw recurrence value.
func (p *ParkMiller) State() uint64 {
	p.ensureSeeded()
	return uint64(p.state)
}

// Period returns m-1.
func (p *ParkMiller) Period() uint64 { return pmPeriod }

// primeSeed31 legalizes a seed for the 2^31-1 modulus.
func primeSeed31(seed uint32) uint32 {
	seed %= pmM
	if seed == 0 {
		seed = pmDefaultSeed
	}
	return seed
}

// normalizeSkip maps a possibly negative skip count into [0, period).
func normalizeSkip(n, period int64) uint64 {
	n %= period
	if n < 0 {
		n += period
	}
	return uint64(n)
}
