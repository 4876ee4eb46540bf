// Copyright (C) 2018. See AUTHORS.

package prng

// Schrage produces exactly the ParkMiller sequence without ever forming a
// product wider than 32 bits. With q = m / a and r = m % a, Schrage's
// identity gives
//
//	a*x % m = a*(x % q) - r*(x / q)
//
// plus m when the right side is negative. Both terms fit in an int32 because
// r < q.
type Schrage struct {
	state  uint32
	seeded bool
}

var _ Source = (*Schrage)(nil)

const (
	schM = pmM
	schA = pmA
	schQ = schM / schA // 44488
	schR = schM % schA // 3399
)

// Seed sets the state. The seed is reduced modulo m and a result of zero is
// replaced by the default seed.
func (s *Schrage) Seed(seed uint32) {
	s.state = primeSeed31(seed)
	s.seeded = true
}

func (s *Schrage) ensureSeeded() {
	if !s.seeded {
		s.Seed(pmDefaultSeed)
	}
}

// Next advances the generator one step and returns the new state.
func (s *Schrage) Next() uint32 {
	s.ensureSeeded()
	hi := int32(s.state / schQ)
	lo := int32(s.state) - hi*schQ
	x := schA*lo - schR*hi
	if x < 0 {
		x += schM
	}
	s.state = uint32(x)
	return s.state
}

// Bounded returns a uint32 uniformly in [lower, upper]. The bounds may be
// given in either order. Ranges wider than m-1 values are truncated to m-1
// values starting at the lower bound.
func (s *Schrage) Bounded(lower, upper uint32) uint32 {
	return bounded(s.Next, 1, pmPeriod, lower, upper)
}

// Skip jumps n steps ahead, or behind when n is negative, and returns the
// new state. The multiplier a^n is built with mulMod31, which like Next
// stays within 32 bits.
func (s *Schrage) Skip(n int64) uint32 {
	s.ensureSeeded()
	mul, h := uint32(1), uint32(schA)
	for k := normalizeSkip(n, pmPeriod); k > 0; k >>= 1 {
		if k&1 != 0 {
			mul = mulMod31(mul, h)
		}
		h = mulMod31(h, h)
	}
	s.state = mulMod31(mul, s.state)
	return s.state
}

// State returns the raw recurrence value.
func (s *Schrage) State() uint64 {
	s.ensureSeeded()
	return uint64(s.state)
}

// Period returns m-1, the same cycle as ParkMiller.
func (s *Schrage) Period() uint64 { return pmPeriod }

// mulMod31 returns x * y % (2^31-1) for x, y < 2^31-1 by doubling and
// adding. Schrage's identity needs r < q, which does not hold for arbitrary
// multipliers such as the powers of a, so the skip uses this instead. Every
// partial sum is below 2^32.
func mulMod31(x, y uint32) uint32 {
	var r uint32
	for ; y > 0; y >>= 1 {
		if y&1 != 0 {
			if r += x; r >= schM {
				r -= schM
			}
		}
		if x += x; x >= schM {
			x -= schM
		}
	}
	return r
}
