// Copyright (C) 2018. See AUTHORS.

package prng

// LCG is a linear congruential generator with a power of two modulus, using
// the multiplier from L'Ecuyer's tables of good lattice structure. The low
// bits of such a generator have short periods, so only bits 30 through 61 of
// the state are returned.
//
// The zero value is ready to use and behaves as if seeded with 1.
type LCG struct {
	state  uint64
	seeded bool
}

var _ Source = (*LCG)(nil)

// X_n+1 = (a * X_n + c) % 2^63
const (
	lcgA    = 3249286849523012805
	lcgC    = 1
	lcgMask = 1<<63 - 1

	lcgDefaultSeed = 1
	lcgShift       = 30
)

// Seed sets the state of the lcg. A seed of zero is replaced by the default
// seed.
func (l *LCG) Seed(seed uint32) {
	if seed == 0 {
		seed = lcgDefaultSeed
	}
	l.state = uint64(seed)
	l.seeded = true
}

func (l *LCG) ensureSeeded() {
	if !l.seeded {
		l.Seed(lcgDefaultSeed)
	}
}

// Next advances the lcg one step and returns a uint32.
func (l *LCG) Next() uint32 {
	l.ensureSeeded()
	l.state = (lcgA*l.state + lcgC) & lcgMask
	return uint32(l.state >> lcgShift)
}

// Bounded returns a uint32 uniformly in [lower, upper]. The bounds may be
// given in either order.
func (l *LCG) Bounded(lower, upper uint32) uint32 {
	return bounded(l.Next, 0, 1<<32, lower, upper)
}

// Skip jumps n steps ahead, or behind when n is negative, in O(log n) time
// and returns the output at the new state. It is equivalent to calling Next
// n times.
func (l *LCG) Skip(n int64) uint32 {
	l.ensureSeeded()

	// the period is 2^63, so two's complement wraparound followed by the
	// mask already normalizes a negative count.
	k := uint64(n) & lcgMask

	mul, inc := lcgJump(k)
	l.state = (mul*l.state + inc) & lcgMask
	return uint32(l.state >> lcgShift)
}

// Period returns 2^63. The increment is odd and a-1 is a multiple of 4,
// so the lcg visits every state before repeating.
func (l *LCG) Period() uint64 { return lcgMask + 1 }

// State returns the raw recurrence value.
func (l *LCG) State() uint64 {
	l.ensureSeeded()
	return l.state
}

// lcgJump returns the multiplier and increment of the affine map that
// advances the lcg k steps. See Knuth 3.2.1 and Brown, "Random Number
// Generation with Arbitrary Strides".
func lcgJump(k uint64) (mul, inc uint64) {
	mul, inc = 1, 0
	h, f := uint64(lcgA), uint64(lcgC)
	for ; k > 0; k >>= 1 {
		if k&1 != 0 {
			mul = (mul * h) & lcgMask
			inc = (inc*h + f) & lcgMask
		}
		// f = c * (1 + a + ... + a^(2^i - 1)), h = a^(2^i)
		f = (f * (h + 1)) & lcgMask
		h = (h * h) & lcgMask
	}
	return mul, inc
}
