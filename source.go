// Copyright (C) 2018. See AUTHORS.

// Package prng provides small, seedable integer recurrence generators that
// can jump to any point of their sequence in logarithmic time.
//
// Every generator is a plain value owned by the caller. There is no package
// level state and no locking: two goroutines may use two generators freely,
// but a single generator shared between goroutines must be guarded by the
// caller. None of the generators are suitable for cryptographic use.
//
// The package does no I/O and reads no environment. The prng command and
// the server package are thin wrappers on top of it; their flags, PRNG_*
// environment variables and network listener configure those wrappers
// only and are not part of a generator's behavior.
package prng

// Source is implemented by every generator in this package.
type Source interface {
	// Seed resets the generator. A zero seed selects the default seed.
	Seed(seed uint32)

	// Next advances one step and returns the output at the new state.
	Next() uint32

	// Bounded returns a value uniformly in [min(lower, upper),
	// max(lower, upper)].
	Bounded(lower, upper uint32) uint32

	// Skip advances n steps, or rewinds when n is negative, and returns the
	// output Next would have returned last.
	Skip(n int64) uint32

	// State returns the raw recurrence value.
	State() uint64

	// Period returns the number of steps after which the sequence repeats.
	Period() uint64
}
