// Copyright (C) 2018. See AUTHORS.

package prng

import (
	"math/big"
	"testing"
)

func TestParkMiller64_SeedVector(t *testing.T) {
	var p ParkMiller64
	p.Seed(1)
	if got := p.Next(); got != 3007672810 {
		t.Fatalf("first output: got %d, want 3007672810", got)
	}
	if got := p.State(); got != pm64A {
		t.Fatalf("state: got %d, want %d", got, uint64(pm64A))
	}
	if got := p.Next(); got != 3110307663 {
		t.Fatalf("second output: got %d, want 3110307663", got)
	}
}

func TestMulMod64(t *testing.T) {
	m := new(big.Int).SetUint64(pm64M)
	vals := []uint64{0, 1, 2, pm64A, pm64M - 1, pm64M - 2, 1 << 62, 1<<64 - 1}
	for _, x := range vals {
		for _, y := range vals {
			want := new(big.Int).Mul(
				new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
			want.Mod(want, m)
			if got := mulMod64(x, y, pm64M); got != want.Uint64() {
				t.Fatalf("%d * %d: got %d, want %v", x, y, got, want)
			}
		}
	}
}

func TestParkMiller64_SkipFermat(t *testing.T) {
	var p ParkMiller64
	p.Seed(99)
	before := p.State()

	// a^(m-2) followed by one more step is a^(m-1), the identity.
	p.Skip(pm64Period - 1)
	p.Next()
	if got := p.State(); got != before {
		t.Fatalf("a^(m-1) moved the state: %d -> %d", before, got)
	}
}

// TestParkMiller64_BoundedTail steps onto the top state m-1, whose block of
// states is incomplete, and checks that Bounded moves past it.
func TestParkMiller64_BoundedTail(t *testing.T) {
	p := ParkMiller64{state: pm64M - 1, seeded: true}
	p.Skip(-1)

	// a * (m-1) = m - a (mod m)
	const next = pm64M - pm64A
	if got := p.Bounded(0, pm64Span-1); got != (next-1)>>pm64Shift {
		t.Fatalf("got %d, want %d", got, uint32((next-1)>>pm64Shift))
	}
	if got := p.State(); got != next {
		t.Fatalf("state %d, want %d", got, uint64(next))
	}
}

func TestParkMiller64_UniformBlocks(t *testing.T) {
	for _, tc := range []struct {
		state uint64
		want  uint32
	}{
		{1, 0},
		{1 << 31, 0},
		{1<<31 + 1, 1},
		{pm64Span << pm64Shift, pm64Span - 1},
	} {
		// uniform steps first, so start one step behind.
		p := ParkMiller64{state: tc.state, seeded: true}
		p.Skip(-1)
		if got := p.uniform(); got != tc.want {
			t.Fatalf("state %d: got %d, want %d", tc.state, got, tc.want)
		}
	}
}

func BenchmarkParkMiller64_Next(b *testing.B) {
	var p ParkMiller64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Next()
	}
}
