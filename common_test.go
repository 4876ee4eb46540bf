// Copyright (C) 2018. See AUTHORS.

package prng

import "testing"

// newSource returns an unseeded generator for the variant or fails the test.
func newSource(t testing.TB, name string) Source {
	src, err := New(name)
	if err != nil {
		t.Fatal(err)
	}
	return src
}

// seeded returns a generator of the variant seeded with seed.
func seeded(t testing.TB, name string, seed uint32) Source {
	src := newSource(t, name)
	src.Seed(seed)
	return src
}

// take returns the next n outputs of src.
func take(src Source, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = src.Next()
	}
	return out
}

// modulus returns the state modulus of a variant.
func modulus(name string) uint64 {
	switch name {
	case "lcg":
		return 1 << 63
	case "parkmiller", "schrage":
		return pmM
	case "parkmiller64":
		return pm64M
	}
	panic("unknown variant " + name)
}

// chiSquare returns the chi-square statistic of counts against a uniform
// expectation.
func chiSquare(counts []int, total int) float64 {
	expected := float64(total) / float64(len(counts))
	sum := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		sum += d * d / expected
	}
	return sum
}

// forEachVariant runs fn as a subtest for every registered variant.
func forEachVariant(t *testing.T, fn func(t *testing.T, name string)) {
	for _, name := range Variants() {
		name := name
		t.Run(name, func(t *testing.T) { fn(t, name) })
	}
}
