// Copyright (C) 2018. See AUTHORS.

package prng

// bounded maps draws from next onto [lower, upper] without modulo bias.
// next must return values in [base, base+span). Draws at or above the
// largest multiple of the range that fits in span are rejected, so every
// residue is hit by the same number of accepted draws. Fewer than two draws
// are needed on average.
func bounded(next func() uint32, base uint32, span uint64,
	lower, upper uint32) uint32 {

	if lower > upper {
		lower, upper = upper, lower
	}

	// computed in 64 bits so the full uint32 range does not wrap to zero.
	width := uint64(upper-lower) + 1
	if width > span {
		width = span
	}

	threshold := span - span%width
	for {
		draw := uint64(next() - base)
		if draw < threshold {
			return lower + uint32(draw%width)
		}
	}
}
