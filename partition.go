// Copyright (C) 2018. See AUTHORS.

package prng

import (
	"errors"
	"math/bits"
)

// ErrOverlap is returned by Partition when the sub-streams would not fit in
// one period of the generator.
var ErrOverlap = errors.New("sub-streams overlap")

// Partition splits the stream of base into count sub-streams of length
// stride. Sub-stream i is a copy of base advanced i*stride steps, so the
// sub-streams do not overlap as long as each one draws at most stride
// values. base itself is not modified.
//
// The count sub-streams must fit in one period: count*stride may not exceed
// base's Period, and stride must be positive when count > 1. Otherwise
// later streams would wrap around onto earlier ones and ErrOverlap is
// returned.
//
//	streams, err := prng.Partition(prng.LCG{}, 8, 1<<40)
//	streams[3].Next()
func Partition[T any, P interface {
	*T
	Source
}](base T, count int, stride int64) ([]T, error) {
	if count <= 0 {
		return nil, nil
	}
	if count > 1 {
		if stride <= 0 {
			return nil, ErrOverlap
		}
		hi, total := bits.Mul64(uint64(count), uint64(stride))
		if hi != 0 || total > P(&base).Period() {
			return nil, ErrOverlap
		}
	}

	out := make([]T, count)
	out[0] = base
	for i := 1; i < count; i++ {
		out[i] = out[i-1]
		P(&out[i]).Skip(stride)
	}
	return out, nil
}
