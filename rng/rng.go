// ABOUTME: Seedable PCG32 pseudo-random number generator
// ABOUTME: Provides the ranged/unit draws the evolution schedule is built on

// Package rng implements a deterministic 32-bit PCG (XSH-RR) stream.
// The whole evolution run draws from a single instance, so a fixed seed
// reproduces a run exactly.
package rng

import "math/bits"

const (
	pcgMultiplier = 6364136223846793005
	pcgIncrement  = 1 // stream selector 0, matching pcg32_srandom_r(seed, 0)
)

// PCG32 is a PCG XSH-RR 64/32 generator. Not safe for concurrent use;
// the evolver owns one instance for the duration of a run.
type PCG32 struct {
	state uint64
}

// New returns a generator seeded with seed on stream 0.
func New(seed uint32) *PCG32 {
	r := &PCG32{}
	r.Uint32()
	r.state += uint64(seed)
	r.Uint32()
	return r
}

// Uint32 returns the next 32 bits of the stream.
func (r *PCG32) Uint32() uint32 {
	old := r.state
	r.state = old*pcgMultiplier + pcgIncrement
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// Range returns a value in [lo, hi] inclusive. Modulo bias is accepted;
// the bias is part of the reproducible stream.
func (r *PCG32) Range(lo, hi uint32) uint32 {
	return r.Uint32()%(hi+1-lo) + lo
}

// RangeExcept returns a value in [lo, hi] inclusive that is not except.
// The caller must ensure the range contains at least one other value.
func (r *PCG32) RangeExcept(lo, hi, except uint32) uint32 {
	v := r.Range(lo, hi)
	for v == except {
		v = r.Range(lo, hi)
	}
	return v
}

// IntRange is Range for non-negative int bounds.
func (r *PCG32) IntRange(lo, hi int) int {
	return int(r.Range(uint32(lo), uint32(hi)))
}

// Unit returns a value in [0.0, 1.0] with 1e-4 granularity.
func (r *PCG32) Unit() float64 {
	return float64(r.Range(0, 10000)) / 10000.0
}
