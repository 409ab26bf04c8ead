package Ark_Utils

import (
	"golang.org/x/exp/constraints"
)

// Knuth's MMIX multiplier and increment; the modulus 2^64 is implicit in
// uint64 arithmetic.
const (
	lcgMul uint64 = 6364136223846793005
	lcgInc uint64 = 1442695040888963407
)

// mixers perturb the running seed between steps, picked by byte index mod 3
// so runs of identical bytes don't collapse into a fixed point.
var mixers = [3]uint64{0x9E3779B97F4A7C15, 0xC2B2AE3D27D4EB4F, 0x165667B19E3779F9}

// Lcg advances seed by one linear-congruential step.
func Lcg(seed uint64) uint64 {
	return seed*lcgMul + lcgInc
}

// Hasher is a 64-bit starting seed for the default byte-folding hash. The
// same Hasher always maps the same bytes to the same value, so seed 0 is fine
// for plain table lookups; pick a process-local seed if you care about
// collision predictability.
type Hasher uint64

// HashBytes folds b into the seed one byte at a time: add the byte, XOR a
// mixer, advance through Lcg. The seed takes one more Lcg step before being
// returned so short keys don't surface the raw fold.
func (u Hasher) HashBytes(b []byte) uint64 {
	s := uint64(u)
	for i := 0; i < len(b); i++ {
		s += uint64(b[i])
		s ^= mixers[i%3]
		s = Lcg(s)
	}
	return Lcg(s)
}

// HashString hashes the bytes of v without allocating.
func (u Hasher) HashString(v string) uint64 {
	s := uint64(u)
	for i := 0; i < len(v); i++ {
		s += uint64(v[i])
		s ^= mixers[i%3]
		s = Lcg(s)
	}
	return Lcg(s)
}

// HashInt folds v through the same scheme as HashBytes, low byte first, all
// 8 byte positions regardless of the width of I so that HashInt agrees
// across integer types holding the same value.
func HashInt[I constraints.Integer](u Hasher, v I) uint64 {
	s, w := uint64(u), uint64(v)
	for i := 0; i < 8; i++ {
		s += w & 0xff
		s ^= mixers[i%3]
		s = Lcg(s)
		w >>= 8
	}
	return Lcg(s)
}
