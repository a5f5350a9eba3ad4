// SPDX-License-Identifier: MIT

package bitops

import "math/bits"

// SplitMix64 finalizer constants.
const (
	mixMul1 = 0xbf58476d1ce4e5b9
	mixMul2 = 0x94d049bb133111eb
)

// Rehash remixes a into a well-distributed 64-bit value.
// It is a bijection (each xor-shift and odd multiply is invertible), so
// distinct inputs never collide; flipping one input bit flips about half
// of the output bits.
func Rehash(a uint64) uint64 {
	a ^= a >> 30
	a *= mixMul1
	a ^= a >> 27
	a *= mixMul2
	a ^= a >> 31

	return a
}

// Ctz returns the number of trailing zero bits in x.
// Ctz(0) is 64.
func Ctz(x uint64) int {
	return bits.TrailingZeros64(x)
}

// Popcnt returns the number of set bits in x.
func Popcnt(x uint64) int {
	return bits.OnesCount64(x)
}
