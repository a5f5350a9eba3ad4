// Package bitops holds the word-level bit helpers used by determinant and
// hash-table code: a bijective avalanche remix for structured hash values,
// and trailing-zero / population counts on 64-bit words.
//
// Ctz and Popcnt compile to single instructions (TZCNT/BSF, POPCNT) on
// platforms that have them, through math/bits.
package bitops
