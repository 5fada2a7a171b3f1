// Package keccak implements the Keccak-f[1600] permutation: 24 rounds of the
// theta, rho-and-pi, chi, and iota step mappings over a 1600-bit state.
//
// This is the bare permutation only. Padding, domain separation, and the
// absorb/squeeze duplex are the sponge package's concern.
package keccak

import "encoding/binary"

const rounds = 24

// roundConstants are the standard Keccak round constants RC[0..23], applied
// to lane (0,0) by iota.
var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rhoOffsets are the left-rotation counts applied during the combined
// rho-and-pi step, indexed in the same order as piLane.
var rhoOffsets = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36,
	45, 55, 2, 14, 27, 41, 56, 8,
	25, 43, 62, 18, 39, 61, 20, 44,
}

// piLane is the lane permutation driving the combined rho-and-pi step. Lane
// 0 never appears here and is left untouched by the step, as required.
var piLane = [24]uint{
	10, 7, 11, 17, 18, 3, 5, 16,
	8, 21, 24, 4, 15, 23, 19, 13,
	12, 2, 20, 14, 22, 9, 6, 1,
}

// F1600 applies the Keccak-f[1600] permutation in place to a 200-byte state,
// interpreted as 25 little-endian 64-bit lanes in row-major order (lane
// (x,y) at index x+5y).
func F1600(state *[200]byte) {
	var a [25]uint64
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(state[i*8:])
	}

	var bc [5]uint64
	for round := 0; round < rounds; round++ {
		// theta
		for i := range bc {
			bc[i] = a[i] ^ a[5+i] ^ a[10+i] ^ a[15+i] ^ a[20+i]
		}
		for i := range bc {
			t := bc[(i+4)%5] ^ rotl64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[i+j] ^= t
			}
		}

		// rho and pi, combined: t carries the lane value forward through the
		// permutation order while each destination is rotated in place.
		t := a[1]
		for i, j := range piLane {
			a[j], t = rotl64(t, rhoOffsets[i]), a[j]
		}

		// chi
		for j := 0; j < 25; j += 5 {
			for i := range bc {
				bc[i] = a[j+i]
			}
			for i := range bc {
				a[j+i] ^= ^bc[(i+1)%5] & bc[(i+2)%5]
			}
		}

		// iota
		a[0] ^= roundConstants[round]
	}

	for i := range a {
		binary.LittleEndian.PutUint64(state[i*8:], a[i])
	}
}

// rotl64 rotates x left by n bits, where 0 <= n < 64. n == 0 is special-cased
// because x >> 64 is undefined for a fixed-width 64-bit shift count in most
// systems languages; Go defines it as zero, but the guard keeps the function
// correct if ported or reused with a variable rotation table.
func rotl64(x uint64, n uint) uint64 {
	if n == 0 {
		return x
	}
	return (x << n) | (x >> (64 - n))
}
