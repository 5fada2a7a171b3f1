// Package sp800185 implements the string-encoding primitives defined by
// NIST SP 800-185: left_encode, right_encode, encode_string, and bytepad.
// These are used to build cSHAKE256 and KMACXOF256 on top of the sponge
// package's raw XOF.
package sp800185

import "encoding/binary"

// LeftEncode returns left_encode(n): the minimal big-endian encoding of n
// prefixed with a single byte giving its length in bytes.
//
// n is a uint64 here rather than an arbitrary-precision integer, which
// statically rules out the "EncodingOutOfRange" condition (n >= 2^2040) the
// NIST scheme otherwise has to guard against — the source this is built from
// checks that bound with a floating-point comparison against 2^2040, which
// is imprecise at that magnitude. Go's type system enforces the much
// tighter n < 2^64 bound at compile time, so no runtime check or sentinel
// error is needed here.
func LeftEncode(n uint64) []byte {
	if n == 0 {
		return []byte{1, 0}
	}

	var b [8]byte
	binary.BigEndian.PutUint64(b[:], n)

	i := 0
	for i < 7 && b[i] == 0 {
		i++
	}

	out := make([]byte, 0, 9)
	out = append(out, byte(8-i))
	return append(out, b[i:]...)
}

// RightEncode returns right_encode(n): the same minimal big-endian encoding
// as LeftEncode, but with the length byte moved to the end.
func RightEncode(n uint64) []byte {
	le := LeftEncode(n)
	k := le[0]

	out := make([]byte, 0, len(le))
	out = append(out, le[1:]...)
	return append(out, k)
}

// EncodeString returns encode_string(s) = left_encode(8*len(s)) || s.
func EncodeString(s []byte) []byte {
	return append(LeftEncode(uint64(len(s))*8), s...)
}

// BytePad returns bytepad(x, w): left_encode(w) || x, zero-padded to the
// smallest multiple of w at least as long as that concatenation.
//
// BytePad panics if w <= 0; a non-positive pad width is a programmer error,
// not a runtime condition a caller of this library can trigger with
// untrusted input, since w is always one of the fixed rate constants this
// toolkit passes internally.
func BytePad(x []byte, w int) []byte {
	if w <= 0 {
		panic("sp800185: bytepad width must be positive")
	}

	z := append(LeftEncode(uint64(w)), x...)
	if rem := len(z) % w; rem != 0 {
		z = append(z, make([]byte, w-rem)...)
	}
	return z
}
