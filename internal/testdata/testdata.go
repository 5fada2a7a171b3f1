// Package testdata provides a deterministic random bit generator for testing.
package testdata

import (
	"io"
	"math/big"

	"github.com/tessel-crypto/spongesuite/hazmat/ed448"
	"github.com/tessel-crypto/spongesuite/hazmat/sponge"
)

// DRBG is a deterministic random bit generator built on the sponge
// construction this toolkit already implements: a Hasher seeded with a
// customization string, in the same shape as a SHAKE instance, but with no
// dependency outside this module.
type DRBG struct {
	h *sponge.Hasher
}

// New returns a new DRBG instance initialized with the given customization
// string.
func New(customization string) *DRBG {
	h := sponge.New(0x1F)
	_, _ = h.Write([]byte(customization))
	return &DRBG{h: &h}
}

// KeyPair returns a deterministic Ed448 key pair from the DRBG: a scalar and
// the point it reaches by scalar-multiplying the curve generator.
func (d *DRBG) KeyPair() (*big.Int, *ed448.Point) {
	s := new(big.Int).SetBytes(d.Data(56))
	s.Mod(s, ed448.R)
	return s, ed448.ScalarMult(s, ed448.G)
}

// Data returns n bytes of deterministic data from the DRBG.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// Reader returns a pseudorandom io.Reader seeded with a value from this DRBG.
func (d *DRBG) Reader() io.Reader {
	h := sponge.New(0x1F)
	_, _ = h.Write(d.Data(32))
	return &h
}
