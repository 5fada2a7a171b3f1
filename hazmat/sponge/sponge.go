// Package sponge implements the Keccak-f[1600] sponge construction at the
// fixed rate of 1088 bits (capacity 512 bits) used throughout this toolkit's
// SHAKE256, cSHAKE256, and KMACXOF256 constructions.
package sponge

import "github.com/tessel-crypto/spongesuite/hazmat/keccak"

// Rate is the sponge rate in bytes: (1600 - 512) / 8.
const Rate = 136

// Hasher is an incremental sponge instance that implements io.ReadWriter.
// Writes absorb data into the state; the first Read finalizes absorption
// with pad10*1 and the hasher's domain-separation byte, and every Read after
// that continues squeezing. Once Read has been called, Write must not be
// called again.
type Hasher struct {
	s         [200]byte
	pos       int
	ds        byte
	squeezing bool
}

// New returns a Hasher that will apply the given domain-separation byte
// during finalization.
func New(ds byte) Hasher {
	return Hasher{ds: ds}
}

// Reset zeros the hasher and reinitializes it with the given domain
// separation byte.
func (h *Hasher) Reset(ds byte) {
	clear(h.s[:])
	h.pos = 0
	h.ds = ds
	h.squeezing = false
}

// Write absorbs p into the sponge state. It must not be called after Read.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		w := min(Rate-h.pos, len(p))
		for i := 0; i < w; i++ {
			h.s[h.pos+i] ^= p[i]
		}
		h.pos += w
		p = p[w:]
		if h.pos == Rate {
			keccak.F1600(&h.s)
			h.pos = 0
		}
	}
	return n, nil
}

// Read squeezes output from the sponge into p.
//
// On the first call, it finalizes absorption: it XORs the domain-separation
// byte into the state at the current buffer position and XORs 0x80 into the
// last byte of the rate, then permutes. When exactly one byte of the rate
// remains unfilled, both XORs land on the same byte, fusing the two (e.g.
// SHAKE's 0x1F becomes 0x9F) — this is the pad10*1 rule, not a special case
// the caller needs to handle.
func (h *Hasher) Read(p []byte) (int, error) {
	if !h.squeezing {
		h.s[h.pos] ^= h.ds
		h.s[Rate-1] ^= 0x80
		keccak.F1600(&h.s)
		h.pos = 0
		h.squeezing = true
	}

	n := len(p)
	for len(p) > 0 {
		if h.pos == Rate {
			keccak.F1600(&h.s)
			h.pos = 0
		}
		w := copy(p, h.s[h.pos:Rate])
		h.pos += w
		p = p[w:]
	}
	return n, nil
}

// Sum absorbs msg with domain-separation byte ds and returns outLen bytes of
// squeezed output. It is a convenience wrapper for one-shot use.
func Sum(msg []byte, ds byte, outLen int) []byte {
	h := New(ds)
	_, _ = h.Write(msg)
	out := make([]byte, outLen)
	_, _ = h.Read(out)
	return out
}
