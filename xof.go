package spongesuite

import (
	"github.com/tessel-crypto/spongesuite/hazmat/sp800185"
	"github.com/tessel-crypto/spongesuite/hazmat/sponge"
)

const (
	dsSHAKE  = 0x1F // SHAKE domain-separation suffix.
	dsCSHAKE = 0x04 // cSHAKE domain-separation suffix.
)

// SHAKE256 computes the SHAKE256 extendable-output function over msg,
// producing outBits bits of output. outBits must be a positive multiple of
// 8.
func SHAKE256(msg []byte, outBits int) []byte {
	return sponge.Sum(msg, dsSHAKE, outBits/8)
}

// CSHAKE256 computes cSHAKE256 as defined in NIST SP 800-185, domain-
// separating the output by function name and customization string. If both
// name and custom are empty, cSHAKE256 is defined to fall back to plain
// SHAKE256.
func CSHAKE256(msg []byte, outBits int, name, custom string) []byte {
	if name == "" && custom == "" {
		return SHAKE256(msg, outBits)
	}

	prefix := sp800185.EncodeString([]byte(name))
	prefix = append(prefix, sp800185.EncodeString([]byte(custom))...)
	prefix = sp800185.BytePad(prefix, sponge.Rate)

	h := sponge.New(dsCSHAKE)
	_, _ = h.Write(prefix)
	_, _ = h.Write(msg)

	out := make([]byte, outBits/8)
	_, _ = h.Read(out)
	return out
}

// KMACXOF256 computes the extendable-output variant of KMAC256 defined in
// NIST SP 800-185 §4.3.1: a keyed, domain-separated cSHAKE256 with an
// explicit right_encode(0) suffix marking it as the XOF (rather than
// fixed-length) variant.
//
// key is the MAC key, msg is the authenticated message, outBits is the
// requested output length in bits (a multiple of 8), and custom further
// domain-separates independent uses of the same key.
func KMACXOF256(key, msg []byte, outBits int, custom string) []byte {
	payload := sp800185.BytePad(sp800185.EncodeString(key), sponge.Rate)
	payload = append(payload, msg...)
	payload = append(payload, sp800185.RightEncode(0)...)
	return CSHAKE256(payload, outBits, "KMAC", custom)
}
