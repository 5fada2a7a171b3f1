// Package ske implements symmetric authenticated encryption from a
// passphrase, built on KMACXOF256 for both key derivation and the keystream
// and tag it produces. There is no block cipher here: KMACXOF256's
// extendable output stands in for a stream cipher, and a second, separately
// keyed KMACXOF256 call stands in for the MAC.
package ske

import (
	"crypto/subtle"
	"errors"
	"io"

	"github.com/tessel-crypto/spongesuite"
	"github.com/tessel-crypto/spongesuite/internal/mem"
)

// saltLen is the length in bytes of the random salt prefixed to every
// cryptogram. tagLen is the length in bytes of the authentication tag
// suffixed to every cryptogram.
const (
	saltLen = 64
	tagLen  = 64
)

// ErrInvalidCiphertext is returned by Decrypt when the cryptogram is too
// short to contain a salt and a tag.
var ErrInvalidCiphertext = errors.New("ske: cryptogram shorter than salt+tag")

// ErrTagMismatch is returned by Decrypt when the authentication tag does not
// match, meaning the cryptogram was tampered with or the passphrase is
// wrong.
var ErrTagMismatch = errors.New("ske: authentication tag mismatch")

// Encrypt seals message under passphrase, drawing a fresh 64-byte salt from
// rand. The returned cryptogram has the form salt(64) ‖ ciphertext(len(message)) ‖ tag(64).
func Encrypt(rand io.Reader, passphrase, message []byte) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand, salt); err != nil {
		return nil, err
	}

	ke, ka := deriveKeys(salt, passphrase)

	stream := spongesuite.KMACXOF256(ke, nil, 8*len(message), "SKE")
	ciphertext := make([]byte, len(message))
	mem.XOR(ciphertext, stream, message)

	tag := spongesuite.KMACXOF256(ka, message, 512, "SKA")

	out := make([]byte, 0, saltLen+len(ciphertext)+tagLen)
	out = append(out, salt...)
	out = append(out, ciphertext...)
	out = append(out, tag...)
	return out, nil
}

// Decrypt opens a cryptogram produced by Encrypt under the same passphrase.
func Decrypt(passphrase, cryptogram []byte) ([]byte, error) {
	if len(cryptogram) <= saltLen+tagLen {
		return nil, ErrInvalidCiphertext
	}

	salt := cryptogram[:saltLen]
	ciphertext := cryptogram[saltLen : len(cryptogram)-tagLen]
	tag := cryptogram[len(cryptogram)-tagLen:]

	ke, ka := deriveKeys(salt, passphrase)

	stream := spongesuite.KMACXOF256(ke, nil, 8*len(ciphertext), "SKE")
	message := make([]byte, len(ciphertext))
	mem.XOR(message, stream, ciphertext)

	wantTag := spongesuite.KMACXOF256(ka, message, 512, "SKA")
	if subtle.ConstantTimeCompare(tag, wantTag) != 1 {
		return nil, ErrTagMismatch
	}
	return message, nil
}

// deriveKeys expands salt‖passphrase into an encryption key ke and an
// authentication key ka, each 64 bytes, via a single 1024-bit KMACXOF256
// call domain-separated with "S".
func deriveKeys(salt, passphrase []byte) (ke, ka []byte) {
	keyed := make([]byte, 0, len(salt)+len(passphrase))
	keyed = append(keyed, salt...)
	keyed = append(keyed, passphrase...)

	keys := spongesuite.KMACXOF256(keyed, nil, 1024, "S")
	return keys[:64], keys[64:]
}
