// Package pke implements public-key authenticated encryption over the
// Ed448-Goldilocks curve. It is the asymmetric analogue of
// schemes/basic/ske: both derive a stream-cipher key and a MAC key from a
// single KMACXOF256 call and use KMACXOF256 again for the stream and the
// tag, but pke derives its shared secret from an ECDH-like exchange (a
// scalar multiple of the recipient's public point) rather than from a
// shared passphrase.
package pke

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"io"
	"math/big"

	"github.com/tessel-crypto/spongesuite"
	"github.com/tessel-crypto/spongesuite/hazmat/ed448"
	"github.com/tessel-crypto/spongesuite/internal/mem"
)

// coordLen is the fixed width, in bytes, of a serialized curve coordinate:
// ceil(448/8), the canonical Ed448 field-element byte length. Coordinates
// are serialized little-endian.
const coordLen = 57

// scalarLen is the length in bytes of the ephemeral randomness drawn per
// message, matching the 448-bit scalar domain (56 bytes, decoded
// big-endian per decode_be).
const scalarLen = 56

// tagLen is the length in bytes of the authentication tag.
const tagLen = 56

// ErrInvalidCryptogram is returned by Decrypt when the cryptogram is too
// short to contain both curve coordinates and a tag.
var ErrInvalidCryptogram = errors.New("pke: cryptogram shorter than coordinates+tag")

// ErrTagMismatch is returned by Decrypt when the authentication tag does not
// match, meaning the cryptogram was tampered with or the wrong key was used.
var ErrTagMismatch = errors.New("pke: authentication tag mismatch")

// ErrInvalidPoint is returned when a serialized curve point does not decode
// to coordinates that are both in range and on the curve.
var ErrInvalidPoint = errors.New("pke: invalid curve point")

// KeyPair is an Ed448 key pair: a secret scalar and the public point it
// reaches by scalar-multiplying the curve generator.
type KeyPair struct {
	Secret *big.Int
	Public *ed448.Point
}

// GenerateKeyPair derives a deterministic key pair from a passphrase:
// s = (4 · decode_be(KMACXOF256(pw, "", 448, "SK"))) mod r, V = s·G.
//
// The factor of 4 is applied to the decoded integer before the reduction
// mod r; V lies in the subgroup generated by G for any s.
func GenerateKeyPair(passphrase []byte) *KeyPair {
	digest := spongesuite.KMACXOF256(passphrase, nil, 448, "SK")
	s := new(big.Int).SetBytes(digest)
	s.Mul(s, big.NewInt(4))
	s.Mod(s, ed448.R)

	return &KeyPair{Secret: s, Public: ed448.ScalarMult(s, ed448.G)}
}

// Encrypt seals message under the recipient's public key, drawing a fresh
// 56-byte ephemeral scalar from rand. The returned cryptogram has the form
// Z.x(57) ‖ Z.y(57) ‖ ciphertext(len(message)) ‖ tag(56), where Z is the
// ephemeral public point, and both coordinates are little-endian.
func Encrypt(rand io.Reader, recipient *ed448.Point, message []byte) ([]byte, error) {
	kBytes := make([]byte, scalarLen)
	if _, err := io.ReadFull(rand, kBytes); err != nil {
		return nil, err
	}

	k := new(big.Int).SetBytes(kBytes)
	k.Mul(k, big.NewInt(4))
	k.Mod(k, ed448.R)

	w := ed448.ScalarMult(k, recipient)
	z := ed448.ScalarMult(k, ed448.G)

	ke, ka := deriveKeys(w)

	stream := spongesuite.KMACXOF256(ke, nil, 8*len(message), "PKE")
	ciphertext := make([]byte, len(message))
	mem.XOR(ciphertext, stream, message)

	tag := spongesuite.KMACXOF256(ka, message, 448, "PKA")

	out := make([]byte, 0, 2*coordLen+len(ciphertext)+tagLen)
	out = append(out, fieldBytes(z.X)...)
	out = append(out, fieldBytes(z.Y)...)
	out = append(out, ciphertext...)
	out = append(out, tag...)
	return out, nil
}

// Decrypt opens a cryptogram produced by Encrypt against the holder of
// secret, the secret scalar matching the public key Encrypt targeted.
func Decrypt(secret *big.Int, cryptogram []byte) ([]byte, error) {
	if len(cryptogram) < 2*coordLen+tagLen {
		return nil, ErrInvalidCryptogram
	}

	zx := decodeFieldBytes(cryptogram[:coordLen])
	zy := decodeFieldBytes(cryptogram[coordLen : 2*coordLen])
	if zx.Cmp(ed448.P) >= 0 || zy.Cmp(ed448.P) >= 0 {
		return nil, ErrInvalidPoint
	}
	z := &ed448.Point{X: zx, Y: zy}
	if !z.IsOnCurve() {
		return nil, ErrInvalidPoint
	}

	ciphertext := cryptogram[2*coordLen : len(cryptogram)-tagLen]
	tag := cryptogram[len(cryptogram)-tagLen:]

	w := ed448.ScalarMult(secret, z)
	ke, ka := deriveKeys(w)

	stream := spongesuite.KMACXOF256(ke, nil, 8*len(ciphertext), "PKE")
	message := make([]byte, len(ciphertext))
	mem.XOR(message, stream, ciphertext)

	wantTag := spongesuite.KMACXOF256(ka, message, 448, "PKA")
	if subtle.ConstantTimeCompare(tag, wantTag) != 1 {
		return nil, ErrTagMismatch
	}
	return message, nil
}

// deriveKeys expands the x-coordinate of a shared point into a stream key
// ke and an authentication key ka, each 56 bytes, via a single 896-bit
// KMACXOF256 call domain-separated with "PK".
func deriveKeys(shared *ed448.Point) (ke, ka []byte) {
	keka := spongesuite.KMACXOF256(fieldBytes(shared.X), nil, 896, "PK")
	return keka[:56], keka[56:]
}

// fieldBytes serializes a field element as coordLen little-endian bytes,
// zero-padding the high end as needed.
func fieldBytes(v *big.Int) []byte {
	b := make([]byte, coordLen)
	v.FillBytes(b) // big-endian, left-padded
	reverse(b)
	return b
}

// decodeFieldBytes parses coordLen little-endian bytes into a field element.
func decodeFieldBytes(b []byte) *big.Int {
	be := bytes.Clone(b)
	reverse(be)
	return new(big.Int).SetBytes(be)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
