// Package ed448 implements point arithmetic on the Ed448-Goldilocks Edwards
// curve: x² + y² = 1 + d·x²·y² (mod p), with p = 2^448 - 2^224 - 1 and
// d = -39081.
//
// This package is not constant-time. math/big's arithmetic branches on the
// magnitude and sign of its operands, so every operation here — point
// addition, scalar multiplication, and modular inverse and square root in
// particular — leaks timing information about its inputs. The scheme this
// toolkit builds (see schemes/complex/pke) uses these operations with
// ephemeral scalars and also with the recipient's long-term secret scalar
// (key generation and decryption), so that scalar's bit pattern is
// observable through timing by a co-located attacker.
package ed448

import "math/big"

// P is the field modulus, 2^448 - 2^224 - 1.
var P = func() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 448)
	p.Sub(p, new(big.Int).Lsh(big.NewInt(1), 224))
	return p.Sub(p, big.NewInt(1))
}()

// D is the curve's Edwards coefficient, -39081 mod p.
var D = new(big.Int).Mod(big.NewInt(-39081), P)

// R is the prime order of the subgroup generated by G.
var R, _ = new(big.Int).SetString(
	"181709681073901722637330951972001133588410340171829515070372549795146003961539585716195755291692375963310293709091662304773755859649779", 10)

// G is the base point, with x_G = 8 and y_G the constant from the external
// interface table. It is not the standard RFC 8032 Ed448 base point — this
// curve instance uses x=8 for its own generator.
var G = &Point{
	X: big.NewInt(8),
	Y: func() *big.Int {
		y, _ := new(big.Int).SetString(
			"563400200929088152613609629378641385410102682117258566404750214022059686929583319585040850282322731241505930835997382613319689400286258", 10)
		return y
	}(),
}

// Identity is the neutral element of the curve group, (0, 1).
var Identity = &Point{X: big.NewInt(0), Y: big.NewInt(1)}

// Point is a point (x, y) on the curve, both coordinates reduced mod P.
// The zero value is not a valid point; use Identity or G.
type Point struct {
	X, Y *big.Int
}

// Equal reports whether p and q represent the same curve point.
func (p *Point) Equal(q *Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// IsOnCurve reports whether p satisfies the curve equation
// x² + y² = 1 + d·x²·y² (mod p).
func (p *Point) IsOnCurve() bool {
	x2 := new(big.Int).Mul(p.X, p.X)
	y2 := new(big.Int).Mul(p.Y, p.Y)

	lhs := new(big.Int).Add(x2, y2)
	lhs.Mod(lhs, P)

	rhs := new(big.Int).Mul(x2, y2)
	rhs.Mul(rhs, D)
	rhs.Add(rhs, big.NewInt(1))
	rhs.Mod(rhs, P)

	return lhs.Cmp(rhs) == 0
}

// Add returns p + q using the complete (unified) Edwards addition formula:
//
//	x3 = (x1*y2 + y1*x2) / (1 + d*x1*x2*y1*y2)  (mod p)
//	y3 = (y1*y2 - x1*x2) / (1 - d*x1*x2*y1*y2)  (mod p)
//
// Addition is the only primitive; doubling is Add(p, p).
func Add(p, q *Point) *Point {
	x1y2 := new(big.Int).Mul(p.X, q.Y)
	y1x2 := new(big.Int).Mul(p.Y, q.X)
	y1y2 := new(big.Int).Mul(p.Y, q.Y)
	x1x2 := new(big.Int).Mul(p.X, q.X)

	dx1x2y1y2 := new(big.Int).Mul(D, x1x2)
	dx1x2y1y2.Mul(dx1x2y1y2, y1y2)
	dx1x2y1y2.Mod(dx1x2y1y2, P)

	xNum := new(big.Int).Add(x1y2, y1x2)
	xNum.Mod(xNum, P)
	xDen := new(big.Int).Add(big.NewInt(1), dx1x2y1y2)
	xDen.Mod(xDen, P)

	yNum := new(big.Int).Sub(y1y2, x1x2)
	yNum.Mod(yNum, P)
	yDen := new(big.Int).Sub(big.NewInt(1), dx1x2y1y2)
	yDen.Mod(yDen, P)

	return &Point{
		X: new(big.Int).Mod(new(big.Int).Mul(xNum, modInverse(xDen)), P),
		Y: new(big.Int).Mod(new(big.Int).Mul(yNum, modInverse(yDen)), P),
	}
}

// Negate returns -p = (-x mod p, y).
func Negate(p *Point) *Point {
	return &Point{X: new(big.Int).Mod(new(big.Int).Neg(p.X), P), Y: new(big.Int).Set(p.Y)}
}

// ScalarMult returns s*base using a left-to-right double-and-add ladder over
// the bits of s mod R.
//
// A ladder that starts its accumulator at base and consumes the scalar's
// top bit (as a naive transcription of the double-and-add description
// would) silently mishandles s=0 and s=1. This ladder instead starts its
// accumulator at Identity and consumes every bit, so it is correct for all
// s; a scalar that reduces to 0 mod R returns Identity directly.
func ScalarMult(s *big.Int, base *Point) *Point {
	k := new(big.Int).Mod(s, R)
	if k.Sign() == 0 {
		return &Point{X: new(big.Int).Set(Identity.X), Y: new(big.Int).Set(Identity.Y)}
	}

	result := &Point{X: new(big.Int).Set(Identity.X), Y: new(big.Int).Set(Identity.Y)}
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = Add(result, result)
		if k.Bit(i) == 1 {
			result = Add(result, base)
		}
	}
	return result
}

// modInverse returns the modular multiplicative inverse of x mod P via the
// extended Euclidean algorithm (math/big's ModInverse).
func modInverse(x *big.Int) *big.Int {
	return new(big.Int).ModInverse(x, P)
}
