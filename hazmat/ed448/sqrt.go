package ed448

import "math/big"

// sqrtExp is (p+1)/4, precomputed once at init. Since p ≡ 3 (mod 4), v^sqrtExp
// is a square root of v whenever v is a quadratic residue mod p.
var sqrtExp = func() *big.Int {
	e := new(big.Int).Add(P, big.NewInt(1))
	return e.Rsh(e, 2)
}()

// Sqrt returns a square root of v mod P, if one exists, and reports whether v
// is a quadratic residue. Because p ≡ 3 (mod 4), the root is computed
// directly as v^((p+1)/4) mod p with no further correction needed — unlike
// p ≡ 1 (mod 4) fields, there is no Tonelli-Shanks loop here.
func Sqrt(v *big.Int) (root *big.Int, ok bool) {
	r := new(big.Int).Exp(v, sqrtExp, P)
	check := new(big.Int).Exp(r, big.NewInt(2), P)
	if check.Cmp(new(big.Int).Mod(v, P)) != 0 {
		return nil, false
	}
	return r, true
}

// RecoverX recovers an x-coordinate from y and a parity bit, given
// x² = (1 - y²) / (1 - d·y²) (mod p), the curve equation solved for x².
// It reports false if y does not correspond to a valid curve point.
func RecoverX(y *big.Int, sign uint) (x *big.Int, ok bool) {
	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, P)

	num := new(big.Int).Sub(big.NewInt(1), y2)
	num.Mod(num, P)

	den := new(big.Int).Mul(D, y2)
	den.Sub(big.NewInt(1), den)
	den.Mod(den, P)
	if den.Sign() == 0 {
		return nil, false
	}

	x2 := new(big.Int).Mul(num, modInverse(den))
	x2.Mod(x2, P)

	root, ok := Sqrt(x2)
	if !ok {
		return nil, false
	}

	if root.Bit(0) != sign {
		root.Sub(P, root)
	}
	return root, true
}
