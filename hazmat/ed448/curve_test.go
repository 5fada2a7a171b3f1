package ed448_test

import (
	"math/big"
	"testing"

	"github.com/tessel-crypto/spongesuite/hazmat/ed448"
)

func TestGenerator_IsOnCurve(t *testing.T) {
	if !ed448.G.IsOnCurve() {
		t.Fatal("generator does not satisfy the curve equation")
	}
}

func TestIdentity_IsOnCurve(t *testing.T) {
	if !ed448.Identity.IsOnCurve() {
		t.Fatal("identity does not satisfy the curve equation")
	}
}

func TestScalarMult_Zero(t *testing.T) {
	got := ed448.ScalarMult(big.NewInt(0), ed448.G)
	if !got.Equal(ed448.Identity) {
		t.Errorf("0*G = (%s, %s), want identity", got.X, got.Y)
	}
}

func TestScalarMult_One(t *testing.T) {
	got := ed448.ScalarMult(big.NewInt(1), ed448.G)
	if !got.Equal(ed448.G) {
		t.Errorf("1*G = (%s, %s), want G", got.X, got.Y)
	}
}

func TestScalarMult_Order(t *testing.T) {
	got := ed448.ScalarMult(ed448.R, ed448.G)
	if !got.Equal(ed448.Identity) {
		t.Errorf("R*G = (%s, %s), want identity", got.X, got.Y)
	}
}

func TestScalarMult_MatchesRepeatedAddition(t *testing.T) {
	sum := &ed448.Point{X: new(big.Int).Set(ed448.Identity.X), Y: new(big.Int).Set(ed448.Identity.Y)}
	for i := 0; i < 17; i++ {
		sum = ed448.Add(sum, ed448.G)
	}

	got := ed448.ScalarMult(big.NewInt(17), ed448.G)
	if !got.Equal(sum) {
		t.Errorf("17*G via ladder = (%s, %s), via repeated addition = (%s, %s)", got.X, got.Y, sum.X, sum.Y)
	}
}

func TestScalarMult_ResultIsOnCurve(t *testing.T) {
	s, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	p := ed448.ScalarMult(s, ed448.G)
	if !p.IsOnCurve() {
		t.Error("s*G is not on the curve")
	}
}

func TestAdd_Commutative(t *testing.T) {
	twoG := ed448.Add(ed448.G, ed448.G)
	threeG := ed448.Add(twoG, ed448.G)
	threeGAlt := ed448.Add(ed448.G, twoG)

	if !threeG.Equal(threeGAlt) {
		t.Error("point addition is not commutative")
	}
}

func TestAdd_IdentityIsNeutral(t *testing.T) {
	got := ed448.Add(ed448.G, ed448.Identity)
	if !got.Equal(ed448.G) {
		t.Errorf("G + identity = (%s, %s), want G", got.X, got.Y)
	}
}

func TestAdd_InverseCancels(t *testing.T) {
	negG := ed448.Negate(ed448.G)
	got := ed448.Add(ed448.G, negG)
	if !got.Equal(ed448.Identity) {
		t.Errorf("G + (-G) = (%s, %s), want identity", got.X, got.Y)
	}
}

func TestSqrt_RoundTrip(t *testing.T) {
	v := big.NewInt(4)
	root, ok := ed448.Sqrt(v)
	if !ok {
		t.Fatal("4 should be a quadratic residue mod p")
	}
	sq := new(big.Int).Exp(root, big.NewInt(2), ed448.P)
	if sq.Cmp(v) != 0 {
		t.Errorf("sqrt(4)² = %s, want 4", sq)
	}
}

func TestRecoverX_MatchesGenerator(t *testing.T) {
	sign := uint(ed448.G.X.Bit(0))
	x, ok := ed448.RecoverX(ed448.G.Y, sign)
	if !ok {
		t.Fatal("RecoverX failed on the generator's own y-coordinate")
	}
	if x.Cmp(ed448.G.X) != 0 {
		t.Errorf("RecoverX(y_G) = %s, want %s", x, ed448.G.X)
	}
}
