package keccak_test

import (
	"encoding/binary"
	"testing"

	"github.com/tessel-crypto/spongesuite/hazmat/keccak"
)

// TestF1600_AllZero checks the known-answer value for Keccak-f[1600] applied
// once to an all-zero state: lane (0,0) must equal F1258F7940E1DDE7.
func TestF1600_AllZero(t *testing.T) {
	var state [200]byte
	keccak.F1600(&state)

	lane0 := binary.LittleEndian.Uint64(state[:8])
	if want := uint64(0xF1258F7940E1DDE7); lane0 != want {
		t.Errorf("lane(0,0) = %016X, want %016X", lane0, want)
	}
}

func TestF1600_Deterministic(t *testing.T) {
	var a, b [200]byte
	for i := range a {
		a[i] = byte(i * 37)
		b[i] = byte(i * 37)
	}

	keccak.F1600(&a)
	keccak.F1600(&b)

	if a != b {
		t.Fatal("F1600 is not deterministic for identical input states")
	}
}

func TestF1600_ChangesNonZeroState(t *testing.T) {
	// The permutation must actually change this non-trivial state and must
	// not zero it out.
	var state [200]byte
	state[0] = 0x01

	before := state
	keccak.F1600(&state)

	if state == before {
		t.Fatal("F1600 left the state unchanged")
	}

	var zero [200]byte
	if state == zero {
		t.Fatal("F1600 produced an all-zero state from non-zero input")
	}
}
