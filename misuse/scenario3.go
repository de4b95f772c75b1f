package misuse

import (
	"io"
	"math/big"

	"sm2lab/internal/curve"
	"sm2lab/sm2"
)

// Scenario3IncorrectZ demonstrates identity-binding bypass: a relying
// party that reconstructs Z from the wrong identity (id2 instead of the
// signer's actual id1) accepts or rejects a signature independently of
// whether it was genuinely produced under id1. It signs message under
// Z(id1) and returns the two verification outcomes a caller can assert
// against: verifiedUnderID1 must be true, verifiedUnderID2 must be
// false, since the signature is bound to whichever Z bytes the verifier
// happens to reconstruct, not to the identity string itself.
func Scenario3IncorrectZ(d *big.Int, pub curve.Point, message []byte, id1, id2 []byte, random io.Reader) (verifiedUnderID1, verifiedUnderID2 bool, err error) {
	z1, err := sm2.CalculateZ(id1, pub)
	if err != nil {
		return false, false, err
	}
	z2, err := sm2.CalculateZ(id2, pub)
	if err != nil {
		return false, false, err
	}

	r, s, err := sm2.Sign(d, message, z1, random)
	if err != nil {
		return false, false, err
	}

	verifiedUnderID1 = sm2.Verify(pub, message, z1, r, s)
	verifiedUnderID2 = sm2.Verify(pub, message, z2, r, s)
	return verifiedUnderID1, verifiedUnderID2, nil
}
