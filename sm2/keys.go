// Package sm2 implements the SM2 signature scheme over the curve package:
// user-identifier digest (Z) derivation, key generation, signing, and
// verification, parameterized by SM3 via internal/sm3x.
package sm2

import (
	"io"
	"math/big"

	"sm2lab/internal/curve"
)

// GenerateKeypair draws a uniform private scalar d in [2, N-2] from
// random (which must be a CSPRNG in production use) and returns it with
// the matching public key P = d*G.
func GenerateKeypair(random io.Reader) (d *big.Int, pub curve.Point, err error) {
	d, err = curve.RandScalarInRange(random, big.NewInt(2), new(big.Int).Sub(curve.N, big.NewInt(2)))
	if err != nil {
		return nil, curve.Identity(), err
	}
	pub = curve.Multiply(curve.Generator(), d)
	return d, pub, nil
}
