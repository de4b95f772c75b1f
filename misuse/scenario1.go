package misuse

import (
	"io"
	"math/big"

	"sm2lab/internal/curve"
)

// Scenario1ReusedK models a signer who reuses the same secret nonce k
// across two signatures on distinct (message, Z) pairs. Given the two
// resulting signatures (r1, s1) on (M1, Z1) and (r2, s2) on (M2, Z2), it
// recovers the private key d. Both signatures satisfy
//
//	s_i = (1+d)^-1 * (k - r_i*d) mod n
//
// which rearranges to s_i + d*(s_i + r_i) = k for i = 1, 2. Subtracting
// the two instances eliminates k directly:
//
//	s1 - s2 = d * ((s2 + r2) - (s1 + r1))
//	d = (s1 - s2) * (s2 - s1 + r2 - r1)^-1 mod n
//
// random supplies the reused nonce and need not be a CSPRNG — this
// package exists to show what happens when a real signer's isn't one
// either. It returns the recovered scalar and whether it equals d.
func Scenario1ReusedK(d *big.Int, m1, m2 []byte, z1, z2 [32]byte, random io.Reader) (recovered *big.Int, success bool, err error) {
	nMinus2 := new(big.Int).Sub(curve.N, big.NewInt(2))
	k, err := curve.RandScalarInRange(random, big.NewInt(2), nMinus2)
	if err != nil {
		return nil, false, err
	}

	kG := curve.Multiply(curve.Generator(), k)
	x1, _, ok := kG.Coords()
	if !ok {
		return nil, false, ErrInvalidNonce
	}

	e1 := eFromZM(z1, m1)
	e2 := eFromZM(z2, m2)

	dPlus1Inv, err := curve.InverseMod(new(big.Int).Add(d, big.NewInt(1)), curve.N)
	if err != nil {
		return nil, false, err
	}

	r1 := rFromNonce(e1, x1)
	r2 := rFromNonce(e2, x1)
	s1 := sFromNonce(dPlus1Inv, k, r1, d)
	s2 := sFromNonce(dPlus1Inv, k, r2, d)

	numerator := mod(new(big.Int).Sub(s1, s2))
	denominator := mod(new(big.Int).Add(mod(new(big.Int).Sub(s2, s1)), mod(new(big.Int).Sub(r2, r1))))
	if denominator.Sign() == 0 {
		return nil, false, ErrDenominatorZero
	}

	denomInv, err := curve.InverseMod(denominator, curve.N)
	if err != nil {
		return nil, false, err
	}

	recovered = mod(new(big.Int).Mul(numerator, denomInv))
	return recovered, recovered.Cmp(d) == 0, nil
}
