package sm2

import (
	"io"
	"math/big"

	"sm2lab/internal/curve"
	"sm2lab/internal/sm3x"
)

// Sign produces an SM2 signature (r, s) over message under private key d,
// using z as the identity-binding digest (see CalculateZ). random supplies
// the per-signature nonce and must be a cryptographically secure source —
// the misuse kernel is the only place in this module allowed to weaken
// that, and it calls the curve package directly rather than routing a bad
// reader through Sign (see package misuse).
func Sign(d *big.Int, message []byte, z [32]byte, random io.Reader) (r, s *big.Int, err error) {
	one := big.NewInt(1)
	nMinus1 := new(big.Int).Sub(curve.N, one)
	if d.Cmp(one) <= 0 || d.Cmp(nMinus1) >= 0 {
		return nil, nil, InvalidPrivateKeyError{D: d}
	}

	digest := sm3x.Sum32(z[:], message)
	e := new(big.Int).SetBytes(digest[:])

	dPlus1Inv, err := curve.InverseMod(new(big.Int).Add(d, one), curve.N)
	if err != nil {
		return nil, nil, err
	}

	nMinus2 := new(big.Int).Sub(curve.N, big.NewInt(2))

	// Every rejection condition below (k*G at infinity, r == 0, r+k == n,
	// s == 0) has probability on the order of 1/N of firing for a uniform
	// k, so in practice this loop returns on its first iteration; see the
	// teacher's identical comment in crypto/internal/sm2/sm2.go.
	for {
		k, kErr := curve.RandScalarInRange(random, big.NewInt(2), nMinus2)
		if kErr != nil {
			return nil, nil, kErr
		}

		kG := curve.Multiply(curve.Generator(), k)
		x1, _, ok := kG.Coords()
		if !ok {
			continue
		}

		r = new(big.Int).Add(e, x1)
		r.Mod(r, curve.N)
		if r.Sign() == 0 {
			continue
		}
		if new(big.Int).Add(r, k).Cmp(curve.N) == 0 {
			continue
		}

		rd := new(big.Int).Mul(r, d)
		kMinusRD := new(big.Int).Sub(k, rd)
		kMinusRD.Mod(kMinusRD, curve.N)

		s = new(big.Int).Mul(dPlus1Inv, kMinusRD)
		s.Mod(s, curve.N)
		if s.Sign() == 0 {
			continue
		}

		return r, s, nil
	}
}
