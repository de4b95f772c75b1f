package misuse

import (
	"math/big"

	"sm2lab/internal/curve"
)

// Scenario2FixedK models a signer whose nonce generator is broken and
// always emits the same known nonce k. Given k itself and dPlus1Inv =
// (1+d)^-1 (both leaked material — e.g. k from the broken generator
// directly, dPlus1Inv by running Scenario1ReusedK against two earlier
// signatures that reused this same k), it forges a signature on any
// new message digest ePrime without drawing a fresh nonce, by running
// the real signing equations the honest signer would have run:
//
//	x1      = (k*G).x
//	r'      = (ePrime + x1) mod n
//	(1+d)   = dPlus1Inv^-1 mod n       (recovering d algebraically)
//	d       = (1+d) - 1 mod n
//	s'      = (1+d)^-1 * (k - r'*d) mod n
//
// This is the illustrative assumption spec.md §9 calls out for S2: it
// requires the attacker to already hold (1+d)^-1, private material
// that normally requires recovering d first. Because it runs the exact
// signing equation, the result verifies under the real public key —
// unlike the source's public (r, e, e')-only transform, which does not
// (see DESIGN.md).
func Scenario2FixedK(k, dPlus1Inv, ePrime *big.Int) (rPrime, sPrime *big.Int, err error) {
	kG := curve.Multiply(curve.Generator(), k)
	x1, _, ok := kG.Coords()
	if !ok {
		return nil, nil, ErrInvalidNonce
	}

	rPrime = rFromNonce(ePrime, x1)

	dPlus1, err := curve.InverseMod(dPlus1Inv, curve.N)
	if err != nil {
		return nil, nil, err
	}
	d := mod(new(big.Int).Sub(dPlus1, big.NewInt(1)))

	sPrime = sFromNonce(dPlus1Inv, k, rPrime, d)
	if sPrime.Sign() == 0 {
		return nil, nil, ErrInvalidNonce
	}
	return rPrime, sPrime, nil
}
