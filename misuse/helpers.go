// Package misuse demonstrates four well-known ways a misused SM2 signer
// leaks its private key or lets an attacker forge signatures. Scenarios
// 1 and 3 play the misbehaving signer themselves and so take its private
// key; scenario 2 takes the leaked nonce and (1+d)^-1; scenario 4 takes
// only a signature and a verifier. Scenarios 1 and 2 compute the signing
// equations directly against internal/curve rather than through sm2.Sign,
// since the whole point is to model what the signer did *wrong*; scenario
// 3 uses sm2.Sign and sm2.Verify, because its flaw lies in the verifier.
package misuse

import (
	"math/big"

	"sm2lab/internal/curve"
	"sm2lab/internal/sm3x"
)

// mod reduces x modulo the group order N.
func mod(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, curve.N)
}

// eFromZM computes e = int_be(SM3(Z || M)), the same digest-to-integer
// step sm2.Sign and sm2.Verify perform.
func eFromZM(z [32]byte, message []byte) *big.Int {
	digest := sm3x.Sum32(z[:], message)
	return new(big.Int).SetBytes(digest[:])
}

// sFromNonce computes s = (1+d)^-1 * (k - r*d) mod n, the core SM2
// signing equation, given a precomputed (1+d)^-1.
func sFromNonce(dPlus1Inv, k, r, d *big.Int) *big.Int {
	rd := mod(new(big.Int).Mul(r, d))
	kMinusRD := mod(new(big.Int).Sub(k, rd))
	return mod(new(big.Int).Mul(dPlus1Inv, kMinusRD))
}

// rFromNonce computes r = (e + x1) mod n where x1 is the x-coordinate of
// k*G.
func rFromNonce(e, x1 *big.Int) *big.Int {
	return mod(new(big.Int).Add(e, x1))
}
