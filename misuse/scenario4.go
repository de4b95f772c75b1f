package misuse

import "math/big"

// Scenario4MalleableSignature computes the source's claimed malleable
// companion (r, s') with s' = (-s - r) mod n and reports whether it
// actually verifies against the supplied verifier.
//
// Unlike plain ECDSA, SM2 ties a signature's Q = s*G + (r+s)*P back to
// k*G uniquely: rearranging the signing equation gives
// s*(1+d) + r*d = k, a linear equation in s with exactly one solution
// for a fixed (r, k, d). The only other point sharing R's x-coordinate
// is -k*G, and solving for the s' that reaches it requires the secret
// d (s' = -s - 2*r*d*(1+d)^-1), not a public transform of (r, s) alone.
// So for SM2, unlike the source's assumption and spec.md §4.5 S4, no
// public (r, s) -> (r, s') transform produces a second valid signature.
// verifies reports the checked (and, for the naive transform, expected
// false) outcome rather than letting a caller assume success; see
// DESIGN.md for the worked-out algebra and the spec inconsistency this
// documents.
func Scenario4MalleableSignature(r, s *big.Int, verify func(r, s *big.Int) bool) (sPrime *big.Int, verifies bool) {
	negS := new(big.Int).Neg(s)
	negSMinusR := new(big.Int).Sub(negS, r)
	sPrime = mod(negSMinusR)
	return sPrime, verify(r, sPrime)
}
