// Package forgery constructs an existential forgery against an SM2
// verifier that accepts an attacker-supplied Z rather than recomputing
// it from a bound identity (see sm2.CalculateZ). It is illustrative,
// not operational: the final step is an SM3 preimage search that is
// computationally infeasible in general, and the package says so
// through ForgeResult.PreimageFound rather than silently succeeding.
package forgery

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	"sm2lab/internal/curve"
	"sm2lab/internal/sm3x"
)

// searchBudget bounds the brute-force Z search. The original
// demonstration tries 10000 candidates before falling back to a
// sentinel; sm2lab keeps that budget rather than widening it, since a
// wider budget does not change the outcome against a cryptographically
// strong hash and would only slow every call down.
const searchBudget = 10000

// sentinelZ is returned, with PreimageFound set to false, when the
// bounded search exhausts its budget. It is not a valid 32-byte Z
// digest; it exists only so ForgeResult always has *some* Z value to
// report, and VerifyForgery against it is expected to fail wherever the
// real attack step (the preimage search) also failed.
var sentinelZ = []byte("forgery: preimage search exhausted, no Z found")

// ForgeResult is the output of ForgeSignature: a candidate (R, S, Z)
// triple and whether the preimage step that produced Z actually
// succeeded.
type ForgeResult struct {
	R             *big.Int
	S             *big.Int
	Z             [32]byte
	PreimageFound bool
}

// ForgeSignature builds a forged (R, S, Z) for message against pub,
// following the construction: pick random nonzero u, v; compute
// (x1, _) = u*G + v*pub; set r = x1 mod n and e = (r - x1) mod n;
// search for a Z with SM3(Z||message) == e's big-endian bytes; solve
// s = v^-1 * (u + r*v) mod n. random supplies u and v and need not be a
// CSPRNG — nothing about this construction depends on u, v staying
// secret.
//
// By default pub must be a valid curve point; set allowOffCurve to
// skip that check, matching a source demonstration key that was never
// actually a member of the curve (see package forgery's design note in
// the project's grounding ledger).
func ForgeSignature(message []byte, pub curve.Point, random io.Reader, allowOffCurve bool) (ForgeResult, error) {
	if !allowOffCurve && !curve.IsOnCurve(pub) {
		return ForgeResult{}, ErrOffCurvePublicKey
	}

	nMinus1 := new(big.Int).Sub(curve.N, big.NewInt(1))
	u, err := curve.RandScalarInRange(random, big.NewInt(1), nMinus1)
	if err != nil {
		return ForgeResult{}, err
	}
	v, err := curve.RandScalarInRange(random, big.NewInt(1), nMinus1)
	if err != nil {
		return ForgeResult{}, err
	}

	uG := curve.Multiply(curve.Generator(), u)
	vP := curve.Multiply(pub, v)
	sum := curve.Add(uG, vP)
	x1, _, ok := sum.Coords()
	if !ok {
		return ForgeResult{}, ErrPointAtInfinity
	}

	r := new(big.Int).Mod(x1, curve.N)
	e := new(big.Int).Sub(r, x1)
	e.Mod(e, curve.N)
	eBytes := make([]byte, 32)
	e.FillBytes(eBytes)

	z, found := searchPreimage(eBytes, message)

	vInv, err := curve.InverseMod(v, curve.N)
	if err != nil {
		return ForgeResult{}, err
	}
	rv := new(big.Int).Mul(r, v)
	uPlusRV := new(big.Int).Add(u, rv)
	s := new(big.Int).Mul(vInv, uPlusRV)
	s.Mod(s, curve.N)

	return ForgeResult{R: r, S: s, Z: z, PreimageFound: found}, nil
}

// searchPreimage tries candidates "Z_candidate_0".."Z_candidate_9999"
// (the original demonstration's own search space) for one whose
// SM3(candidate||message) equals targetDigest. It returns the sentinel
// Z and false if none is found in the budget.
func searchPreimage(targetDigest []byte, message []byte) (z [32]byte, found bool) {
	for i := 0; i < searchBudget; i++ {
		candidate := []byte(fmt.Sprintf("Z_candidate_%d", i))
		digest := sm3x.Sum32(candidate, message)
		if bytes.Equal(digest[:], targetDigest) {
			// The candidate's own byte length is what was hashed; Z is
			// treated as opaque bytes elsewhere, but ForgeResult fixes
			// the width at 32 for a uniform return type, so it is
			// zero-padded or truncated to fit (this search space's
			// candidates are always well under 32 bytes).
			return truncateOrPad(candidate), true
		}
	}
	return truncateOrPad(sentinelZ), false
}

func truncateOrPad(b []byte) [32]byte {
	var out [32]byte
	copy(out[:], b)
	return out
}

// VerifyForgery checks whether (r, s) verifies as an SM2 signature on
// message under the attacker-supplied z and pub, using exactly the
// verification equation sm2.Verify implements. It is named and kept
// separate from sm2.Verify to make the point explicit: a verifier that
// calls this instead of recomputing Z from a bound identity is the
// precondition this whole package exploits.
func VerifyForgery(pub curve.Point, message []byte, z [32]byte, r, s *big.Int) bool {
	if r == nil || s == nil {
		return false
	}
	one := big.NewInt(1)
	nMinus1 := new(big.Int).Sub(curve.N, one)
	if r.Cmp(one) < 0 || r.Cmp(nMinus1) > 0 {
		return false
	}
	if s.Cmp(one) < 0 || s.Cmp(nMinus1) > 0 {
		return false
	}

	digest := sm3x.Sum32(z[:], message)
	e := new(big.Int).SetBytes(digest[:])

	t := new(big.Int).Add(r, s)
	t.Mod(t, curve.N)
	if t.Sign() == 0 {
		return false
	}

	sG := curve.Multiply(curve.Generator(), s)
	tP := curve.Multiply(pub, t)
	q := curve.Add(sG, tP)
	x1, _, ok := q.Coords()
	if !ok {
		return false
	}

	got := new(big.Int).Add(e, x1)
	got.Mod(got, curve.N)
	return got.Cmp(r) == 0
}
