package sm2

import (
	"math/big"

	"sm2lab/internal/curve"
	"sm2lab/internal/sm3x"
)

// Verify reports whether (r, s) is a valid SM2 signature over message
// under public key pub, with z the identity-binding digest the signer
// used. It never panics and never returns an error: malformed r/s, an
// identity intermediate result, or a failing equation all simply yield
// false (spec.md §7's recovery policy for the verifier).
func Verify(pub curve.Point, message []byte, z [32]byte, r, s *big.Int) bool {
	if r == nil || s == nil {
		return false
	}
	if r.Sign() <= 0 || r.Cmp(curve.N) >= 0 {
		return false
	}
	if s.Sign() <= 0 || s.Cmp(curve.N) >= 0 {
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

	v := new(big.Int).Add(e, x1)
	v.Mod(v, curve.N)
	return v.Cmp(r) == 0
}
