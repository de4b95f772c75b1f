package curve

import "math/big"

// Point is an SM2 curve point: either the identity (point at infinity) or
// an affine pair (x, y) with 0 <= x, y < P lying on the curve. The zero
// value is NOT the identity — always obtain one via Identity() or
// NewAffinePoint so the infinity flag is explicit and cannot be confused
// with the affine point (0, 0).
type Point struct {
	infinity bool
	x, y     *big.Int
}

// Identity returns the point at infinity, the group's neutral element.
func Identity() Point {
	return Point{infinity: true}
}

// NewAffinePoint builds a non-identity point from coordinates, reduced
// modulo P. Callers that need the curve-membership invariant enforced
// should check IsOnCurve themselves; construction alone does not verify
// it, since the misuse/forgery kernel legitimately needs to build points
// from attacker-controlled or off-curve inputs (see spec §9's note on the
// forgery demo's non-member public key).
func NewAffinePoint(x, y *big.Int) Point {
	return Point{
		x: new(big.Int).Mod(new(big.Int).Set(x), P),
		y: new(big.Int).Mod(new(big.Int).Set(y), P),
	}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool { return p.infinity }

// Coords returns p's affine coordinates and ok=true, or ok=false if p is
// the identity (in which case x and y are nil).
func (p Point) Coords() (x, y *big.Int, ok bool) {
	if p.infinity {
		return nil, nil, false
	}
	return p.x, p.y, true
}

// Equal reports whether p and q denote the same point.
func (p Point) Equal(q Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// IsOnCurve reports whether p satisfies y^2 ≡ x^3 + A*x + B (mod P). The
// identity is considered on-curve (it is the group's neutral element).
func IsOnCurve(p Point) bool {
	x, y, ok := p.Coords()
	if !ok {
		return true
	}
	lhs := mulMod(y, y, P)
	x2 := mulMod(x, x, P)
	x3 := mulMod(x2, x, P)
	ax := mulMod(A, x, P)
	rhs := addMod(addMod(x3, ax, P), B, P)
	return lhs.Cmp(rhs) == 0
}

// Add computes p1 + p2 using the standard affine chord-and-tangent rule.
func Add(p1, p2 Point) Point {
	x1, y1, ok1 := p1.Coords()
	x2, y2, ok2 := p2.Coords()
	if !ok1 {
		return p2
	}
	if !ok2 {
		return p1
	}
	if x1.Cmp(x2) == 0 {
		if addMod(y1, y2, P).Sign() == 0 {
			return Identity()
		}
		return Double(p1)
	}

	num := subMod(y2, y1, P)
	den := subMod(x2, x1, P)
	denInv := mustInverseMod(den, P, "point_add")
	k := mulMod(num, denInv, P)

	x3 := subMod(subMod(mulMod(k, k, P), x1, P), x2, P)
	y3 := subMod(mulMod(k, subMod(x1, x3, P), P), y1, P)
	return Point{x: x3, y: y3}
}

// Double computes 2*p using the tangent-line rule.
func Double(p Point) Point {
	x1, y1, ok := p.Coords()
	if !ok {
		return Identity()
	}
	if y1.Sign() == 0 {
		return Identity()
	}

	num := addMod(mulMod(big.NewInt(3), mulMod(x1, x1, P), P), A, P)
	den := addMod(y1, y1, P)
	denInv := mustInverseMod(den, P, "point_double")
	k := mulMod(num, denInv, P)

	two := addMod(x1, x1, P)
	x3 := subMod(mulMod(k, k, P), two, P)
	y3 := subMod(mulMod(k, subMod(x1, x3, P), P), y1, P)
	return Point{x: x3, y: y3}
}

// Negate returns -p, i.e. (x, -y mod P). Negate(Identity()) is Identity().
func Negate(p Point) Point {
	x, y, ok := p.Coords()
	if !ok {
		return Identity()
	}
	negY := new(big.Int).Sub(P, y)
	negY.Mod(negY, P)
	return Point{x: new(big.Int).Set(x), y: negY}
}
