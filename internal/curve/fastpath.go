package curve

import "math/big"

// jacobianPoint is a point in Jacobian projective coordinates:
// affine (x, y) = (X/Z^2, Y/Z^3). The identity is Z == 0.
//
// This is a second, independent scalar-multiplication strategy, grounded
// on the Jacobian add/double formulas from the teacher's fast wNAF path
// (sm2curve's pointAddField/pointDoubleField), rewritten over math/big
// instead of fixed-width limbs since the point of keeping it here is
// strategy-equivalence testing (spec property 5), not raw throughput.
type jacobianPoint struct {
	x, y, z *big.Int
}

func toJacobian(p Point) jacobianPoint {
	x, y, ok := p.Coords()
	if !ok {
		return jacobianPoint{x: big.NewInt(0), y: big.NewInt(1), z: big.NewInt(0)}
	}
	return jacobianPoint{x: new(big.Int).Set(x), y: new(big.Int).Set(y), z: big.NewInt(1)}
}

func (j jacobianPoint) isIdentity() bool { return j.z.Sign() == 0 }

func (j jacobianPoint) toAffine() Point {
	if j.isIdentity() {
		return Identity()
	}
	zInv := mustInverseMod(j.z, P, "jacobian_to_affine")
	zInv2 := mulMod(zInv, zInv, P)
	zInv3 := mulMod(zInv2, zInv, P)
	return Point{x: mulMod(j.x, zInv2, P), y: mulMod(j.y, zInv3, P)}
}

// jacobianDouble computes 2*p for A = -3, matching the teacher's formula:
// M = 3*(X-Z^2)*(X+Z^2), S = 4*X*Y^2, X' = M^2 - 2S, Y' = M*(S-X') - 8*Y^4,
// Z' = 2*Y*Z.
func jacobianDouble(p jacobianPoint) jacobianPoint {
	if p.isIdentity() || p.y.Sign() == 0 {
		return jacobianPoint{x: big.NewInt(0), y: big.NewInt(1), z: big.NewInt(0)}
	}

	yy := mulMod(p.y, p.y, P)
	yyyy := mulMod(yy, yy, P)
	xyy := mulMod(p.x, yy, P)
	s := mulMod(big.NewInt(4), xyy, P)

	zz := mulMod(p.z, p.z, P)
	xMinusZZ := subMod(p.x, zz, P)
	xPlusZZ := addMod(p.x, zz, P)
	m := mulMod(big.NewInt(3), mulMod(xMinusZZ, xPlusZZ, P), P)

	x3 := subMod(mulMod(m, m, P), mulMod(big.NewInt(2), s, P), P)
	y3 := subMod(mulMod(m, subMod(s, x3, P), P), mulMod(big.NewInt(8), yyyy, P), P)
	z3 := mulMod(big.NewInt(2), mulMod(p.y, p.z, P), P)

	return jacobianPoint{x: x3, y: y3, z: z3}
}

// jacobianAdd computes p1 + p2 for two Jacobian points with independent Z.
func jacobianAdd(p1, p2 jacobianPoint) jacobianPoint {
	if p1.isIdentity() {
		return p2
	}
	if p2.isIdentity() {
		return p1
	}

	z1z1 := mulMod(p1.z, p1.z, P)
	z2z2 := mulMod(p2.z, p2.z, P)
	u1 := mulMod(p1.x, z2z2, P)
	u2 := mulMod(p2.x, z1z1, P)
	s1 := mulMod(p1.y, mulMod(p2.z, z2z2, P), P)
	s2 := mulMod(p2.y, mulMod(p1.z, z1z1, P), P)

	h := subMod(u2, u1, P)
	r := subMod(s2, s1, P)

	if h.Sign() == 0 {
		if r.Sign() == 0 {
			return jacobianDouble(p1)
		}
		return jacobianPoint{x: big.NewInt(0), y: big.NewInt(1), z: big.NewInt(0)}
	}

	hh := mulMod(h, h, P)
	hhh := mulMod(h, hh, P)
	v := mulMod(u1, hh, P)

	x3 := subMod(subMod(mulMod(r, r, P), hhh, P), mulMod(big.NewInt(2), v, P), P)
	y3 := subMod(mulMod(r, subMod(v, x3, P), P), mulMod(s1, hhh, P), P)
	z3 := mulMod(mulMod(p1.z, p2.z, P), h, P)

	return jacobianPoint{x: x3, y: y3, z: z3}
}

// MultiplyJacobian computes k*P via plain MSB-first double-and-add in
// Jacobian coordinates. It exists purely as an independently-derived
// second strategy so tests can assert it agrees with Multiply on every
// input (spec property 5), not as a faster production path.
func MultiplyJacobian(p Point, k *big.Int) Point {
	if k.Sign() == 0 || p.IsIdentity() {
		return Identity()
	}

	acc := jacobianPoint{x: big.NewInt(0), y: big.NewInt(1), z: big.NewInt(0)}
	base := toJacobian(p)

	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = jacobianDouble(acc)
		if k.Bit(i) == 1 {
			acc = jacobianAdd(acc, base)
		}
	}
	return acc.toAffine()
}
