package curve

import (
	"math/big"
	"sync"
)

// bigIntPool reuses scratch big.Ints across the modular-arithmetic hot path,
// the same pattern the teacher's curve package pools its own scratch values.
var bigIntPool = sync.Pool{
	New: func() any { return new(big.Int) },
}

func getBigInt() *big.Int { return bigIntPool.Get().(*big.Int) }

func putBigInt(x *big.Int) {
	if x != nil {
		x.SetInt64(0)
		bigIntPool.Put(x)
	}
}

// ExtendedGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b), for
// any non-negative a, b. It terminates for all such inputs.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)

	for r.Sign() != 0 {
		q.Div(oldR, r)

		oldR, r = r, tmp.Sub(oldR, tmp.Mul(q, r))
		tmp = new(big.Int)

		newS := new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldS, s = s, newS

		newT := new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
		oldT, t = t, newT
	}

	return oldR, oldS, oldT
}

// InverseMod returns the unique y in [1, m) with x*y ≡ 1 (mod m). It fails
// with NoInverseError when gcd(x, m) != 1.
func InverseMod(x, m *big.Int) (*big.Int, error) {
	xm := new(big.Int).Mod(x, m)
	g, inv, _ := ExtendedGCD(xm, m)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, NoInverseError{Value: new(big.Int).Set(x), Modulus: new(big.Int).Set(m)}
	}
	return inv.Mod(inv, m), nil
}

// mustInverseMod inverts x modulo m, panicking with InvalidPointError if
// the inverse does not exist. Curve arithmetic calls this only at points
// where a valid on-curve affine point guarantees the denominator is
// coprime to p; a panic here means a caller handed in an off-curve point.
func mustInverseMod(x, m *big.Int, op string) *big.Int {
	inv, err := InverseMod(x, m)
	if err != nil {
		panic(InvalidPointError{Op: op})
	}
	return inv
}

func addMod(x, y, m *big.Int) *big.Int {
	r := getBigInt()
	r.Add(x, y)
	r.Mod(r, m)
	out := new(big.Int).Set(r)
	putBigInt(r)
	return out
}

func subMod(x, y, m *big.Int) *big.Int {
	r := getBigInt()
	r.Sub(x, y)
	r.Mod(r, m)
	out := new(big.Int).Set(r)
	putBigInt(r)
	return out
}

func mulMod(x, y, m *big.Int) *big.Int {
	r := getBigInt()
	r.Mul(x, y)
	r.Mod(r, m)
	out := new(big.Int).Set(r)
	putBigInt(r)
	return out
}
