// Package curve implements the SM2 recommended elliptic curve: modular
// arithmetic over the field and group order, affine point arithmetic, and
// the two scalar-multiplication strategies the signer and verifier rely on.
package curve

import "math/big"

func mustParse(hex string) *big.Int {
	x, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("curve: invalid domain parameter literal " + hex)
	}
	return x
}

// Domain parameters for the SM2 recommended curve, fixed for the life of
// the process. P is the field prime, N the group order, (Gx, Gy) the
// generator, and A, B the short-Weierstrass coefficients of
// y^2 = x^3 + A*x + B (mod P). A = P - 3, as fixed by the SM2 standard.
var (
	P  = mustParse("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFF")
	N  = mustParse("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFF7203DF6B21C6052B53BBF40939D54123")
	B  = mustParse("28E9FA9E9D9F5E344D5A9E4BCF6509A7F39789F515AB8F92DDBCBD414D940E93")
	Gx = mustParse("32C4AE2C1F1981195F9904466A39C9948FE30BBFF2660BE1715A4589334C74C7")
	Gy = mustParse("BC3736A2F4F6779C59BDCEE36B692153D0A9877CC62A474002DF32E52139F0A0")
	A  = new(big.Int).Sub(P, big.NewInt(3))
)

// CoordSize is the fixed big-endian width, in bytes, of a coordinate or
// scalar once padded: 256 bits.
const CoordSize = 32

// Generator returns the SM2 base point G.
func Generator() Point {
	return Point{x: new(big.Int).Set(Gx), y: new(big.Int).Set(Gy)}
}
