package sm2

import (
	"encoding/binary"
	"math/big"

	"sm2lab/internal/curve"
	"sm2lab/internal/sm3x"
)

// CalculateZ derives the 32-byte user-identifier digest binding id to pub
// and the curve's domain parameters (spec.md §4.3):
//
//	Z = SM3(ENTLA || ID || a || b || Gx || Gy || Px || Py)
//
// ENTLA is the 2-byte big-endian bit length of id; each of a, b, Gx, Gy,
// Px, Py is encoded as 32 bytes, big-endian, zero-padded.
func CalculateZ(id []byte, pub curve.Point) ([32]byte, error) {
	px, py, ok := pub.Coords()
	if !ok {
		return [32]byte{}, InvalidPublicKeyError{Reason: "public key is the point at infinity"}
	}

	bitLen := len(id) * 8
	if bitLen > 0xFFFF {
		return [32]byte{}, InvalidIdentityError{Length: len(id)}
	}

	buf := make([]byte, 0, 2+len(id)+6*curve.CoordSize)
	var entla [2]byte
	binary.BigEndian.PutUint16(entla[:], uint16(bitLen))
	buf = append(buf, entla[:]...)
	buf = append(buf, id...)
	buf = appendPadded(buf, curve.A)
	buf = appendPadded(buf, curve.B)
	buf = appendPadded(buf, curve.Gx)
	buf = appendPadded(buf, curve.Gy)
	buf = appendPadded(buf, px)
	buf = appendPadded(buf, py)

	return sm3x.Sum32(buf), nil
}

// appendPadded appends x to buf as a big-endian, zero-padded CoordSize-byte
// field.
func appendPadded(buf []byte, x *big.Int) []byte {
	b := x.Bytes()
	for i := len(b); i < curve.CoordSize; i++ {
		buf = append(buf, 0)
	}
	return append(buf, b...)
}
