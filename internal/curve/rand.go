package curve

import (
	"io"
	"math/big"
)

// RandScalarInRange draws a uniform scalar from [low, high] using
// rejection sampling over fixed-width reads from random, the same shape
// as the teacher's sm2curve.RandScalar. Callers that need a
// cryptographically secure nonce or private key must pass a CSPRNG; the
// misuse kernel is the only place in this module that intentionally
// passes something weaker.
func RandScalarInRange(random io.Reader, low, high *big.Int) (*big.Int, error) {
	byteLen := (high.BitLen() + 7) / 8
	if byteLen == 0 {
		byteLen = 1
	}
	buf := make([]byte, byteLen)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, err
		}
		x := new(big.Int).SetBytes(buf)
		if x.Cmp(low) >= 0 && x.Cmp(high) <= 0 {
			return x, nil
		}
	}
}
