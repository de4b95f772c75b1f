package curve

import (
	"math/big"
	"sync"
)

// gTableSize covers every bit position of a scalar reduced mod N (at most
// 256 bits), per spec: entry i holds 2^i * G.
const gTableSize = 256

var (
	gTableOnce sync.Once
	gTable     [gTableSize]Point
)

// buildGTable populates gTable by repeatedly doubling G. It runs exactly
// once per process, lazily, the first time a generator-scalar-multiply is
// requested; G_TABLE is read-only from then on.
func buildGTable() {
	gTable[0] = Generator()
	for i := 1; i < gTableSize; i++ {
		gTable[i] = Double(gTable[i-1])
	}
}

func ensureGTable() {
	gTableOnce.Do(buildGTable)
}

// Multiply computes k*P for a scalar k >= 0. If P is the generator it uses
// the precomputed doubling table (LSB-first double-and-add); otherwise it
// falls back to a fixed 4-bit window method scanned MSB-first. Both
// strategies compute the same function of (P, k); see MultiplyJacobian in
// fastpath.go for an independent third implementation used to cross-check
// that agreement in tests. Neither path is constant-time: both branch on
// the bits of k, including when k is a secret key or nonce.
func Multiply(p Point, k *big.Int) Point {
	if k.Sign() == 0 || p.IsIdentity() {
		return Identity()
	}
	if p.Equal(Generator()) {
		return multiplyGenerator(k)
	}
	return multiplyWindowed(p, k)
}

// multiplyGenerator implements the G_TABLE path: for each set bit i of k,
// accumulate G_TABLE[i], scanning from the least significant bit. A
// scalar wider than gTableSize bits is first reduced mod N (N*G is the
// identity and N < 2^256), so every set bit has a table entry.
func multiplyGenerator(k *big.Int) Point {
	ensureGTable()

	result := Identity()
	kk := new(big.Int).Set(k)
	if kk.BitLen() > gTableSize {
		kk.Mod(kk, N)
	}
	for i := 0; kk.Sign() > 0 && i < gTableSize; i++ {
		if kk.Bit(0) == 1 {
			result = Add(result, gTable[i])
		}
		kk.Rsh(kk, 1)
	}
	return result
}

// windowTable precomputes {1*P, 2*P, ..., 15*P} for the 4-bit window
// method; table[0] is left as the identity and never read.
func windowTable(p Point) [16]Point {
	var table [16]Point
	table[0] = Identity()
	table[1] = p
	for i := 2; i < 16; i += 2 {
		table[i] = Double(table[i/2])
		table[i+1] = Add(table[i], p)
	}
	return table
}

// multiplyWindowed computes k*P for an arbitrary point P using a 4-bit
// window, scanning k from the most significant nibble. Unlike the
// reference implementation this library is modeled on (which advances a
// variable number of bits per step and can mis-group the final, partial
// nibble when k's bit length isn't a multiple of 4), this always advances
// exactly 4 bits per iteration and reads k's bits directly via big.Int.Bit,
// so there is no separate accounting of "bits remaining" to get wrong.
func multiplyWindowed(p Point, k *big.Int) Point {
	table := windowTable(p)

	bitLen := k.BitLen()
	if bitLen == 0 {
		return Identity()
	}
	nibbles := (bitLen + 3) / 4

	result := Identity()
	for ni := nibbles - 1; ni >= 0; ni-- {
		for j := 0; j < 4; j++ {
			result = Double(result)
		}
		nibble := 0
		for b := 3; b >= 0; b-- {
			bitIndex := ni*4 + b
			nibble <<= 1
			if bitIndex < bitLen {
				nibble |= int(k.Bit(bitIndex))
			}
		}
		if nibble != 0 {
			result = Add(result, table[nibble])
		}
	}
	return result
}
