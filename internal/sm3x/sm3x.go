// Package sm3x is the hash32 collaborator spec.md treats as external: a
// thin adapter over github.com/emmansun/gmsm/sm3, the ecosystem's SM3
// implementation. Nothing in this module reimplements SM3 itself.
package sm3x

import "github.com/emmansun/gmsm/sm3"

// Size is the length, in bytes, of an SM3 digest.
const Size = 32

// Sum32 computes the SM3 digest of data and returns it as a fixed-size
// array, matching spec.md §6's hash32(bytes) -> 32-byte digest contract.
func Sum32(data ...[]byte) [Size]byte {
	h := sm3.New()
	for _, d := range data {
		h.Write(d)
	}
	var out [Size]byte
	copy(out[:], h.Sum(nil))
	return out
}
