package curve

import (
	"fmt"
	"math/big"
)

// NoInverseError reports an attempt to invert an element that shares a
// common factor with the modulus. For the prime field and prime-order
// group this library works over, it only fires on a genuine programmer or
// input bug (e.g. an element that is an accidental multiple of p or n).
type NoInverseError struct {
	Value   *big.Int
	Modulus *big.Int
}

func (e NoInverseError) Error() string {
	return fmt.Sprintf("curve: %s has no inverse mod %s", e.Value.String(), e.Modulus.String())
}

// InvalidPointError reports that an internal computation produced the
// point at infinity in a context where, for well-formed inputs, that
// cannot happen. It signals an invariant violation rather than a
// user-facing condition and is raised only as a panic value by
// mustInverseMod; nothing in this module recovers it. The signer and
// verifier instead detect an identity result themselves (via Coords) and
// retry or return false.
type InvalidPointError struct {
	Op string
}

func (e InvalidPointError) Error() string {
	return fmt.Sprintf("curve: invalid point (at infinity) during %s", e.Op)
}
