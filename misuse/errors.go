package misuse

import "errors"

// ErrInvalidNonce is returned when the (deliberately weak) nonce draw
// produces k*G == identity, which a correct signer would simply retry on
// but which an attack constructor has no business retrying past — it
// would change the very nonce the scenario is built to reuse.
// Scenario2FixedK also returns it when the forged s' comes out zero.
var ErrInvalidNonce = errors.New("misuse: nonce k*G landed on the point at infinity, draw again")

// ErrDenominatorZero is returned by Scenario1ReusedK when the
// (s2 - s1 + r2 - r1) denominator of the key-recovery formula vanishes
// mod n, the construction's one failure mode.
var ErrDenominatorZero = errors.New("misuse: scenario1 recovery denominator is zero mod n")
