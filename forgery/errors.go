package forgery

import "errors"

// ErrPreimageNotFound names the outcome in which the bounded search for
// a Z whose SM3(Z||message) equals the target digest exhausts its
// candidate budget without success. ForgeSignature does not return it as
// an error; it reports that outcome as ForgeResult.PreimageFound == false
// with a nil error. SM3 preimage resistance makes this the
// expected outcome against any real message; the construction is
// illustrative, not operational, for exactly this reason.
var ErrPreimageNotFound = errors.New("forgery: no Z candidate in the search budget hashes to the target digest")

// ErrPointAtInfinity is returned when the attacker's chosen u, v happen
// to make u*G + v*P the identity, which would leave r undefined.
var ErrPointAtInfinity = errors.New("forgery: u*G + v*pub landed on the point at infinity, choose different u, v")

// ErrOffCurvePublicKey is returned by ForgeSignature when pub fails the
// curve-membership check and allowOffCurve is false. See ForgeSignature's
// doc for why that check is a toggle rather than unconditional.
var ErrOffCurvePublicKey = errors.New("forgery: public key is not on the curve (pass allowOffCurve=true to bypass)")
