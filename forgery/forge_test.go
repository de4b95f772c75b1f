package forgery

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"sm2lab/internal/curve"
	"sm2lab/internal/sm3x"
	"sm2lab/sm2"
)

func mustPub(t *testing.T) curve.Point {
	t.Helper()
	_, pub, err := sm2.GenerateKeypair(rand.Reader)
	require.NoError(t, err)
	return pub
}

// TestForgeSignature_VerifiesIffPreimageFound covers E6: the forged
// triple verifies against VerifyForgery exactly when the bounded
// preimage search succeeded, and never otherwise.
func TestForgeSignature_VerifiesIffPreimageFound(t *testing.T) {
	pub := mustPub(t)
	message := []byte("I am Satoshi Nakamoto")

	result, err := ForgeSignature(message, pub, rand.Reader, false)
	require.NoError(t, err)

	ok := VerifyForgery(pub, message, result.Z, result.R, result.S)
	require.Equal(t, result.PreimageFound, ok)
}

func TestForgeSignature_MutatedMessageFailsVerification(t *testing.T) {
	pub := mustPub(t)
	message := []byte("original target message")

	result, err := ForgeSignature(message, pub, rand.Reader, false)
	require.NoError(t, err)
	if !result.PreimageFound {
		t.Skip("preimage search did not succeed for this random draw; nothing to mutate-test")
	}

	ok := VerifyForgery(pub, []byte("original target message, mutated"), result.Z, result.R, result.S)
	require.False(t, ok)
}

func TestForgeSignature_RejectsOffCurvePublicKeyByDefault(t *testing.T) {
	offCurve := curve.NewAffinePoint(curve.P, curve.P)
	_, err := ForgeSignature([]byte("m"), offCurve, rand.Reader, false)
	require.ErrorIs(t, err, ErrOffCurvePublicKey)
}

func TestForgeSignature_AllowOffCurveBypassesCheck(t *testing.T) {
	offCurve := curve.NewAffinePoint(curve.P, curve.P)
	_, err := ForgeSignature([]byte("m"), offCurve, rand.Reader, true)
	require.NoError(t, err)
}

func TestSearchPreimage_FindsKnownCandidate(t *testing.T) {
	message := []byte("search target")
	candidate := []byte("Z_candidate_3")
	digest := sm3x.Sum32(candidate, message)

	z, found := searchPreimage(digest[:], message)
	require.True(t, found)
	require.Equal(t, truncateOrPad(candidate), z)
}

func TestSearchPreimage_ReturnsSentinelWhenExhausted(t *testing.T) {
	message := []byte("search target")
	impossible := make([]byte, 32)
	for i := range impossible {
		impossible[i] = 0xAA
	}

	z, found := searchPreimage(impossible, message)
	require.False(t, found)
	require.Equal(t, truncateOrPad(sentinelZ), z)
}
