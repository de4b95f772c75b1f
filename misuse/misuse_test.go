package misuse

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"sm2lab/internal/curve"
	"sm2lab/sm2"
)

func mustKeypair(t *testing.T) (*big.Int, curve.Point) {
	t.Helper()
	d, pub, err := sm2.GenerateKeypair(rand.Reader)
	require.NoError(t, err)
	return d, pub
}

func mustZ(t *testing.T, id []byte, pub curve.Point) [32]byte {
	t.Helper()
	z, err := sm2.CalculateZ(id, pub)
	require.NoError(t, err)
	return z
}

// fixedReader always returns the same nonzero byte, simulating a broken
// nonce generator. It is never used for real signing in this module
// outside the misuse scenarios themselves.
type fixedReader struct{ b byte }

func (f fixedReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = f.b
	}
	return len(p), nil
}

// TestScenario1ReusedK_RecoversKey covers property 7: reusing k across
// two signatures must leak d.
func TestScenario1ReusedK_RecoversKey(t *testing.T) {
	d, _ := mustKeypair(t)
	id := []byte("alice@example.com")

	realPub := curve.Multiply(curve.Generator(), d)
	z1 := mustZ(t, id, realPub)
	z2 := mustZ(t, id, realPub)

	recovered, success, err := Scenario1ReusedK(d, []byte("message one"), []byte("message two"), z1, z2, fixedReader{b: 0x42})
	require.NoError(t, err)
	require.True(t, success)
	require.Equal(t, 0, recovered.Cmp(d))
}

func TestScenario1ReusedK_SharedZDistinctMessages(t *testing.T) {
	d, _ := mustKeypair(t)
	pub := curve.Multiply(curve.Generator(), d)
	z := mustZ(t, []byte("id"), pub)

	recovered, success, err := Scenario1ReusedK(d, []byte("m1"), []byte("m2"), z, z, fixedReader{b: 0x7})
	require.NoError(t, err)
	require.True(t, success)
	require.Equal(t, 0, recovered.Cmp(d))
}

// TestScenario2FixedK_Forges covers E3: forging a signature on a new
// message given a known fixed nonce k and a known (1+d)^-1, without
// drawing any fresh nonce.
func TestScenario2FixedK_Forges(t *testing.T) {
	d, pub := mustKeypair(t)
	id := []byte("bob@example.com")
	z := mustZ(t, id, pub)

	nMinus2 := new(big.Int).Sub(curve.N, big.NewInt(2))
	k, err := curve.RandScalarInRange(fixedReader{b: 0x11}, big.NewInt(2), nMinus2)
	require.NoError(t, err)

	ePrime := eFromZM(z, []byte("forged message"))

	dPlus1Inv, err := curve.InverseMod(new(big.Int).Add(d, big.NewInt(1)), curve.N)
	require.NoError(t, err)

	rPrime, sPrime, err := Scenario2FixedK(k, dPlus1Inv, ePrime)
	require.NoError(t, err)
	require.True(t, sm2.Verify(pub, []byte("forged message"), z, rPrime, sPrime))
}

// TestScenario3IncorrectZ_BindsToZNotID covers E4: a signature verifies
// under the Z it was actually signed with and fails under a different
// identity's Z, even though both share the same public key.
func TestScenario3IncorrectZ_BindsToZNotID(t *testing.T) {
	d, pub := mustKeypair(t)
	okUnder1, okUnder2, err := Scenario3IncorrectZ(d, pub, []byte("payload"), []byte("id-1"), []byte("id-2"), rand.Reader)
	require.NoError(t, err)
	require.True(t, okUnder1)
	require.False(t, okUnder2)
}

// TestScenario4MalleableSignature_NaiveCompanionDoesNotVerify documents
// that SM2 resists the ECDSA-style public malleability the source
// assumes: the (-s-r mod n) companion differs from s but does not
// verify, because a given (r, k, d) pins s uniquely (see
// Scenario4MalleableSignature's doc comment and DESIGN.md).
func TestScenario4MalleableSignature_NaiveCompanionDoesNotVerify(t *testing.T) {
	d, pub := mustKeypair(t)
	id := []byte("carol@example.com")
	z := mustZ(t, id, pub)

	message := []byte("malleability target")
	r, s, err := sm2.Sign(d, message, z, rand.Reader)
	require.NoError(t, err)
	require.True(t, sm2.Verify(pub, message, z, r, s))

	sPrime, verifies := Scenario4MalleableSignature(r, s, func(r, s *big.Int) bool {
		return sm2.Verify(pub, message, z, r, s)
	})
	require.NotEqual(t, 0, s.Cmp(sPrime))
	require.False(t, verifies)
}
