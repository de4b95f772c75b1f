package curve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratorOnCurve(t *testing.T) {
	assert.True(t, IsOnCurve(Generator()))
}

func TestIdentityIsNotAffineZeroZero(t *testing.T) {
	id := Identity()
	zero := NewAffinePoint(big.NewInt(0), big.NewInt(0))
	assert.True(t, id.IsIdentity())
	assert.False(t, zero.IsIdentity())
	assert.False(t, id.Equal(zero))
}

func TestAddIdentityIsNoOp(t *testing.T) {
	g := Generator()
	assert.True(t, Add(g, Identity()).Equal(g))
	assert.True(t, Add(Identity(), g).Equal(g))
	assert.True(t, Identity().Equal(Add(Identity(), Identity())))
}

func TestAddOppositePointsIsIdentity(t *testing.T) {
	g := Generator()
	negG := Negate(g)
	assert.True(t, IsOnCurve(negG))
	assert.True(t, Add(g, negG).Equal(Identity()))
}

func TestDoubleMatchesAddSelf(t *testing.T) {
	g := Generator()
	assert.True(t, Double(g).Equal(Add(g, g)))
}

func TestDoubleOfIdentity(t *testing.T) {
	assert.True(t, Double(Identity()).Equal(Identity()))
}

func TestResultsStayOnCurve(t *testing.T) {
	g := Generator()
	g2 := Double(g)
	g3 := Add(g2, g)
	assert.True(t, IsOnCurve(g2))
	assert.True(t, IsOnCurve(g3))
}
