package kernel

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReducesAndNormalizesSign(t *testing.T) {
	r, err := New(big.NewInt(-6), big.NewInt(-4))
	assert.NoError(t, err)
	assert.Equal(t, "3/2", r.String())
}

func TestNewZeroDenominatorErrors(t *testing.T) {
	_, err := New(big.NewInt(1), big.NewInt(0))
	assert.Error(t, err)
}

func TestAddSubMulDiv(t *testing.T) {
	half, _ := New(big.NewInt(1), big.NewInt(2))
	third, _ := New(big.NewInt(1), big.NewInt(3))

	assert.Equal(t, "5/6", Add(half, third).String())
	assert.Equal(t, "1/6", Sub(half, third).String())
	assert.Equal(t, "1/6", Mul(half, third).String())

	quot, err := Div(half, third)
	assert.NoError(t, err)
	assert.Equal(t, "3/2", quot.String())
}

func TestDivByZero(t *testing.T) {
	_, err := Div(One(), Zero())
	assert.Error(t, err)
}

func TestCmpAndEqual(t *testing.T) {
	a := Int(3)
	b, _ := New(big.NewInt(6), big.NewInt(2))
	assert.True(t, Equal(a, b))
	assert.Equal(t, 0, Cmp(a, b))
	assert.Equal(t, -1, Cmp(Int(1), Int(2)))
}

func TestIntegerPredicates(t *testing.T) {
	assert.True(t, Int(5).IsInteger())
	half, _ := New(big.NewInt(1), big.NewInt(2))
	assert.False(t, half.IsInteger())
	assert.True(t, Zero().IsZero())
	assert.True(t, One().IsOne())
}
