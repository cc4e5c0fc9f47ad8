package kernel

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCDLCM(t *testing.T) {
	assert.Equal(t, big.NewInt(6), GCD(big.NewInt(24), big.NewInt(18)))
	assert.Equal(t, big.NewInt(72), LCM(big.NewInt(24), big.NewInt(18)))
	assert.Equal(t, big.NewInt(0), LCM(big.NewInt(0), big.NewInt(5)))
}

func TestFactorial(t *testing.T) {
	f, err := Factorial(big.NewInt(10))
	assert.NoError(t, err)
	assert.Equal(t, "3628800", f.String())

	_, err = Factorial(big.NewInt(-1))
	assert.Error(t, err)
}

func TestIntPow(t *testing.T) {
	p, err := IntPow(big.NewInt(2), big.NewInt(10))
	assert.NoError(t, err)
	assert.Equal(t, "1024", p.String())

	_, err = IntPow(big.NewInt(0), big.NewInt(0))
	assert.Error(t, err)
}

func TestExactNthRoot(t *testing.T) {
	root, ok := ExactNthRoot(big.NewInt(27), 3)
	assert.True(t, ok)
	assert.Equal(t, "3", root.String())

	_, ok = ExactNthRoot(big.NewInt(10), 3)
	assert.False(t, ok)
}

func TestIsPerfectPower(t *testing.T) {
	r, _ := New(big.NewInt(4), big.NewInt(9))
	root, ok := IsPerfectPower(r, 2)
	assert.True(t, ok)
	assert.Equal(t, "2/3", root.String())
}
