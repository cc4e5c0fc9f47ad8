package kernel

import (
	"fmt"
	"math/big"
)

// GCD returns the Euclidean greatest common divisor of |a| and |b|.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// LCM returns the least common multiple of |a| and |b|; LCM(0, n) == 0.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return big.NewInt(0)
	}
	g := GCD(a, b)
	prod := new(big.Int).Mul(new(big.Int).Abs(a), new(big.Int).Abs(b))
	return prod.Quo(prod, g)
}

// Factorial computes n! for n >= 0 using unlimited-precision integers, never
// a fixed-width accumulator, so a large factorial never overflows. Negative
// n is a domain error the caller reports as DOMAIN_ERROR.
func Factorial(n *big.Int) (*big.Int, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("kernel: factorial of a negative number")
	}
	result := big.NewInt(1)
	i := big.NewInt(1)
	for i.Cmp(n) <= 0 {
		result.Mul(result, i)
		i.Add(i, bigOne)
	}
	return result, nil
}

// IntPow computes base^exp for exp >= 0 using unlimited-precision integers
// (math/big.Int.Exp), guarding the only genuinely undefined case, 0^0,
// which the caller reports as ZERO_TO_THE_POWER_OF_ZERO.
func IntPow(base *big.Int, exp *big.Int) (*big.Int, error) {
	if base.Sign() == 0 && exp.Sign() == 0 {
		return nil, fmt.Errorf("kernel: 0^0 is undefined")
	}
	if exp.Sign() < 0 {
		return nil, fmt.Errorf("kernel: IntPow requires a non-negative exponent")
	}
	return new(big.Int).Exp(base, exp, nil), nil
}

// ExactNthRoot reports whether n is exactly r^root for some non-negative
// integer r, and returns r if so. Used for fractional exponents of the form
// 1/root on an integer base.
func ExactNthRoot(n *big.Int, root int64) (*big.Int, bool) {
	if n.Sign() < 0 || root <= 0 {
		return nil, false
	}
	if n.Sign() == 0 {
		return big.NewInt(0), true
	}
	// Newton's method on unlimited-precision integers, then verify exactly.
	k := big.NewInt(root)
	guess := new(big.Int).Set(n)
	one := big.NewInt(1)
	for {
		// next = ((k-1)*guess + n/guess^(k-1)) / k
		gkm1, _ := IntPow(guess, new(big.Int).Sub(k, one))
		if gkm1.Sign() == 0 {
			break
		}
		term := new(big.Int).Quo(n, gkm1)
		next := new(big.Int).Mul(new(big.Int).Sub(k, one), guess)
		next.Add(next, term)
		next.Quo(next, k)
		if next.Cmp(guess) >= 0 {
			break
		}
		guess = next
	}
	for _, cand := range []*big.Int{guess, new(big.Int).Add(guess, one)} {
		if p, err := IntPow(cand, k); err == nil && p.Cmp(n) == 0 {
			return new(big.Int).Set(cand), true
		}
	}
	return nil, false
}

// IsPerfectPower reports whether r is an exact k-th power (k >= 2) for a
// rational whose numerator and denominator are each exact k-th powers,
// returning the reduced root.
func IsPerfectPower(r Rational, k int64) (Rational, bool) {
	if k <= 0 {
		return Rational{}, false
	}
	if r.Sign() < 0 && k%2 == 0 {
		return Rational{}, false
	}
	neg := r.Sign() < 0
	num := new(big.Int).Abs(r.Num)
	rootNum, ok := ExactNthRoot(num, k)
	if !ok {
		return Rational{}, false
	}
	rootDen, ok := ExactNthRoot(r.Den, k)
	if !ok {
		return Rational{}, false
	}
	if neg {
		rootNum.Neg(rootNum)
	}
	result, _ := New(rootNum, rootDen)
	return result, true
}
