// Package kernel implements exact-arithmetic primitives: rational
// add/sub/mul/div/pow and the integer helpers (gcd, lcm, factorial,
// unlimited-precision power) they're built from. Every operation works on
// arbitrary-precision integers via math/big (see DESIGN.md for why this is
// the one standard-library-only component).
package kernel

import (
	"fmt"
	"math/big"
)

// Rational is the canonical rational form: a reduced fraction with
// gcd(|Num|, Den) = 1 and Den > 0. An Integer token is simply a Rational
// with Den == 1.
type Rational struct {
	Num *big.Int
	Den *big.Int
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Int wraps an int64 into a reduced Rational with denominator 1.
func Int(n int64) Rational {
	return Rational{Num: big.NewInt(n), Den: big.NewInt(1)}
}

// FromBigInt wraps a copy of n into a reduced Rational with denominator 1,
// so later changes to n do not affect the result.
func FromBigInt(n *big.Int) Rational {
	return Rational{Num: new(big.Int).Set(n), Den: big.NewInt(1)}
}

// New builds a Rational from an arbitrary numerator/denominator pair,
// reducing by GCD and normalizing the sign so Den > 0. A zero denominator is
// a caller error (the DIVIDE_BY_ZERO diagnosis with expression position
// belongs to the calling stage, not the kernel).
func New(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, fmt.Errorf("kernel: zero denominator")
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Sign() != 0 && g.Cmp(bigOne) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	return Rational{Num: n, Den: d}, nil
}

// Zero is the additive identity.
func Zero() Rational { return Int(0) }

// One is the multiplicative identity.
func One() Rational { return Int(1) }

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool { return r.Num.Sign() == 0 }

// IsInteger reports whether r has denominator 1.
func (r Rational) IsInteger() bool { return r.Den.Cmp(bigOne) == 0 }

// IsOne reports whether r is exactly 1.
func (r Rational) IsOne() bool { return r.IsInteger() && r.Num.Cmp(bigOne) == 0 }

// Sign returns -1, 0 or 1 per the sign of r.
func (r Rational) Sign() int { return r.Num.Sign() }

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{Num: new(big.Int).Neg(r.Num), Den: new(big.Int).Set(r.Den)}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	return Rational{Num: new(big.Int).Abs(r.Num), Den: new(big.Int).Set(r.Den)}
}

// Add returns a + b, reduced: a/b + c/d = (ad + cb)/(bd).
func Add(a, b Rational) Rational {
	num := new(big.Int).Add(
		new(big.Int).Mul(a.Num, b.Den),
		new(big.Int).Mul(b.Num, a.Den),
	)
	den := new(big.Int).Mul(a.Den, b.Den)
	r, _ := New(num, den)
	return r
}

// Sub returns a - b.
func Sub(a, b Rational) Rational {
	return Add(a, b.Neg())
}

// Mul returns a * b: the products of numerators and denominators, reduced
// by GCD.
func Mul(a, b Rational) Rational {
	num := new(big.Int).Mul(a.Num, b.Num)
	den := new(big.Int).Mul(a.Den, b.Den)
	r, _ := New(num, den)
	return r
}

// Div returns a / b. The caller must check b.IsZero() first and raise
// DIVIDE_BY_ZERO with source position context; Div itself only reports a
// plain error so the kernel stays free of position/expression knowledge.
func Div(a, b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, fmt.Errorf("kernel: division by zero")
	}
	num := new(big.Int).Mul(a.Num, b.Den)
	den := new(big.Int).Mul(a.Den, b.Num)
	return New(num, den)
}

// Cmp compares a and b: -1, 0 or 1.
func Cmp(a, b Rational) int {
	lhs := new(big.Int).Mul(a.Num, b.Den)
	rhs := new(big.Int).Mul(b.Num, a.Den)
	return lhs.Cmp(rhs)
}

// Equal reports whether a and b denote the same reduced rational.
func Equal(a, b Rational) bool {
	return a.Num.Cmp(b.Num) == 0 && a.Den.Cmp(b.Den) == 0
}

// String renders "n" for integers or "n/d" for proper fractions —
// the evaluator's re-serializer wraps this further with brackets as
// precedence demands.
func (r Rational) String() string {
	if r.IsInteger() {
		return r.Num.String()
	}
	return r.Num.String() + "/" + r.Den.String()
}

// Float64 approximates r as a float64, used only by the (non-core)
// conversion layer — never inside the exact pipeline itself.
func (r Rational) Float64() float64 {
	f := new(big.Rat).SetFrac(r.Num, r.Den)
	v, _ := f.Float64()
	return v
}
