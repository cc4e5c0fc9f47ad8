package kernel

import "fmt"

// Value is an exact evaluator value: either a plain Rational, or a
// Rational coefficient times one irrational unit. Symbol is "" for a
// plain rational, a native irrational spelling ("π" or "𝑒") for a
// coefficient times that constant, or "√" for a coefficient times
// √Radicand. oloc never approximates, so this is how a result that isn't
// itself rational — degrees-to-radians, a special trig angle, an
// unsimplified root — still carries forward as an exact value instead of
// forcing reduction to give up on the whole subtree.
type Value struct {
	Coeff    Rational
	Symbol   string
	Radicand Rational // meaningful only when Symbol == "√"
}

// FromRational lifts a plain Rational into a Value.
func FromRational(r Rational) Value { return Value{Coeff: r} }

// NativeMultiple returns coeff*symbol for a native irrational spelling
// ("π" or "𝑒"). A zero coeff is still exactly 0, per Value.IsRational.
func NativeMultiple(coeff Rational, symbol string) Value {
	return Value{Coeff: coeff, Symbol: symbol}
}

// PiMultiple returns coeff*π.
func PiMultiple(coeff Rational) Value { return NativeMultiple(coeff, "π") }

// SqrtMultiple returns coeff*√radicand, collapsing to a plain Rational
// when radicand is itself an exact square (including 0 and 1).
func SqrtMultiple(coeff, radicand Rational) Value {
	if radicand.IsZero() {
		return FromRational(Zero())
	}
	if root, exact := IsPerfectPower(radicand, 2); exact {
		return FromRational(Mul(coeff, root))
	}
	return Value{Coeff: coeff, Symbol: "√", Radicand: radicand}
}

// IsRational reports whether v carries no irrational unit — true both for
// a plain rational and for a zero coefficient on any unit, since 0 times
// an irrational is exactly 0.
func (v Value) IsRational() bool { return v.Symbol == "" || v.Coeff.IsZero() }

// Rational returns v's Coeff and true when v IsRational, else the zero
// Rational and false.
func (v Value) Rational() (Rational, bool) {
	if v.IsRational() {
		return v.Coeff, true
	}
	return Rational{}, false
}

// IsZero reports whether v is exactly zero, regardless of unit.
func (v Value) IsZero() bool { return v.Coeff.IsZero() }

// Neg returns -v.
func (v Value) Neg() Value {
	return Value{Coeff: v.Coeff.Neg(), Symbol: v.Symbol, Radicand: v.Radicand}
}

// Abs returns |v|.
func (v Value) Abs() Value {
	return Value{Coeff: v.Coeff.Abs(), Symbol: v.Symbol, Radicand: v.Radicand}
}

// sameUnit reports whether a and b carry the same irrational unit (and,
// for a √ unit, the same radicand), so their coefficients combine by
// simple addition.
func sameUnit(a, b Value) bool {
	if a.Symbol != b.Symbol {
		return false
	}
	if a.Symbol == "√" {
		return Equal(a.Radicand, b.Radicand)
	}
	return true
}

// AddValue returns a+b when the two share a unit (including both plain
// rationals) or either is zero; ok is false otherwise and the caller
// leaves the sum symbolic.
func AddValue(a, b Value) (Value, bool) {
	if a.IsZero() {
		return b, true
	}
	if b.IsZero() {
		return a, true
	}
	if !sameUnit(a, b) {
		return Value{}, false
	}
	return Value{Coeff: Add(a.Coeff, b.Coeff), Symbol: a.Symbol, Radicand: a.Radicand}, true
}

// MulValue returns a*b when the product stays within one unit: both
// rational, or one rational times one irrational. Two irrational units
// multiplying together (π*π, distinct radicands, ...) are left symbolic,
// except √r*√r which cancels to the plain rational r.
func MulValue(a, b Value) (Value, bool) {
	if a.IsRational() {
		return Value{Coeff: Mul(a.Coeff, b.Coeff), Symbol: b.Symbol, Radicand: b.Radicand}, true
	}
	if b.IsRational() {
		return Value{Coeff: Mul(a.Coeff, b.Coeff), Symbol: a.Symbol, Radicand: a.Radicand}, true
	}
	if a.Symbol == "√" && b.Symbol == "√" && Equal(a.Radicand, b.Radicand) {
		return FromRational(Mul(Mul(a.Coeff, b.Coeff), a.Radicand)), true
	}
	return Value{}, false
}

// DivValue returns a/b. Division by a plain rational always preserves
// a's unit; division by a matching irrational unit cancels to a plain
// ratio of coefficients; anything else is left symbolic.
func DivValue(a, b Value) (Value, bool, error) {
	if b.IsZero() {
		return Value{}, false, errDivideByZero
	}
	if b.IsRational() {
		r, err := Div(a.Coeff, b.Coeff)
		if err != nil {
			return Value{}, false, err
		}
		return Value{Coeff: r, Symbol: a.Symbol, Radicand: a.Radicand}, true, nil
	}
	if sameUnit(a, b) {
		r, err := Div(a.Coeff, b.Coeff)
		if err != nil {
			return Value{}, false, err
		}
		return FromRational(r), true, nil
	}
	return Value{}, false, nil
}

// String renders v for diagnostics: a bare Rational, or "coeff*symbol"
// (dropping the coefficient when it is 1 or -1).
func (v Value) String() string {
	if v.IsRational() {
		return v.Coeff.String()
	}
	unit := v.Symbol
	if v.Symbol == "√" {
		unit = "√" + v.Radicand.String()
	}
	if v.Coeff.IsOne() {
		return unit
	}
	if Equal(v.Coeff, Int(-1)) {
		return "-" + unit
	}
	return v.Coeff.String() + "*" + unit
}

var errDivideByZero = fmt.Errorf("kernel: division by zero")
