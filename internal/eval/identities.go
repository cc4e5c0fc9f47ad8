package eval

import (
	"math/big"

	"github.com/oloc-go/oloc/internal/kernel"
)

func rat(n, d int64) kernel.Rational {
	r, _ := kernel.New(big.NewInt(n), big.NewInt(d))
	return r
}

func negv(v kernel.Value) kernel.Value { return v.Neg() }

var (
	half         = rat(1, 2)
	sqrt2Half    = kernel.SqrtMultiple(half, kernel.Int(2))    // √2/2
	sqrt3Half    = kernel.SqrtMultiple(half, kernel.Int(3))    // √3/2
	sqrt3        = kernel.SqrtMultiple(kernel.One(), kernel.Int(3)) // √3
	oneOverSqrt3 = kernel.SqrtMultiple(rat(1, 3), kernel.Int(3))    // √3/3 == 1/√3
)

// sinTable/cosTable/tanTable/cotTable key the exact closed set of special
// angles — every multiple of π/6, π/4 or π/2 within [0, 2π] — by the
// angle's coefficient of π, mirroring oloc_evaluator.py's per-function
// special_angles dicts.
var sinTable = map[string]kernel.Value{
	"0":    kernel.FromRational(kernel.Zero()),
	"1/6":  kernel.FromRational(half),
	"1/4":  sqrt2Half,
	"1/3":  sqrt3Half,
	"1/2":  kernel.FromRational(kernel.One()),
	"2/3":  sqrt3Half,
	"3/4":  sqrt2Half,
	"5/6":  kernel.FromRational(half),
	"1":    kernel.FromRational(kernel.Zero()),
	"7/6":  kernel.FromRational(half.Neg()),
	"5/4":  negv(sqrt2Half),
	"4/3":  negv(sqrt3Half),
	"3/2":  kernel.FromRational(kernel.Int(-1)),
	"5/3":  negv(sqrt3Half),
	"7/4":  negv(sqrt2Half),
	"11/6": kernel.FromRational(half.Neg()),
	"2":    kernel.FromRational(kernel.Zero()),
}

var cosTable = map[string]kernel.Value{
	"0":    kernel.FromRational(kernel.One()),
	"1/6":  sqrt3Half,
	"1/4":  sqrt2Half,
	"1/3":  kernel.FromRational(half),
	"1/2":  kernel.FromRational(kernel.Zero()),
	"2/3":  kernel.FromRational(half.Neg()),
	"3/4":  negv(sqrt2Half),
	"5/6":  negv(sqrt3Half),
	"1":    kernel.FromRational(kernel.Int(-1)),
	"7/6":  negv(sqrt3Half),
	"5/4":  negv(sqrt2Half),
	"4/3":  kernel.FromRational(half.Neg()),
	"3/2":  kernel.FromRational(kernel.Zero()),
	"5/3":  kernel.FromRational(half),
	"7/4":  sqrt2Half,
	"11/6": sqrt3Half,
	"2":    kernel.FromRational(kernel.One()),
}

var tanTable = map[string]kernel.Value{
	"0":    kernel.FromRational(kernel.Zero()),
	"1/6":  oneOverSqrt3,
	"1/4":  kernel.FromRational(kernel.One()),
	"1/3":  sqrt3,
	"2/3":  negv(sqrt3),
	"3/4":  kernel.FromRational(kernel.Int(-1)),
	"5/6":  negv(oneOverSqrt3),
	"1":    kernel.FromRational(kernel.Zero()),
	"7/6":  oneOverSqrt3,
	"5/4":  kernel.FromRational(kernel.One()),
	"4/3":  sqrt3,
	"5/3":  negv(sqrt3),
	"7/4":  kernel.FromRational(kernel.Int(-1)),
	"11/6": negv(oneOverSqrt3),
	"2":    kernel.FromRational(kernel.Zero()),
}

var tanPoles = map[string]bool{"1/2": true, "3/2": true}

var cotTable = map[string]kernel.Value{
	"1/6":  sqrt3,
	"1/4":  kernel.FromRational(kernel.One()),
	"1/3":  oneOverSqrt3,
	"1/2":  kernel.FromRational(kernel.Zero()),
	"2/3":  negv(oneOverSqrt3),
	"3/4":  kernel.FromRational(kernel.Int(-1)),
	"5/6":  negv(sqrt3),
	"7/6":  sqrt3,
	"5/4":  kernel.FromRational(kernel.One()),
	"4/3":  oneOverSqrt3,
	"3/2":  kernel.FromRational(kernel.Zero()),
	"5/3":  negv(oneOverSqrt3),
	"7/4":  kernel.FromRational(kernel.Int(-1)),
	"11/6": negv(sqrt3),
}

var cotPoles = map[string]bool{"0": true, "1": true, "2": true}

// trigByAngle resolves sin/cos/tan/cot of a π-multiple angle against the
// closed special-angle tables, raising the domainErr flag at tan/cot's
// poles (cos=0 for tan, sin=0 for cot) instead of returning a value.
func trigByAngle(name string, a kernel.Value) (result kernel.Value, ok bool, domainErr bool) {
	if a.IsZero() {
		switch name {
		case "sin", "tan":
			return kernel.FromRational(kernel.Zero()), true, false
		case "cos":
			return kernel.FromRational(kernel.One()), true, false
		case "cot":
			return kernel.Value{}, false, true
		}
	}
	if a.Symbol != "π" {
		return kernel.Value{}, false, false
	}
	key := a.Coeff.String()
	switch name {
	case "sin":
		if v, ok := sinTable[key]; ok {
			return v, true, false
		}
	case "cos":
		if v, ok := cosTable[key]; ok {
			return v, true, false
		}
	case "tan":
		if tanPoles[key] {
			return kernel.Value{}, false, true
		}
		if v, ok := tanTable[key]; ok {
			return v, true, false
		}
	case "cot":
		if cotPoles[key] {
			return kernel.Value{}, false, true
		}
		if v, ok := cotTable[key]; ok {
			return v, true, false
		}
	}
	return kernel.Value{}, false, false
}

// valueKey canonicalizes a trig-inverse argument for the special-value
// tables below: a plain rational keys by its own string, a √radicand
// multiple keys by radicand and coefficient together so e.g. √3/2 and
// 1/√3 (== (1/3)·√3) never collide.
func valueKey(v kernel.Value) string {
	if v.Symbol == "√" {
		return "√" + v.Radicand.String() + "*" + v.Coeff.String()
	}
	return v.Coeff.String()
}

var asinTable = map[string]kernel.Value{
	valueKey(kernel.FromRational(kernel.Zero())):    kernel.PiMultiple(kernel.Zero()),
	valueKey(kernel.FromRational(half)):             kernel.PiMultiple(rat(1, 6)),
	valueKey(sqrt2Half):                             kernel.PiMultiple(rat(1, 4)),
	valueKey(sqrt3Half):                             kernel.PiMultiple(rat(1, 3)),
	valueKey(kernel.FromRational(kernel.One())):     kernel.PiMultiple(half),
	valueKey(kernel.FromRational(half.Neg())):       kernel.PiMultiple(rat(-1, 6)),
	valueKey(negv(sqrt2Half)):                       kernel.PiMultiple(rat(-1, 4)),
	valueKey(negv(sqrt3Half)):                       kernel.PiMultiple(rat(-1, 3)),
	valueKey(kernel.FromRational(kernel.Int(-1))):   kernel.PiMultiple(rat(-1, 2)),
}

var acosTable = map[string]kernel.Value{
	valueKey(kernel.FromRational(kernel.Zero())):  kernel.PiMultiple(half),
	valueKey(kernel.FromRational(half)):           kernel.PiMultiple(rat(1, 3)),
	valueKey(sqrt2Half):                           kernel.PiMultiple(rat(1, 4)),
	valueKey(sqrt3Half):                           kernel.PiMultiple(rat(1, 6)),
	valueKey(kernel.FromRational(kernel.One())):   kernel.PiMultiple(kernel.Zero()),
	valueKey(kernel.FromRational(half.Neg())):     kernel.PiMultiple(rat(2, 3)),
	valueKey(negv(sqrt2Half)):                     kernel.PiMultiple(rat(3, 4)),
	valueKey(negv(sqrt3Half)):                     kernel.PiMultiple(rat(5, 6)),
	valueKey(kernel.FromRational(kernel.Int(-1))): kernel.PiMultiple(kernel.One()),
}

var atanTable = map[string]kernel.Value{
	valueKey(kernel.FromRational(kernel.Zero())):  kernel.PiMultiple(kernel.Zero()),
	valueKey(oneOverSqrt3):                        kernel.PiMultiple(rat(1, 6)),
	valueKey(kernel.FromRational(kernel.One())):   kernel.PiMultiple(rat(1, 4)),
	valueKey(sqrt3):                               kernel.PiMultiple(rat(1, 3)),
	valueKey(negv(oneOverSqrt3)):                  kernel.PiMultiple(rat(-1, 6)),
	valueKey(kernel.FromRational(kernel.Int(-1))): kernel.PiMultiple(rat(-1, 4)),
	valueKey(negv(sqrt3)):                         kernel.PiMultiple(rat(-1, 3)),
}

var acotTable = map[string]kernel.Value{
	valueKey(kernel.FromRational(kernel.Zero())):  kernel.PiMultiple(half),
	valueKey(sqrt3):                               kernel.PiMultiple(rat(1, 6)),
	valueKey(kernel.FromRational(kernel.One())):   kernel.PiMultiple(rat(1, 4)),
	valueKey(oneOverSqrt3):                        kernel.PiMultiple(rat(1, 3)),
	valueKey(negv(sqrt3)):                         kernel.PiMultiple(rat(5, 6)),
	valueKey(kernel.FromRational(kernel.Int(-1))): kernel.PiMultiple(rat(3, 4)),
	valueKey(negv(oneOverSqrt3)):                  kernel.PiMultiple(rat(2, 3)),
}

// inverseTrigByValue resolves asin/acos/atan/acot of a special value
// against the tables above, raising domainErr for asin/acos outside
// [-1, 1] — the only two with a restricted domain.
func inverseTrigByValue(name string, a kernel.Value) (result kernel.Value, ok bool, domainErr bool) {
	var table map[string]kernel.Value
	switch name {
	case "asin":
		table = asinTable
	case "acos":
		table = acosTable
	case "atan":
		table = atanTable
	case "acot":
		table = acotTable
	}
	if v, found := table[valueKey(a)]; found {
		return v, true, false
	}
	if name == "asin" || name == "acos" {
		if r, ok := a.Rational(); ok && (kernel.Cmp(r, kernel.One()) > 0 || kernel.Cmp(r, kernel.Int(-1)) < 0) {
			return kernel.Value{}, false, true
		}
	}
	return kernel.Value{}, false, false
}

// lookupIdentity resolves the closed set of exact transcendental
// identities oloc knows without an irrational kernel: the zero/one
// special cases every scientific calculator folds away, the full
// special-angle table for sin/cos/tan/cot and their inverses, and
// domain poles (tan/cot) or domain bounds (asin/acos) that raise
// domainErr instead of returning ok. Anything else returns ok=false and
// the call stays symbolic — oloc trades numeric completeness for never
// printing a rounded answer.
func lookupIdentity(name string, args []kernel.Value) (result kernel.Value, ok bool, domainErr bool) {
	a := args[0]
	switch name {
	case "sin", "cos", "tan", "cot":
		return trigByAngle(name, a)
	case "asin", "acos", "atan", "acot":
		return inverseTrigByValue(name, a)
	case "exp":
		if a.IsZero() {
			return kernel.FromRational(kernel.One()), true, false
		}
	case "ln", "lg":
		if r, ok := a.Rational(); ok && r.IsOne() {
			return kernel.FromRational(kernel.Zero()), true, false
		}
	case "rad":
		if a.IsZero() {
			return kernel.FromRational(kernel.Zero()), true, false
		}
	case "log":
		base, value := args[0], args[1]
		if vr, ok := value.Rational(); ok && vr.IsOne() {
			return kernel.FromRational(kernel.Zero()), true, false
		}
		if br, bok := base.Rational(); bok {
			if vr, vok := value.Rational(); vok && kernel.Equal(br, vr) {
				return kernel.FromRational(kernel.One()), true, false
			}
		}
	}
	return kernel.Value{}, false, false
}
