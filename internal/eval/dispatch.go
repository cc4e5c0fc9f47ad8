package eval

import (
	"math/big"

	"github.com/oloc-go/oloc/internal/ast"
	"github.com/oloc-go/oloc/internal/calcerr"
	"github.com/oloc-go/oloc/internal/kernel"
	"github.com/oloc-go/oloc/internal/token"
)

// literalValue returns the exact value of a Literal node: a plain
// Rational for an Integer, or a coeff-1 native multiple for a bare π/𝑒
// token. ok is false only for a carrier this pipeline has no exact
// representation for at all (a custom irrational).
func literalValue(node ast.Node) (kernel.Value, bool) {
	t := node.Tokens[0]
	switch t.Kind {
	case token.Integer:
		n, ok := new(big.Int).SetString(t.Value, 10)
		if !ok {
			return kernel.Value{}, false
		}
		return kernel.FromRational(kernel.FromBigInt(n)), true
	case token.NativeIrrationalNumber:
		return kernel.NativeMultiple(kernel.One(), t.Value), true
	}
	return kernel.Value{}, false
}

// collapse rewrites the node at ref in place to stand for value: the
// plain-rational shape collapseRational already produced, or a
// coefficient scaling a freshly built π/√radicand unit node.
func (e *Evaluator) collapse(ref ast.Ref, value kernel.Value) {
	if r, ok := value.Rational(); ok {
		e.collapseRational(ref, r)
		return
	}

	var unitRef ast.Ref
	switch value.Symbol {
	case "√":
		radRef := e.arena.Add(ast.Node{Kind: ast.Literal, Tokens: []token.Token{token.New(token.Integer, value.Radicand.Num.String(), token.Range{})}})
		unitRef = e.arena.Add(ast.Node{Kind: ast.Unary, Tokens: []token.Token{token.New(token.Operator, "√", token.Range{})}, UnaryPos: ast.Prefix, Children: []ast.Ref{radRef}})
		e.arena.Reparent(radRef, unitRef)
	default:
		unitRef = e.arena.Add(ast.Node{Kind: ast.Literal, Tokens: []token.Token{token.New(token.NativeIrrationalNumber, value.Symbol, token.Range{})}})
	}

	root := e.scaleUnit(value.Coeff, unitRef)
	e.adopt(ref, root)
}

// scaleUnit builds coeff*unitRef as "num*unit/den", wrapped in a prefix
// '-' when coeff is negative, dropping the '*'/'/' legs coeff's
// numerator/denominator don't need. Returns the resulting tree's root.
func (e *Evaluator) scaleUnit(coeff kernel.Rational, unitRef ast.Ref) ast.Ref {
	neg := coeff.Sign() < 0
	mag := coeff.Abs()

	inner := unitRef
	if mag.Num.Cmp(big.NewInt(1)) != 0 {
		numRef := e.arena.Add(ast.Node{Kind: ast.Literal, Tokens: []token.Token{token.New(token.Integer, mag.Num.String(), token.Range{})}})
		mulRef := e.arena.Add(ast.Node{Kind: ast.Binary, Tokens: []token.Token{token.New(token.Operator, "*", token.Range{})}, Children: []ast.Ref{numRef, inner}})
		e.arena.Reparent(numRef, mulRef)
		e.arena.Reparent(inner, mulRef)
		inner = mulRef
	}
	if mag.Den.Cmp(big.NewInt(1)) != 0 {
		denRef := e.arena.Add(ast.Node{Kind: ast.Literal, Tokens: []token.Token{token.New(token.Integer, mag.Den.String(), token.Range{})}})
		divRef := e.arena.Add(ast.Node{Kind: ast.Binary, Tokens: []token.Token{token.New(token.Operator, "/", token.Range{})}, Children: []ast.Ref{inner, denRef}})
		e.arena.Reparent(inner, divRef)
		e.arena.Reparent(denRef, divRef)
		inner = divRef
	}
	if neg {
		negRef := e.arena.Add(ast.Node{Kind: ast.Unary, Tokens: []token.Token{token.New(token.Operator, "-", token.Range{})}, UnaryPos: ast.Prefix, Children: []ast.Ref{inner}})
		e.arena.Reparent(inner, negRef)
		inner = negRef
	}
	return inner
}

// adopt copies from's node shape into ref, reparenting from's children to
// ref so the arena stays internally consistent. Used once collapse has
// built a standalone replacement subtree at some fresh Ref and needs it
// to live at the original ref the rest of the tree still points to.
func (e *Evaluator) adopt(ref, from ast.Ref) {
	src := *e.arena.Get(from)
	node := e.arena.Get(ref)
	node.Kind = src.Kind
	node.Tokens = src.Tokens
	node.UnaryPos = src.UnaryPos
	node.Children = src.Children
	for _, c := range src.Children {
		e.arena.Reparent(c, ref)
	}
}

// collapseRational rewrites the node at ref in place to stand for value:
// a bare Literal Integer when value is whole, otherwise a parenthesized
// "(num / den)" group — the same shape the lexer's fractionalization pass
// produces — wrapped in a prefix '-' when negative.
func (e *Evaluator) collapseRational(ref ast.Ref, value kernel.Rational) {
	node := e.arena.Get(ref)
	if value.IsInteger() {
		node.Kind = ast.Literal
		node.Tokens = []token.Token{token.New(token.Integer, value.Num.String(), token.Range{})}
		node.Children = nil
		return
	}

	neg := value.Sign() < 0
	num := new(big.Int).Abs(value.Num)

	numRef := e.arena.Add(ast.Node{Kind: ast.Literal, Tokens: []token.Token{token.New(token.Integer, num.String(), token.Range{})}, Parent: ref})
	denRef := e.arena.Add(ast.Node{Kind: ast.Literal, Tokens: []token.Token{token.New(token.Integer, value.Den.String(), token.Range{})}, Parent: ref})
	divRef := e.arena.Add(ast.Node{Kind: ast.Binary, Tokens: []token.Token{token.New(token.Operator, "/", token.Range{})}, Children: []ast.Ref{numRef, denRef}, Parent: ref})

	inner := divRef
	if neg {
		negRef := e.arena.Add(ast.Node{Kind: ast.Unary, Tokens: []token.Token{token.New(token.Operator, "-", token.Range{})}, UnaryPos: ast.Prefix, Children: []ast.Ref{divRef}, Parent: ref})
		e.arena.Reparent(divRef, negRef)
		inner = negRef
	}

	node.Kind = ast.Group
	node.Tokens = []token.Token{token.New(token.LeftBracket, "(", token.Range{}), token.New(token.RightBracket, ")", token.Range{})}
	node.Children = []ast.Ref{inner}
	e.arena.Reparent(inner, ref)
}

// sqrtValue computes √a exactly: a plain Rational when a is a perfect
// square, a √a-shaped Value when a is a positive non-square rational, or
// ok=false (stays symbolic) when a is negative — oloc has no complex
// carrier.
func sqrtValue(a kernel.Rational) (kernel.Value, bool, error) {
	half, _ := kernel.New(big.NewInt(1), big.NewInt(2))
	r, ok, err := kernel.Pow(a, half)
	if err != nil {
		return kernel.Value{}, false, err
	}
	if ok {
		return kernel.FromRational(r), true, nil
	}
	if a.Sign() > 0 {
		return kernel.SqrtMultiple(kernel.One(), a), true, nil
	}
	return kernel.Value{}, false, nil
}

// applyBinary dispatches a Binary node's operator to the kernel. ok is
// false when the operator has no exact result for these operands (an
// irrational combination with no shared unit, or an un-simplified power)
// and the node should be left standing.
func (e *Evaluator) applyBinary(op token.Token, a, b kernel.Value) (kernel.Value, bool, error) {
	switch op.Value {
	case "+":
		v, ok := kernel.AddValue(a, b)
		return v, ok, nil
	case "-":
		v, ok := kernel.AddValue(a, b.Neg())
		return v, ok, nil
	case "*":
		v, ok := kernel.MulValue(a, b)
		return v, ok, nil
	case "/":
		if b.IsZero() {
			return kernel.Value{}, false, e.errAt(calcerr.DIVIDE_BY_ZERO, op.Range.Lo, a.String())
		}
		v, ok, err := kernel.DivValue(a, b)
		if err != nil {
			return kernel.Value{}, false, e.errAt(calcerr.DIVIDE_BY_ZERO, op.Range.Lo, a.String())
		}
		return v, ok, nil
	case "^":
		ar, aok := a.Rational()
		br, bok := b.Rational()
		if !aok || !bok {
			return kernel.Value{}, false, nil
		}
		r, ok, err := kernel.Pow(ar, br)
		if err != nil {
			return kernel.Value{}, false, e.powError(op, err)
		}
		return kernel.FromRational(r), ok, nil
	case "%":
		return e.modulo(op, a, b)
	}
	return kernel.Value{}, false, e.errAt(calcerr.UNSUPPORTED_OPERATOR, op.Range.Lo, op.Value)
}

func (e *Evaluator) powError(op token.Token, err error) error {
	msg := err.Error()
	if msg == "kernel: 0^0 is undefined" {
		return e.errAt(calcerr.ZERO_TO_THE_POWER_OF_ZERO, op.Range.Lo, "")
	}
	return e.errAt(calcerr.DIVIDE_BY_ZERO, op.Range.Lo, "")
}

func (e *Evaluator) modulo(op token.Token, a, b kernel.Value) (kernel.Value, bool, error) {
	ar, aok := a.Rational()
	br, bok := b.Rational()
	if !aok || !bok || !ar.IsInteger() || !br.IsInteger() {
		return kernel.Value{}, false, nil
	}
	if br.IsZero() {
		return kernel.Value{}, false, e.errAt(calcerr.DIVIDE_BY_ZERO, op.Range.Lo, ar.String())
	}
	m := new(big.Int).Mod(ar.Num, new(big.Int).Abs(br.Num))
	return kernel.FromRational(kernel.FromBigInt(m)), true, nil
}

// applyUnary dispatches a Unary node's operator/position combination.
func (e *Evaluator) applyUnary(op token.Token, pos ast.UnaryPosition, a kernel.Value) (kernel.Value, bool, error) {
	switch {
	case op.Value == "+" && pos == ast.Prefix:
		return a, true, nil
	case op.Value == "-" && pos == ast.Prefix:
		return a.Neg(), true, nil
	case op.Value == "√" && pos == ast.Prefix:
		ar, ok := a.Rational()
		if !ok {
			return kernel.Value{}, false, nil
		}
		r, ok, err := sqrtValue(ar)
		if err != nil {
			return kernel.Value{}, false, e.errAt(calcerr.DOMAIN_ERROR, op.Range.Lo, ar.String())
		}
		return r, ok, nil
	case op.Value == "!" && pos == ast.Postfix:
		ar, ok := a.Rational()
		if !ok {
			return kernel.Value{}, false, nil
		}
		if !ar.IsInteger() || ar.Sign() < 0 {
			return kernel.Value{}, false, e.errAt(calcerr.DOMAIN_ERROR, op.Range.Lo, ar.String())
		}
		f, err := kernel.Factorial(ar.Num)
		if err != nil {
			return kernel.Value{}, false, e.errAt(calcerr.DOMAIN_ERROR, op.Range.Lo, ar.String())
		}
		return kernel.FromRational(kernel.FromBigInt(f)), true, nil
	case op.Value == "°" && pos == ast.Postfix:
		// d° = d·π/180, always exact for a rational degree count — this
		// never itself raises a calculation error, mirroring
		// oloc_evaluator.py's degrees_to_radians.
		d, ok := a.Rational()
		if !ok {
			return kernel.Value{}, false, nil
		}
		coeff, _ := kernel.Div(d, kernel.Int(180))
		return kernel.PiMultiple(coeff), true, nil
	case op.Value == "|" && pos == ast.Enclosing:
		return a.Abs(), true, nil
	}
	return kernel.Value{}, false, e.errAt(calcerr.UNSUPPORTED_OPERATOR, op.Range.Lo, op.Value)
}

// applyFunction dispatches a Call node's canonical function name. Kernel
// operations (sqrt, sq, cub, rec, pow, mod, fact, sign, gcd, lcm) only
// resolve on plain-rational arguments; abs also accepts a π/√ symbolic
// Value and keeps its unit; the transcendentals (sin, cos,
// tan, cot, their inverses, exp, log, ln, lg, rad) resolve through the
// exact-identity tables in identities.go, which can both accept and
// produce a π/√ symbolic Value, and otherwise leave the call symbolic.
func (e *Evaluator) applyFunction(name token.Token, args []kernel.Value) (kernel.Value, bool, error) {
	switch name.Value {
	case "sqrt":
		ar, ok := args[0].Rational()
		if !ok {
			return kernel.Value{}, false, nil
		}
		v, ok, err := sqrtValue(ar)
		if err != nil {
			return kernel.Value{}, false, e.errAt(calcerr.DOMAIN_ERROR, name.Range.Lo, ar.String())
		}
		return v, ok, nil
	case "sq":
		ar, ok := args[0].Rational()
		if !ok {
			return kernel.Value{}, false, nil
		}
		return kernel.FromRational(kernel.Mul(ar, ar)), true, nil
	case "cub":
		ar, ok := args[0].Rational()
		if !ok {
			return kernel.Value{}, false, nil
		}
		return kernel.FromRational(kernel.Mul(kernel.Mul(ar, ar), ar)), true, nil
	case "rec":
		ar, ok := args[0].Rational()
		if !ok {
			return kernel.Value{}, false, nil
		}
		if ar.IsZero() {
			return kernel.Value{}, false, e.errAt(calcerr.DIVIDE_BY_ZERO, name.Range.Lo, "")
		}
		r, _ := kernel.Div(kernel.One(), ar)
		return kernel.FromRational(r), true, nil
	case "pow":
		ar, aok := args[0].Rational()
		br, bok := args[1].Rational()
		if !aok || !bok {
			return kernel.Value{}, false, nil
		}
		r, ok, err := kernel.Pow(ar, br)
		if err != nil {
			return kernel.Value{}, false, e.powError(name, err)
		}
		return kernel.FromRational(r), ok, nil
	case "mod":
		return e.modulo(name, args[0], args[1])
	case "fact":
		return e.applyUnary(token.Token{Value: "!"}, ast.Postfix, args[0])
	case "abs":
		return args[0].Abs(), true, nil
	case "sign":
		ar, ok := args[0].Rational()
		if !ok {
			return kernel.Value{}, false, nil
		}
		return kernel.FromRational(kernel.Int(int64(ar.Sign()))), true, nil
	case "gcd":
		ar, aok := args[0].Rational()
		br, bok := args[1].Rational()
		if !aok || !bok || !ar.IsInteger() || !br.IsInteger() {
			return kernel.Value{}, false, nil
		}
		return kernel.FromRational(kernel.FromBigInt(kernel.GCD(ar.Num, br.Num))), true, nil
	case "lcm":
		ar, aok := args[0].Rational()
		br, bok := args[1].Rational()
		if !aok || !bok || !ar.IsInteger() || !br.IsInteger() {
			return kernel.Value{}, false, nil
		}
		return kernel.FromRational(kernel.FromBigInt(kernel.LCM(ar.Num, br.Num))), true, nil
	case "sin", "cos", "tan", "cot", "asin", "acos", "atan", "acot", "exp", "ln", "lg", "log", "rad":
		result, ok, domainErr := lookupIdentity(name.Value, args)
		if domainErr {
			return kernel.Value{}, false, e.errAt(calcerr.DOMAIN_ERROR, name.Range.Lo, name.Value)
		}
		return result, ok, nil
	}
	return kernel.Value{}, false, e.errAt(calcerr.UNSUPPORTED_FUNCTION, name.Range.Lo, name.Value)
}
