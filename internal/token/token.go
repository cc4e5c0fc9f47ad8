// Package token defines the lexical atoms shared by every stage of the oloc
// pipeline: the preprocessor, lexer, parser and evaluator all read and
// rewrite []Token rather than raw strings once tokenization has happened.
package token

import "fmt"

// Kind is the closed set of token categories an expression can decompose
// into. It is a tagged variant: every stage switches on Kind rather than
// testing concrete types.
type Kind int

const (
	// Unknown marks a character the lexer could not classify.
	Unknown Kind = iota

	// Rational numerics. These four kinds only exist before the lexer's
	// fractionalization pass; afterwards every numeric leaf is an Integer,
	// or a reduced Integer '/' Integer triple.
	Integer
	FiniteDecimal
	InfiniteRecurringDecimal
	Percentage

	// Irrational carriers.
	NativeIrrationalNumber
	ShortCustomIrrational
	LongCustomIrrational

	// IrrationalParam is a trailing '?'-terminated numeric tag attached to
	// an irrational carrier. The core pipeline carries it through
	// unevaluated; only the (out of scope) conversion layer consumes it.
	IrrationalParam

	Operator
	LeftBracket
	RightBracket
	Function
	ParameterSeparator
)

var kindNames = [...]string{
	Unknown:                  "Unknown",
	Integer:                  "Integer",
	FiniteDecimal:            "FiniteDecimal",
	InfiniteRecurringDecimal: "InfiniteRecurringDecimal",
	Percentage:               "Percentage",
	NativeIrrationalNumber:   "NativeIrrationalNumber",
	ShortCustomIrrational:    "ShortCustomIrrational",
	LongCustomIrrational:     "LongCustomIrrational",
	IrrationalParam:          "IrrationalParam",
	Operator:                 "Operator",
	LeftBracket:              "LeftBracket",
	RightBracket:             "RightBracket",
	Function:                 "Function",
	ParameterSeparator:       "ParameterSeparator",
}

// String implements fmt.Stringer so Kind prints its canonical spec name
// rather than a bare integer in error messages and token-flow dumps.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Range is a half-open source span [Lo, Hi) into the expression string as
// visible to the stage that produced it. Tokens that a lexer rewrite
// synthesizes get no span of their own: every token of a fractionalized
// literal keeps that literal's range, and an implicit '*' gets an empty
// range at the start of the token it precedes.
type Range struct {
	Lo, Hi int
}

// Len reports the number of runes the range covers.
func (r Range) Len() int { return r.Hi - r.Lo }

// Token is a value object: the atomic unit threaded through every stage.
type Token struct {
	Kind    Kind
	Value   string
	Range   Range
	IsValid bool
}

// New constructs a token and immediately runs its kind-specific legality
// check, so every token self-validates at construction time.
func New(kind Kind, value string, rng Range) Token {
	t := Token{Kind: kind, Value: value, Range: rng}
	t.IsValid = t.checkLegal()
	return t
}

// Recheck re-validates a token after its Value or Kind has been mutated by a
// rewrite pass (e.g. bracket harmonization, aliasing).
func (t *Token) Recheck() {
	t.IsValid = t.checkLegal()
}

// IsBracket reports whether the token is either bracket kind.
func (t Token) IsBracket() bool {
	return t.Kind == LeftBracket || t.Kind == RightBracket
}

// IsNumber reports whether the token is any rational or irrational numeric
// leaf kind.
func (t Token) IsNumber() bool {
	switch t.Kind {
	case Integer, FiniteDecimal, InfiniteRecurringDecimal, Percentage,
		NativeIrrationalNumber, ShortCustomIrrational, LongCustomIrrational:
		return true
	}
	return false
}

// IsRational reports whether the token is one of the four rational-numeric
// kinds (before fractionalization).
func (t Token) IsRational() bool {
	switch t.Kind {
	case Integer, FiniteDecimal, InfiniteRecurringDecimal, Percentage:
		return true
	}
	return false
}

// IsIrrational reports whether the token is a native, short-custom or
// long-custom irrational carrier.
func (t Token) IsIrrational() bool {
	switch t.Kind {
	case NativeIrrationalNumber, ShortCustomIrrational, LongCustomIrrational:
		return true
	}
	return false
}

// IsValidInStaticCheck reports whether the token's kind may legally appear
// in the token stream the parser's static pre-check walks: every kind
// except the already-eliminated rational-numeric sub-kinds (which the
// lexer's fractionalization pass removes) and Unknown.
func (t Token) IsValidInStaticCheck() bool {
	switch t.Kind {
	case Integer, Operator, RightBracket, LeftBracket, LongCustomIrrational,
		ShortCustomIrrational, NativeIrrationalNumber, IrrationalParam,
		Function, ParameterSeparator:
		return true
	}
	return false
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, [%d,%d))", t.Kind, t.Value, t.Range.Lo, t.Range.Hi)
}
