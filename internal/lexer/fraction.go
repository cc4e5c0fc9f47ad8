package lexer

import (
	"math/big"
	"strings"

	"github.com/oloc-go/oloc/internal/kernel"
	"github.com/oloc-go/oloc/internal/token"
)

// fractionalize rewrites every FiniteDecimal, Percentage and
// InfiniteRecurringDecimal token into its exact kernel.Rational form: a
// bare Integer token if the value reduces to a whole number, otherwise a
// parenthesized "(num / den)" group of five tokens so the grammar needs no
// special rational-literal production.
func fractionalize(toks []token.Token) ([]token.Token, error) {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		switch t.Kind {
		case token.FiniteDecimal, token.Percentage, token.InfiniteRecurringDecimal:
			r, err := rationalOf(t)
			if err != nil {
				return nil, err
			}
			out = append(out, renderRational(r, t.Range)...)
		default:
			out = append(out, t)
		}
	}
	return out, nil
}

// renderRational expands r into the token sequence standing in for the
// original numeric literal at rng.
func renderRational(r kernel.Rational, rng token.Range) []token.Token {
	if r.IsInteger() {
		return []token.Token{token.New(token.Integer, r.Num.String(), rng)}
	}
	num := new(big.Int).Abs(r.Num)
	neg := r.Num.Sign() < 0
	group := []token.Token{
		token.New(token.LeftBracket, "(", rng),
	}
	if neg {
		group = append(group, token.New(token.Operator, "-", rng))
	}
	group = append(group,
		token.New(token.Integer, num.String(), rng),
		token.New(token.Operator, "/", rng),
		token.New(token.Integer, r.Den.String(), rng),
		token.New(token.RightBracket, ")", rng),
	)
	return group
}

// rationalOf computes the exact kernel.Rational a rational-numeric token
// denotes, converting decimal, percentage, and recurring-decimal literals
// to fractions.
func rationalOf(t token.Token) (kernel.Rational, error) {
	switch t.Kind {
	case token.Percentage:
		body := strings.TrimSuffix(t.Value, "%")
		inner, err := rationalOfDecimalOrInteger(body)
		if err != nil {
			return kernel.Rational{}, err
		}
		return kernel.Div(inner, kernel.Int(100))
	case token.FiniteDecimal:
		return rationalOfDecimalOrInteger(t.Value)
	case token.InfiniteRecurringDecimal:
		return rationalOfRecurring(t.Value)
	}
	return kernel.Rational{}, nil
}

func rationalOfDecimalOrInteger(v string) (kernel.Rational, error) {
	if !strings.Contains(v, ".") {
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return kernel.Rational{}, nil
		}
		return kernel.FromBigInt(n), nil
	}
	parts := strings.SplitN(v, ".", 2)
	intPart, decPart := parts[0], parts[1]
	num, _ := new(big.Int).SetString(intPart+decPart, 10)
	den := pow10(len(decPart))
	return kernel.New(num, den)
}

// rationalOfRecurring converts either surface form of an infinite
// recurring decimal into an exact fraction. The ellipsis form
// "intPart.decPart..." treats the final digit of decPart as the (length-1)
// repetend; the colon form "intPart.nonRepeating:repeating" names both
// parts explicitly.
func rationalOfRecurring(v string) (kernel.Rational, error) {
	var intPart, nonRepeating, repeating string
	if strings.Contains(v, ":") {
		decimalPart, repeatPart, _ := strings.Cut(v, ":")
		ip, dp, _ := strings.Cut(decimalPart, ".")
		intPart, nonRepeating, repeating = ip, dp, repeatPart
	} else {
		trimmed := strings.TrimRight(v, ".")
		ip, dp, _ := strings.Cut(trimmed, ".")
		intPart = ip
		if len(dp) == 0 {
			nonRepeating, repeating = "", ""
		} else {
			nonRepeating, repeating = dp[:len(dp)-1], dp[len(dp)-1:]
		}
	}

	k := int64(len(nonRepeating))
	r := int64(len(repeating))

	concatStr := nonRepeating + repeating
	var concat *big.Int
	if concatStr == "" {
		concat = big.NewInt(0)
	} else {
		concat, _ = new(big.Int).SetString(concatStr, 10)
	}
	var nonRepeatingVal *big.Int
	if nonRepeating == "" {
		nonRepeatingVal = big.NewInt(0)
	} else {
		nonRepeatingVal, _ = new(big.Int).SetString(nonRepeating, 10)
	}

	numerator := new(big.Int).Sub(concat, nonRepeatingVal)
	nines := new(big.Int).Sub(pow10(int(r)), big.NewInt(1))
	denominator := new(big.Int).Mul(pow10(int(k)), nines)

	intVal := big.NewInt(0)
	if intPart != "" {
		intVal, _ = new(big.Int).SetString(intPart, 10)
	}
	total := new(big.Int).Mul(intVal, denominator)
	total.Add(total, numerator)

	return kernel.New(total, denominator)
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
