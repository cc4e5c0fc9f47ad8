package lexer

import (
	"sort"
	"unicode"

	"github.com/oloc-go/oloc/internal/calcerr"
	"github.com/oloc-go/oloc/internal/token"
)

// invalidKind maps a token.Kind to the Value-family calcerr.Kind raised
// when a token of that kind fails its own legality self-check.
var invalidKind = map[token.Kind]calcerr.Kind{
	token.Integer:                  calcerr.INVALID_INTEGER,
	token.FiniteDecimal:            calcerr.INVALID_FINITE_DECIMAL,
	token.InfiniteRecurringDecimal: calcerr.INVALID_INFINITE_DECIMAL,
	token.Percentage:               calcerr.INVALID_PERCENTAGE,
	token.NativeIrrationalNumber:   calcerr.INVALID_NATIVE_IRRATIONAL,
	token.ShortCustomIrrational:    calcerr.INVALID_SHORT_CUSTOM_IRRATIONAL,
	token.LongCustomIrrational:     calcerr.INVALID_LONG_CUSTOM_IRRATIONAL,
	token.IrrationalParam:          calcerr.INVALID_IRRATIONAL_PARAM,
}

var operatorRunes = map[rune]bool{
	'+': true, '-': true, '*': true, '/': true, '^': true,
	'%': true, '!': true, '|': true, '√': true, '°': true,
}

// classify merges the priority-scan spans with a final character-by-
// character pass over every rune markRegions left unclaimed, then builds
// the ordered token stream and validates every token's own self-check.
func classify(source string, marked []span) ([]token.Token, error) {
	runes := []rune(source)
	sort.Slice(marked, func(i, j int) bool { return marked[i].lo < marked[j].lo })

	taken := make([]bool, len(runes))
	for _, sp := range marked {
		markTaken(taken, sp.lo, sp.hi)
	}

	all := append([]span(nil), marked...)
	i := 0
	for i < len(runes) {
		if taken[i] {
			i++
			continue
		}
		all = append(all, classifyRune(runes, i))
		i++
	}
	sort.Slice(all, func(i, j int) bool { return all[i].lo < all[j].lo })

	toks := make([]token.Token, 0, len(all))
	for _, sp := range all {
		value := string(runes[sp.lo:sp.hi])
		t := token.New(sp.kind, value, token.Range{Lo: sp.lo, Hi: sp.hi})
		if !t.IsValid {
			kind, ok := invalidKind[sp.kind]
			if !ok {
				kind = calcerr.UNKNOWN_TOKEN
			}
			return nil, calcerr.New(kind, source, []int{sp.lo}).WithInfo(value, "")
		}
		toks = append(toks, t)
	}
	return toks, nil
}

// classifyRune classifies one unclaimed rune: brackets, separators,
// operators, the two native irrationals, or a lone letter as a
// short-custom irrational. Anything else is UNKNOWN_TOKEN.
func classifyRune(runes []rune, i int) span {
	r := runes[i]
	switch r {
	case '(', '[', '{':
		return span{i, i + 1, token.LeftBracket}
	case ')', ']', '}':
		return span{i, i + 1, token.RightBracket}
	case ',', ';':
		return span{i, i + 1, token.ParameterSeparator}
	case 'π', '𝑒':
		return span{i, i + 1, token.NativeIrrationalNumber}
	}
	if operatorRunes[r] {
		return span{i, i + 1, token.Operator}
	}
	if unicode.IsLetter(r) {
		return span{i, i + 1, token.ShortCustomIrrational}
	}
	return span{i, i + 1, token.Unknown}
}
