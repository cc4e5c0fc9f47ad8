package lexer

import (
	"unicode"

	"github.com/oloc-go/oloc/internal/calcerr"
	"github.com/oloc-go/oloc/internal/config"
	"github.com/oloc-go/oloc/internal/token"
)

// span marks a half-open rune range [lo, hi) of source as belonging to one
// token.Kind, found by one of the priority-ordered scans below.
type span struct {
	lo, hi int
	kind   token.Kind
}

// markRegions runs the priority scans that must see the raw rune stream
// before plain character-by-character classification can run:
// long-custom-irrational regions (which may contain digits and '.' that
// would otherwise confuse the number scanner), irrational-param suffixes,
// function names (which may contain letters that would otherwise become
// short-custom irrationals), and finally numeric literals. Scans never overlap; each only
// considers positions no earlier scan has already claimed.
func markRegions(source string, tables config.Tables) ([]span, error) {
	runes := []rune(source)
	taken := make([]bool, len(runes))
	var spans []span

	longSpans, err := scanLongCustom(runes, taken)
	if err != nil {
		return nil, err
	}
	spans = append(spans, longSpans...)

	spans = append(spans, scanIrrationalParams(runes, taken)...)
	spans = append(spans, scanFunctionNames(runes, taken, tables)...)
	spans = append(spans, scanNumbers(runes, taken)...)

	return spans, nil
}

func markTaken(taken []bool, lo, hi int) {
	for i := lo; i < hi; i++ {
		taken[i] = true
	}
}

// scanLongCustom finds every <...> region. An unmatched '<' is an
// IRRATIONAL_BRACKET_MISMATCH pointing at the offending bracket.
func scanLongCustom(runes []rune, taken []bool) ([]span, error) {
	var spans []span
	i := 0
	for i < len(runes) {
		if runes[i] != '<' {
			i++
			continue
		}
		j := i + 1
		for j < len(runes) && runes[j] != '>' && runes[j] != '<' {
			j++
		}
		if j >= len(runes) || runes[j] == '<' {
			return nil, calcerr.New(calcerr.IRRATIONAL_BRACKET_MISMATCH, string(runes), []int{i})
		}
		spans = append(spans, span{i, j + 1, token.LongCustomIrrational})
		markTaken(taken, i, j+1)
		i = j + 1
	}
	return spans, nil
}

// scanIrrationalParams finds every maximal sign?-digits-('.'digits)?-'?'
// suffix not already claimed by a long-custom region.
func scanIrrationalParams(runes []rune, taken []bool) []span {
	var spans []span
	i := 0
	for i < len(runes) {
		if taken[i] {
			i++
			continue
		}
		start := i
		j := i
		if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
			j++
		}
		digitsStart := j
		for j < len(runes) && unicode.IsDigit(runes[j]) {
			j++
		}
		if j == digitsStart {
			i++
			continue
		}
		if j < len(runes) && runes[j] == '.' {
			k := j + 1
			for k < len(runes) && unicode.IsDigit(runes[k]) {
				k++
			}
			if k > j+1 {
				j = k
			}
		}
		if j < len(runes) && runes[j] == '?' {
			spans = append(spans, span{start, j + 1, token.IrrationalParam})
			markTaken(taken, start, j+1)
			i = j + 1
			continue
		}
		i++
	}
	return spans
}

// scanFunctionNames finds every recognized function-name spelling (longest
// match wins at each position) not already claimed by a prior scan.
func scanFunctionNames(runes []rune, taken []bool, tables config.Tables) []span {
	names := tables.FunctionNames()
	var spans []span
	i := 0
	for i < len(runes) {
		if taken[i] {
			i++
			continue
		}
		best := 0
		for _, name := range names {
			nr := []rune(name)
			if len(nr) > best && matchesAt(runes, i, nr) {
				best = len(nr)
			}
		}
		if best > 0 {
			spans = append(spans, span{i, i + best, token.Function})
			markTaken(taken, i, i+best)
			i += best
			continue
		}
		i++
	}
	return spans
}

func matchesAt(runes []rune, pos int, pattern []rune) bool {
	if pos+len(pattern) > len(runes) {
		return false
	}
	for k, r := range pattern {
		if runes[pos+k] != r {
			return false
		}
	}
	return true
}

// scanNumbers finds every numeric literal: an integer, finite decimal,
// infinite recurring decimal (ellipsis or colon form), or percentage,
// structurally — never by trial-and-error against token.New's self-check.
func scanNumbers(runes []rune, taken []bool) []span {
	var spans []span
	i := 0
	for i < len(runes) {
		if taken[i] || !unicode.IsDigit(runes[i]) {
			i++
			continue
		}
		start := i
		kind := token.Integer
		j := i
		for j < len(runes) && unicode.IsDigit(runes[j]) {
			j++
		}
		if j < len(runes) && runes[j] == '.' {
			k := j + 1
			for k < len(runes) && unicode.IsDigit(runes[k]) {
				k++
			}
			if k > j+1 {
				kind = token.FiniteDecimal
				j = k
				switch {
				case j < len(runes) && runes[j] == '.':
					dotsStart := j
					for j < len(runes) && runes[j] == '.' {
						j++
					}
					if n := j - dotsStart; n >= 3 && n <= 6 {
						kind = token.InfiniteRecurringDecimal
					} else {
						j = dotsStart
					}
				case j < len(runes) && runes[j] == ':':
					m := j + 1
					for m < len(runes) && unicode.IsDigit(runes[m]) {
						m++
					}
					if m > j+1 {
						kind = token.InfiniteRecurringDecimal
						j = m
					}
				}
			}
		}
		if j < len(runes) && runes[j] == '%' && !(j+1 < len(runes) && unicode.IsDigit(runes[j+1])) {
			kind = token.Percentage
			j++
		}
		markTaken(taken, start, j)
		spans = append(spans, span{start, j, kind})
		i = j
	}
	return spans
}
