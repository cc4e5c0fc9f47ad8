// Package preprocessor implements comment stripping, Unicode superscript
// normalization, symbol/function aliasing, trailing '=' elimination, and
// formal elimination (sign-run collapsing and digit separator validation)
// — all performed on the raw expression string before it is ever tokenized.
package preprocessor

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/oloc-go/oloc/internal/calcerr"
	"github.com/oloc-go/oloc/internal/config"
)

// Option configures a Preprocessor at construction time, following the
// teacher's functional-options idiom (lexer.LexerOption in go-dws).
type Option func(*Preprocessor)

// WithTables overrides the default alias tables.
func WithTables(t config.Tables) Option {
	return func(p *Preprocessor) { p.tables = t }
}

// Preprocessor holds the state of one preprocessing run.
type Preprocessor struct {
	original string
	tables   config.Tables

	Expression string
	Elapsed    time.Duration
}

// New constructs a Preprocessor over expr.
func New(expr string, opts ...Option) *Preprocessor {
	p := &Preprocessor{original: expr, tables: config.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Execute runs every preprocessing step in order and records elapsed time.
func (p *Preprocessor) Execute() error {
	start := time.Now()
	defer func() { p.Elapsed = time.Since(start) }()

	s := p.original

	s, err := stripComments(s)
	if err != nil {
		return err
	}

	s = normalizeSuperscripts(s)

	s = aliasSymbols(s, p.tables)
	s = aliasFunctions(s, p.tables)

	s, err = eliminateEquals(s)
	if err != nil {
		return err
	}

	s, err = formalElimination(s)
	if err != nil {
		return err
	}

	p.Expression = s
	return nil
}

func (p *Preprocessor) String() string {
	return p.Expression
}

// stripComments removes a trailing '@'-introduced comment and any number of
// matched '#'...'#' free comments. An odd number of '#' is a
// COMMENT_MISMATCH pointing at the last one.
func stripComments(s string) (string, error) {
	if idx := strings.IndexByte(s, '@'); idx >= 0 {
		s = s[:idx]
	}

	count := strings.Count(s, "#")
	if count%2 != 0 {
		last := strings.LastIndexByte(s, '#')
		return "", calcerr.New(calcerr.COMMENT_MISMATCH, s, []int{last})
	}

	var b strings.Builder
	inComment := false
	for _, r := range s {
		if r == '#' {
			inComment = !inComment
			continue
		}
		if !inComment {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// superscriptDigits maps Unicode superscript digit runes to their ordinary
// digit, ⁰…⁹.
var superscriptDigits = map[rune]byte{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
}

// normalizeSuperscripts rewrites every maximal run of superscript digits as
// '^' followed by ordinary digits. A run immediately following another
// superscript run (already converted) does not re-emit '^'.
func normalizeSuperscripts(s string) string {
	var b strings.Builder
	runes := []rune(s)
	i := 0
	prevWasSuperscript := false
	for i < len(runes) {
		if digit, ok := superscriptDigits[runes[i]]; ok {
			if !prevWasSuperscript {
				b.WriteByte('^')
			}
			b.WriteByte(digit)
			prevWasSuperscript = true
			i++
			continue
		}
		b.WriteRune(runes[i])
		prevWasSuperscript = false
		i++
	}
	return b.String()
}

// longCustomSpans returns the half-open rune-index spans of every <...>
// region in s, used to protect long-custom-irrational bodies from symbol
// and function aliasing. Strict bracket-balance validation is the lexer's
// job; here an unmatched '<' simply protects to the end of the string.
func longCustomSpans(s string) [][2]int {
	runes := []rune(s)
	var spans [][2]int
	i := 0
	for i < len(runes) {
		if runes[i] == '<' {
			j := i + 1
			for j < len(runes) && runes[j] != '>' {
				j++
			}
			if j < len(runes) {
				spans = append(spans, [2]int{i, j + 1})
				i = j + 1
				continue
			}
			spans = append(spans, [2]int{i, len(runes)})
			break
		}
		i++
	}
	return spans
}

func inSpan(spans [][2]int, pos int) bool {
	for _, sp := range spans {
		if pos >= sp[0] && pos < sp[1] {
			return true
		}
	}
	return false
}

// functionSpans returns the spans covered by any recognized function-name
// spelling (canonical or alias), longest match first at each position,
// outside of long-custom regions, so function names are never mangled by
// symbol aliasing.
func functionSpans(runes []rune, tables config.Tables, protected [][2]int) [][2]int {
	names := tables.FunctionNames()
	var spans [][2]int
	i := 0
	for i < len(runes) {
		if inSpan(protected, i) {
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
			spans = append(spans, [2]int{i, i + best})
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

// aliasSymbols performs a longest-alias-match, table-declared-order,
// left-to-right rewrite, skipping long-custom regions and function-name
// spans.
func aliasSymbols(s string, tables config.Tables) string {
	runes := []rune(s)
	protected := longCustomSpans(s)
	fnSpans := functionSpans(runes, tables, protected)

	var b strings.Builder
	i := 0
	for i < len(runes) {
		if inSpan(protected, i) || inSpan(fnSpans, i) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		canonical, length, ok := matchLongestAlias(runes, i, tables.Symbols)
		if ok {
			b.WriteString(canonical)
			i += length
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

// aliasFunctions performs the same rewrite against the function-alias
// table; long-custom regions stay protected, but function-name spans are
// exactly what gets rewritten here.
func aliasFunctions(s string, tables config.Tables) string {
	runes := []rune(s)
	protected := longCustomSpans(s)

	var entries []config.SymbolAlias
	for _, f := range tables.Functions {
		entries = append(entries, config.SymbolAlias{Canonical: f.Canonical, Aliases: f.Aliases})
	}

	var b strings.Builder
	i := 0
	for i < len(runes) {
		if inSpan(protected, i) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		canonical, length, ok := matchLongestAlias(runes, i, entries)
		if ok {
			b.WriteString(canonical)
			i += length
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

// matchLongestAlias finds, among every alias of every table entry, the
// longest one matching runes at pos, and returns its canonical replacement.
func matchLongestAlias(runes []rune, pos int, entries []config.SymbolAlias) (canonical string, length int, ok bool) {
	bestLen := 0
	var bestCanonical string
	for _, entry := range entries {
		for _, alias := range entry.Aliases {
			ar := []rune(alias)
			if len(ar) == 0 || len(ar) <= bestLen {
				continue
			}
			if matchesAt(runes, pos, ar) {
				bestLen = len(ar)
				bestCanonical = entry.Canonical
			}
		}
	}
	if bestLen == 0 {
		return "", 0, false
	}
	return bestCanonical, bestLen, true
}

// eliminateEquals drops a single trailing '='; any other '=' is a misplaced
// equals sign. Aliasing has already collapsed every alias spelling of '='
// to the literal '=' symbol key, so this step only ever sees '='.
func eliminateEquals(s string) (string, error) {
	trimmed := strings.TrimRightFunc(s, unicode.IsSpace)
	if strings.HasSuffix(trimmed, "=") && strings.Count(trimmed, "=") == 1 {
		return strings.TrimSuffix(trimmed, "="), nil
	}
	if strings.Contains(s, "=") {
		idx := strings.IndexByte(s, '=')
		return "", calcerr.New(calcerr.EQUAL_SIGN_MISPLACEMENT, s, []int{utf8.RuneCountInString(s[:idx])})
	}
	return s, nil
}

// formalElimination collapses runs of '+'/'-' by parity, drops a leading
// '+', validates digit separators, and rewrites every surviving ';' to ','
// (the parser only ever sees ',').
func formalElimination(s string) (string, error) {
	s = collapseSignRuns(s)
	s = strings.TrimPrefix(s, "+")

	if err := validateSeparators(s); err != nil {
		return "", err
	}

	s = stripDigitSeparatorCommas(s)
	s = strings.ReplaceAll(s, ";", ",")
	return s, nil
}

// collapseSignRuns rewrites every maximal run of '+'/'-' to a single '+' or
// '-' by parity of the minus count.
func collapseSignRuns(s string) string {
	var b strings.Builder
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		if runes[i] == '+' || runes[i] == '-' {
			j := i
			minusCount := 0
			for j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
				if runes[j] == '-' {
					minusCount++
				}
				j++
			}
			if minusCount%2 == 0 {
				b.WriteByte('+')
			} else {
				b.WriteByte('-')
			}
			i = j
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// validateSeparators checks every ';' lies outside of the digit-separator
// role (an unescorted ';' with no enclosing function call is
// FUNCTION_SEPARATOR_OUTSIDE) and every ',' is a digit separator between
// two digits, OR lies inside a function call whose arguments already use
// ';' (in which case it is a digit separator, handled later by
// stripDigitSeparatorCommas). A ',' that is not between two digits and not
// inside such a call is a NUMERIC_SEPARATOR_ERROR.
func validateSeparators(s string) error {
	depth := 0
	hasSemicolonAtDepth := map[int]bool{}
	runes := []rune(s)

	for i, r := range runes {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ';':
			if depth == 0 {
				return calcerr.New(calcerr.FUNCTION_SEPARATOR_OUTSIDE, s, []int{i})
			}
			hasSemicolonAtDepth[depth] = true
		}
	}

	depth = 0
	for i, r := range runes {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			betweenDigits := i > 0 && i < len(runes)-1 && isASCIIDigit(runes[i-1]) && isASCIIDigit(runes[i+1])
			insideSeparatedCall := depth > 0 && hasSemicolonAtDepth[depth]
			if !betweenDigits && !insideSeparatedCall {
				return calcerr.New(calcerr.NUMERIC_SEPARATOR_ERROR, s, []int{i})
			}
		}
	}
	return nil
}

// stripDigitSeparatorCommas removes every ',' acting as a digit separator
// (between two digits), since validateSeparators has already confirmed
// every surviving ',' is legal in one of the two allowed roles.
func stripDigitSeparatorCommas(s string) string {
	runes := []rune(s)
	var out []rune
	for i, r := range runes {
		if r == ',' && i > 0 && i < len(runes)-1 && isASCIIDigit(runes[i-1]) && isASCIIDigit(runes[i+1]) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
