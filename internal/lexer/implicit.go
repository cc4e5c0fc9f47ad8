package lexer

import "github.com/oloc-go/oloc/internal/token"

// endsValue reports whether t can be the left operand of an implicit
// multiplication: a number, an irrational carrier, an irrational-param
// suffix, or a closing bracket.
func endsValue(t token.Token) bool {
	return t.IsNumber() || t.Kind == token.IrrationalParam || t.Kind == token.RightBracket
}

// startsValue reports whether t can be the right operand of an implicit
// multiplication: a number, an irrational carrier, an opening bracket, or a
// function call.
func startsValue(t token.Token) bool {
	return t.IsNumber() || t.Kind == token.NativeIrrationalNumber ||
		t.Kind == token.ShortCustomIrrational || t.Kind == token.LongCustomIrrational ||
		t.Kind == token.LeftBracket || t.Kind == token.Function
}

// complementImplicitMultiplication inserts a synthetic '*' Operator token
// at every boundary where two adjacent tokens would otherwise juxtapose two
// values with no operator between them — "2(3+4)", "2π", ")(", "3 sin(x)".
// The inserted token carries a zero-length range at the boundary position
// since it has no source span of its own.
func complementImplicitMultiplication(toks []token.Token) []token.Token {
	if len(toks) == 0 {
		return toks
	}
	out := make([]token.Token, 0, len(toks)+4)
	out = append(out, toks[0])
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1], toks[i]
		if endsValue(prev) && startsValue(cur) {
			pos := cur.Range.Lo
			out = append(out, token.New(token.Operator, "*", token.Range{Lo: pos, Hi: pos}))
		}
		out = append(out, cur)
	}
	return out
}
