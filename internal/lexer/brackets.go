package lexer

import (
	"github.com/oloc-go/oloc/internal/calcerr"
	"github.com/oloc-go/oloc/internal/token"
)

// bracketPriority orders the three bracket families outer-to-inner: '{' is
// the outermost (highest priority), '(' the innermost. Opening a
// higher-priority bracket while a lower-priority one is still on top of the
// stack would put an outer grouping inside an inner one, which is a
// BRACKET_HIERARCHY_ERROR.
var bracketPriority = map[string]int{"{": 3, "[": 2, "(": 1}

// harmonizeBrackets verifies every bracket nests correctly by family
// priority, then normalizes every LeftBracket/RightBracket token's surface
// spelling to '(' / ')' — after this pass the parser only ever sees one
// bracket family.
func harmonizeBrackets(source string, toks []token.Token) ([]token.Token, error) {
	type frame struct {
		value string
		pos   int
	}
	var stack []frame
	closing := map[string]string{"(": ")", "[": "]", "{": "}"}

	for _, t := range toks {
		switch t.Kind {
		case token.LeftBracket:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				if bracketPriority[top.value] < bracketPriority[t.Value] {
					return nil, calcerr.New(calcerr.BRACKET_HIERARCHY_ERROR, source, []int{t.Range.Lo})
				}
			}
			stack = append(stack, frame{t.Value, t.Range.Lo})
		case token.RightBracket:
			if len(stack) == 0 {
				return nil, calcerr.New(calcerr.RIGHT_BRACKET_MISMATCH, source, []int{t.Range.Lo})
			}
			if closing[stack[len(stack)-1].value] != t.Value {
				return nil, calcerr.New(calcerr.RIGHT_BRACKET_MISMATCH, source, []int{t.Range.Lo})
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		positions := make([]int, len(stack))
		for i, f := range stack {
			positions[i] = f.pos
		}
		return nil, calcerr.New(calcerr.LEFT_BRACKET_MISMATCH, source, positions)
	}

	out := make([]token.Token, len(toks))
	for i, t := range toks {
		switch t.Kind {
		case token.LeftBracket:
			t.Value = "("
			t.Recheck()
		case token.RightBracket:
			t.Value = ")"
			t.Recheck()
		}
		out[i] = t
	}
	return out, nil
}
