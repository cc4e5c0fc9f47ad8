package parser

import (
	"github.com/oloc-go/oloc/internal/calcerr"
	"github.com/oloc-go/oloc/internal/token"
)

// staticPreCheck runs cheap structural checks before the grammar even
// starts descending: a stream cannot open with a
// token that only makes sense after an operand, nor close with one that
// only makes sense before one, and every parameter separator must sit
// inside some function call's brackets. The recursive-descent grammar
// itself catches every other adjacency violation as it fails to consume a
// production; this pass exists for the handful of errors that are cheaper
// to name up front than to infer from a failed parse.
func staticPreCheck(source string, toks []token.Token) error {
	if len(toks) == 0 {
		return nil
	}

	first := toks[0]
	if isRightOnly(first) {
		return calcerr.New(calcerr.UNEXPECTED_TOKEN, source, []int{first.Range.Lo})
	}

	last := toks[len(toks)-1]
	if isLeftOnly(last) {
		return calcerr.New(calcerr.UNEXPECTED_END_OF_EXPRESSION, source, []int{last.Range.Hi})
	}

	depth := 0
	callDepth := map[int]bool{}
	for i, t := range toks {
		switch t.Kind {
		case token.LeftBracket:
			depth++
			callDepth[depth] = i > 0 && toks[i-1].Kind == token.Function
		case token.RightBracket:
			depth--
		case token.ParameterSeparator:
			if depth == 0 || !callDepth[depth] {
				return calcerr.New(calcerr.FUNCTION_PARAM_SEPARATOR_ERROR, source, []int{t.Range.Lo})
			}
		}
	}
	return nil
}

// isRightOnly reports whether t can only ever appear after a complete
// operand (a binary operator, postfix '!', a right bracket, or a
// parameter separator) and so can never open a stream.
func isRightOnly(t token.Token) bool {
	switch t.Kind {
	case token.RightBracket, token.ParameterSeparator:
		return true
	case token.Operator:
		switch t.Value {
		case "*", "/", "^", "%", "!", "°":
			return true
		}
	}
	return false
}

// isLeftOnly reports whether t can only ever appear before an operand (a
// prefix operator, a left bracket, a function name, or a parameter
// separator) and so can never close a stream.
func isLeftOnly(t token.Token) bool {
	switch t.Kind {
	case token.LeftBracket, token.Function, token.ParameterSeparator:
		return true
	case token.Operator:
		switch t.Value {
		case "+", "-", "√", "*", "/", "^", "%":
			return true
		}
	}
	return false
}
