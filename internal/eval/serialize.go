package eval

import (
	"strings"

	"github.com/oloc-go/oloc/internal/ast"
)

// precedence mirrors the parser's operator table so Serialize can drop any
// bracket a reader wouldn't need when re-rendering a subtree. Atoms
// (literals, groups, calls) never need parens of their own; the map covers
// only operators.
var precedence = map[string]int{
	"√": 1,
	"^": 2, "%": 2,
	"!": 3, "|": 3, "°": 3,
	"*": 4, "/": 4,
	"+": 5, "-": 5,
}

// Serialize renders the subtree at ref back to a surface expression
// string, adding back only the brackets precedence demands.
func Serialize(arena *ast.Arena, ref ast.Ref) string {
	var b strings.Builder
	write(&b, arena, ref)
	return b.String()
}

func write(b *strings.Builder, arena *ast.Arena, ref ast.Ref) {
	node := arena.Get(ref)
	switch node.Kind {
	case ast.Literal:
		for _, t := range node.Tokens {
			b.WriteString(t.Value)
		}
	case ast.Group:
		b.WriteByte('(')
		write(b, arena, node.Children[0])
		b.WriteByte(')')
	case ast.Call:
		b.WriteString(node.Tokens[0].Value)
		b.WriteByte('(')
		for i, c := range node.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			write(b, arena, c)
		}
		b.WriteByte(')')
	case ast.Binary:
		op := node.Tokens[0].Value
		p := precedence[op]
		writeChild(b, arena, node.Children[0], p, false)
		b.WriteString(op)
		writeChild(b, arena, node.Children[1], p, true)
	case ast.Unary:
		op := node.Tokens[0].Value
		p := precedence[op]
		switch node.UnaryPos {
		case ast.Prefix:
			b.WriteString(op)
			writeChild(b, arena, node.Children[0], p, true)
		case ast.Postfix:
			writeChild(b, arena, node.Children[0], p, false)
			b.WriteString(op)
		case ast.Enclosing:
			b.WriteByte('|')
			write(b, arena, node.Children[0])
			b.WriteByte('|')
		}
	}
}

// writeChild writes child, parenthesizing it when its own operator binds
// looser than the parent (a larger precedence number), or binds equally
// and is the right operand of a binary operator or the operand of a prefix
// operator. An equal-precedence left operand is written without brackets;
// brackets the user wrote stay in the tree as Group nodes and are rendered
// by the Group case instead.
func writeChild(b *strings.Builder, arena *ast.Arena, ref ast.Ref, parentPrec int, isRightOrPrefixOperand bool) {
	node := arena.Get(ref)
	childPrec, isOperator := operatorPrecedence(node)
	if !isOperator {
		write(b, arena, ref)
		return
	}
	needsParens := childPrec > parentPrec || (childPrec == parentPrec && isRightOrPrefixOperand)
	if needsParens {
		b.WriteByte('(')
		write(b, arena, ref)
		b.WriteByte(')')
	} else {
		write(b, arena, ref)
	}
}

func operatorPrecedence(node *ast.Node) (int, bool) {
	switch node.Kind {
	case ast.Binary, ast.Unary:
		if node.Kind == ast.Unary && node.UnaryPos == ast.Enclosing {
			return 0, false
		}
		return precedence[node.Tokens[0].Value], true
	}
	return 0, false
}
