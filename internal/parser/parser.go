// Package parser builds an ast.Arena from a lexed token stream using
// precedence-climbing recursive descent over oloc's fixed five-level
// operator table. An empty token stream parses to the literal 0.
package parser

import (
	"time"

	"github.com/oloc-go/oloc/internal/ast"
	"github.com/oloc-go/oloc/internal/calcerr"
	"github.com/oloc-go/oloc/internal/config"
	"github.com/oloc-go/oloc/internal/token"
)

// priority is oloc's operator precedence table (oloc_utils.py's
// get_priority): lower numbers bind tighter. '√' (prefix root) binds
// tightest, '+'/'-' loosest.
var priority = map[string]int{
	"√": 1,
	"^": 2, "%": 2,
	"!": 3, "|": 3, "°": 3,
	"*": 4, "/": 4,
	"+": 5, "-": 5,
}

// Parser builds one ast.Arena from a token stream.
type Parser struct {
	source  string
	tables  config.Tables
	toks    []token.Token
	pos     int
	arena   *ast.Arena
	Elapsed time.Duration
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithTables overrides the default alias tables, used to resolve a
// function-call's declared arity.
func WithTables(t config.Tables) Option {
	return func(p *Parser) { p.tables = t }
}

// New constructs a Parser over a lexed token stream. source is the fully
// preprocessed expression, carried only so parse errors can render a caret
// marker line against it.
func New(source string, toks []token.Token, opts ...Option) *Parser {
	p := &Parser{source: source, toks: toks, tables: config.Default(), arena: ast.NewArena()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Execute runs the static pre-check, builds the tree, and returns the
// finished Arena.
func (p *Parser) Execute() (*ast.Arena, error) {
	start := time.Now()
	defer func() { p.Elapsed = time.Since(start) }()

	if err := staticPreCheck(p.source, p.toks); err != nil {
		return nil, err
	}

	if len(p.toks) == 0 {
		root := p.arena.Add(ast.Node{
			Kind:   ast.Literal,
			Tokens: []token.Token{token.New(token.Integer, "0", token.Range{})},
			Parent: ast.NoRef,
		})
		p.arena.SetRoot(root)
		return p.arena, nil
	}

	root, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.errAt(calcerr.UNEXPECTED_TOKEN, p.pos)
	}
	p.arena.Reparent(root, ast.NoRef)
	p.arena.SetRoot(root)
	return p.arena, nil
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *Parser) peek() (token.Token, bool) {
	if p.atEnd() {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *Parser) isOperator(values ...string) bool {
	t, ok := p.peek()
	if !ok || t.Kind != token.Operator {
		return false
	}
	for _, v := range values {
		if t.Value == v {
			return true
		}
	}
	return false
}

func (p *Parser) errAt(kind calcerr.Kind, pos int) error {
	srcPos := len([]rune(p.source))
	if pos < len(p.toks) {
		srcPos = p.toks[pos].Range.Lo
	}
	return calcerr.New(kind, p.source, []int{srcPos})
}

func (p *Parser) errHere(kind calcerr.Kind) error {
	return p.errAt(kind, p.pos)
}

// newNode appends node to the arena, reparenting its declared children.
func (p *Parser) newNode(node ast.Node) ast.Ref {
	ref := p.arena.Add(node)
	for _, c := range node.Children {
		p.arena.Reparent(c, ref)
	}
	return ref
}

// parseAddSub: level 5, left-associative +/-.
func (p *Parser) parseAddSub() (ast.Ref, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return ast.NoRef, err
	}
	for p.isOperator("+", "-") {
		op := p.advance()
		right, err := p.parseMulDiv()
		if err != nil {
			return ast.NoRef, err
		}
		left = p.newNode(ast.Node{Kind: ast.Binary, Tokens: []token.Token{op}, Children: []ast.Ref{left, right}})
	}
	return left, nil
}

// parseMulDiv: level 4, left-associative * /.
func (p *Parser) parseMulDiv() (ast.Ref, error) {
	left, err := p.parseFactorialAbs()
	if err != nil {
		return ast.NoRef, err
	}
	for p.isOperator("*", "/") {
		op := p.advance()
		right, err := p.parseFactorialAbs()
		if err != nil {
			return ast.NoRef, err
		}
		left = p.newNode(ast.Node{Kind: ast.Binary, Tokens: []token.Token{op}, Children: []ast.Ref{left, right}})
	}
	return left, nil
}

// parseFactorialAbs: level 3, postfix '!' and '°'. The enclosing '|x|'
// form is recognized at the primary level since its closing delimiter is
// not a suffix of an already-parsed operand.
func (p *Parser) parseFactorialAbs() (ast.Ref, error) {
	left, err := p.parsePowMod()
	if err != nil {
		return ast.NoRef, err
	}
	for p.isOperator("!", "°") {
		op := p.advance()
		left = p.newNode(ast.Node{Kind: ast.Unary, Tokens: []token.Token{op}, UnaryPos: ast.Postfix, Children: []ast.Ref{left}})
	}
	return left, nil
}

// parsePowMod: level 2, right-associative ^ and %.
func (p *Parser) parsePowMod() (ast.Ref, error) {
	left, err := p.parseUnary()
	if err != nil {
		return ast.NoRef, err
	}
	if p.isOperator("^", "%") {
		op := p.advance()
		right, err := p.parsePowMod()
		if err != nil {
			return ast.NoRef, err
		}
		left = p.newNode(ast.Node{Kind: ast.Binary, Tokens: []token.Token{op}, Children: []ast.Ref{left, right}})
	}
	return left, nil
}

// parseUnary: level 1, prefix +, - and √.
func (p *Parser) parseUnary() (ast.Ref, error) {
	if p.isOperator("+", "-", "√") {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return ast.NoRef, err
		}
		return p.newNode(ast.Node{Kind: ast.Unary, Tokens: []token.Token{op}, UnaryPos: ast.Prefix, Children: []ast.Ref{operand}}), nil
	}
	return p.parsePrimary()
}

// parsePrimary parses a literal, a '|x|' enclosing form, a bracketed group,
// or a function call.
func (p *Parser) parsePrimary() (ast.Ref, error) {
	t, ok := p.peek()
	if !ok {
		return ast.NoRef, p.errHere(calcerr.UNEXPECTED_END_OF_EXPRESSION)
	}

	switch {
	case t.Kind == token.Operator && t.Value == "|":
		p.advance()
		inner, err := p.parseAddSub()
		if err != nil {
			return ast.NoRef, err
		}
		if !p.isOperator("|") {
			return ast.NoRef, p.errHere(calcerr.ENCLOSING_OPERATOR_MISPLACEMENT)
		}
		p.advance()
		return p.newNode(ast.Node{Kind: ast.Unary, Tokens: []token.Token{t}, UnaryPos: ast.Enclosing, Children: []ast.Ref{inner}}), nil

	case t.Kind == token.LeftBracket:
		p.advance()
		inner, err := p.parseAddSub()
		if err != nil {
			return ast.NoRef, err
		}
		closing, ok := p.peek()
		if !ok || closing.Kind != token.RightBracket {
			return ast.NoRef, p.errHere(calcerr.GROUP_EXPRESSION_ERROR)
		}
		p.advance()
		return p.newNode(ast.Node{Kind: ast.Group, Tokens: []token.Token{t, closing}, Children: []ast.Ref{inner}}), nil

	case t.Kind == token.Function:
		return p.parseCall()

	case t.IsNumber():
		p.advance()
		toks := []token.Token{t}
		if next, ok := p.peek(); ok && next.Kind == token.IrrationalParam {
			toks = append(toks, p.advance())
		}
		return p.newNode(ast.Node{Kind: ast.Literal, Tokens: toks}), nil

	default:
		return ast.NoRef, p.errHere(calcerr.UNEXPECTED_TOKEN)
	}
}

// parseCall parses "name(arg,arg,...)" and validates the argument count
// against the function's declared arity in tables.
func (p *Parser) parseCall() (ast.Ref, error) {
	name := p.advance()
	open, ok := p.peek()
	if !ok || open.Kind != token.LeftBracket {
		return ast.NoRef, p.errHere(calcerr.FUNCTION_MISPLACEMENT)
	}
	p.advance()

	var args []ast.Ref
	if closing, ok := p.peek(); ok && closing.Kind == token.RightBracket {
		p.advance()
		return p.newNode(ast.Node{Kind: ast.Call, Tokens: []token.Token{name}, Children: args}), nil
	}

	for {
		arg, err := p.parseAddSub()
		if err != nil {
			return ast.NoRef, err
		}
		args = append(args, arg)

		sep, ok := p.peek()
		if !ok {
			return ast.NoRef, p.errHere(calcerr.UNEXPECTED_END_OF_EXPRESSION)
		}
		if sep.Kind == token.ParameterSeparator {
			p.advance()
			continue
		}
		if sep.Kind == token.RightBracket {
			p.advance()
			break
		}
		return ast.NoRef, p.errHere(calcerr.FUNCTION_PARAM_SEPARATOR_ERROR)
	}

	if n, fixed, ok := arity(name.Value); ok && fixed && len(args) != n {
		return ast.NoRef, p.errAt(calcerr.FUNCTION_PARAM_COUNT_ERROR, p.pos-1)
	}
	return p.newNode(ast.Node{Kind: ast.Call, Tokens: []token.Token{name}, Children: args}), nil
}
