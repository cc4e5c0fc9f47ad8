// Package lexer turns a preprocessed expression string into the []token.Token
// stream the parser consumes. Tokenization runs in ordered passes rather
// than one left-to-right scan: long-custom-irrational regions
// and irrational-param suffixes are marked first since they can contain
// characters (digits, '.', '?') that would otherwise be mis-classified by a
// naive scanner, then function names, then numbers, then everything else is
// classified character-by-character. Once a flat token stream exists,
// formal complementation inserts implicit multiplication, fractionalization
// rewrites every rational-numeric leaf into exact-integer form, and bracket
// harmonization normalizes every bracket family to '(' / ')'.
package lexer

import (
	"time"

	"github.com/oloc-go/oloc/internal/calcerr"
	"github.com/oloc-go/oloc/internal/config"
	"github.com/oloc-go/oloc/internal/token"
)

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithTables overrides the default alias tables used for the function-name
// scan.
func WithTables(t config.Tables) Option {
	return func(l *Lexer) { l.tables = t }
}

// Lexer holds the state of one tokenization run over a single preprocessed
// expression.
type Lexer struct {
	source string
	tables config.Tables

	Tokens  []token.Token
	Elapsed time.Duration
}

// New constructs a Lexer over the already-preprocessed expression source.
func New(source string, opts ...Option) *Lexer {
	l := &Lexer{source: source, tables: config.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Execute runs every lexing pass in order and leaves the result in l.Tokens.
func (l *Lexer) Execute() error {
	start := time.Now()
	defer func() { l.Elapsed = time.Since(start) }()

	marks, err := markRegions(l.source, l.tables)
	if err != nil {
		return err
	}

	toks, err := classify(l.source, marks)
	if err != nil {
		return err
	}

	toks = complementImplicitMultiplication(toks)

	toks, err = fractionalize(toks)
	if err != nil {
		return err
	}

	toks, err = harmonizeBrackets(l.source, toks)
	if err != nil {
		return err
	}

	l.Tokens = toks
	return nil
}
