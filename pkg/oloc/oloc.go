// Package oloc is the public façade of the calculator: Calculate,
// IsReserved, RunTest and Version are its only public operations.
// Everything else — preprocessor, lexer, parser, kernel, evaluator — is an
// internal collaborator this package wires together and never exposes
// directly.
package oloc

import (
	"context"

	"github.com/oloc-go/oloc/internal/config"
	"github.com/oloc-go/oloc/internal/eval"
	"github.com/oloc-go/oloc/internal/lexer"
	"github.com/oloc-go/oloc/internal/parser"
	"github.com/oloc-go/oloc/internal/preprocessor"
	"github.com/oloc-go/oloc/internal/watchdog"
)

// Option configures the calculator façade.
type Option func(*options)

type options struct {
	tables config.Tables
}

// WithTables overrides the default symbol/function alias and output-option
// tables, e.g. with config.LoadFile's result.
func WithTables(t config.Tables) Option {
	return func(o *options) { o.tables = t }
}

func resolve(opts []Option) options {
	o := options{tables: config.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Calculate runs the full preprocessor → lexer → parser → evaluator
// pipeline over expression and returns its Result. A negative timeLimit
// disables the watchdog entirely; a non-negative one bounds the whole
// pipeline, not just evaluation, since any stage can in principle run long
// on a pathological input.
func Calculate(expression string, timeLimit float64, opts ...Option) (*Result, error) {
	o := resolve(opts)
	return watchdog.Run(context.Background(), expression, timeLimit, func(ctx context.Context) (*Result, error) {
		return calculate(expression, o)
	})
}

func calculate(expression string, o options) (*Result, error) {
	pp := preprocessor.New(expression, preprocessor.WithTables(o.tables))
	if err := pp.Execute(); err != nil {
		return nil, err
	}

	lx := lexer.New(pp.Expression, lexer.WithTables(o.tables))
	if err := lx.Execute(); err != nil {
		return nil, err
	}

	ps := parser.New(pp.Expression, lx.Tokens, parser.WithTables(o.tables))
	arena, err := ps.Execute()
	if err != nil {
		return nil, err
	}

	ev := eval.New(arena, pp.Expression)
	result, err := ev.Execute()
	if err != nil {
		return nil, err
	}

	return newResult(expression, pp, lx, ps, ev, result), nil
}
