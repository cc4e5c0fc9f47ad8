// Package eval walks an ast.Arena bottom-up, collapsing every reducible
// subtree into its exact kernel.Value in a single depth-first pass,
// recording the whole-tree re-serialization after every collapse as a
// step. A kernel.Value carries either a plain rational or a rational
// coefficient times π or √radicand, so a degrees-to-radians conversion or
// a special trig angle still collapses exactly instead of going
// un-reduced the moment an operand is irrational. A subtree with no exact
// representation at all — an unresolved transcendental call, a custom
// irrational — is left standing, so the final result can be partly
// numeric and partly symbolic.
package eval

import (
	"time"

	"github.com/oloc-go/oloc/internal/ast"
	"github.com/oloc-go/oloc/internal/calcerr"
	"github.com/oloc-go/oloc/internal/kernel"
)

// Step is one recorded rewrite of the whole expression.
type Step struct {
	Expression string
}

// Result is the outcome of one evaluation: the (possibly partially
// rewritten) Arena, the exact Value if the whole tree reduced to a single
// rational (nil otherwise), and the deduplicated step list.
type Result struct {
	Arena *ast.Arena
	Value *kernel.Rational
	Steps []Step
}

// Evaluator holds the state of one evaluation run.
type Evaluator struct {
	arena   *ast.Arena
	source  string
	root    ast.Ref
	steps   []string
	Elapsed time.Duration
}

// New constructs an Evaluator over arena. source is the preprocessed
// expression, carried only so calculation errors can render a caret
// marker line against it.
func New(arena *ast.Arena, source string) *Evaluator {
	return &Evaluator{arena: arena, source: source, root: arena.Root()}
}

// Execute runs the depth-first reduction pass and returns the Result.
func (e *Evaluator) Execute() (*Result, error) {
	start := time.Now()
	defer func() { e.Elapsed = time.Since(start) }()

	e.steps = []string{Serialize(e.arena, e.root)}

	val, ok, err := e.reduce(e.root)
	if err != nil {
		return nil, err
	}

	final := Serialize(e.arena, e.root)
	if len(e.steps) == 0 || e.steps[len(e.steps)-1] != final {
		e.steps = append(e.steps, final)
	}

	var rational *kernel.Rational
	if ok {
		if r, isRational := val.Rational(); isRational {
			rational = &r
		}
	}

	return &Result{
		Arena: e.arena,
		Value: rational,
		Steps: dedupeSteps(e.steps),
	}, nil
}

// reduce collapses ref's subtree in place where an exact value exists —
// a plain rational, or a π/√ symbolic Value — returning it with ok=true.
// ok is false only when the subtree has no exact representation at all
// (an unresolved function call, a custom irrational), in which case it is
// left standing untouched.
func (e *Evaluator) reduce(ref ast.Ref) (kernel.Value, bool, error) {
	node := e.arena.Get(ref)

	switch node.Kind {
	case ast.Literal:
		v, ok := literalValue(*node)
		return v, ok, nil

	case ast.Group:
		val, ok, err := e.reduce(node.Children[0])
		if err != nil {
			return kernel.Value{}, false, err
		}
		if !ok {
			return kernel.Value{}, false, nil
		}
		e.collapse(ref, val)
		e.recordStep()
		return val, true, nil

	case ast.Binary:
		lv, lok, err := e.reduce(node.Children[0])
		if err != nil {
			return kernel.Value{}, false, err
		}
		rv, rok, err := e.reduce(node.Children[1])
		if err != nil {
			return kernel.Value{}, false, err
		}
		if !lok || !rok {
			return kernel.Value{}, false, nil
		}
		result, ok, err := e.applyBinary(node.Tokens[0], lv, rv)
		if err != nil {
			return kernel.Value{}, false, err
		}
		if !ok {
			return kernel.Value{}, false, nil
		}
		e.collapse(ref, result)
		e.recordStep()
		return result, true, nil

	case ast.Unary:
		val, ok, err := e.reduce(node.Children[0])
		if err != nil {
			return kernel.Value{}, false, err
		}
		if !ok {
			return kernel.Value{}, false, nil
		}
		result, ok, err := e.applyUnary(node.Tokens[0], node.UnaryPos, val)
		if err != nil {
			return kernel.Value{}, false, err
		}
		if !ok {
			return kernel.Value{}, false, nil
		}
		e.collapse(ref, result)
		e.recordStep()
		return result, true, nil

	case ast.Call:
		args := make([]kernel.Value, 0, len(node.Children))
		allKnown := true
		for _, c := range node.Children {
			v, ok, err := e.reduce(c)
			if err != nil {
				return kernel.Value{}, false, err
			}
			if !ok {
				allKnown = false
				continue
			}
			args = append(args, v)
		}
		if !allKnown {
			return kernel.Value{}, false, nil
		}
		result, ok, err := e.applyFunction(node.Tokens[0], args)
		if err != nil {
			return kernel.Value{}, false, err
		}
		if !ok {
			return kernel.Value{}, false, nil
		}
		e.collapse(ref, result)
		e.recordStep()
		return result, true, nil
	}

	return kernel.Value{}, false, nil
}

func (e *Evaluator) recordStep() {
	e.steps = append(e.steps, Serialize(e.arena, e.root))
}

func (e *Evaluator) errAt(kind calcerr.Kind, pos int, primary string) error {
	return calcerr.New(kind, e.source, []int{pos}).WithInfo(primary, "")
}
