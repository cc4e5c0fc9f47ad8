package oloc

import (
	"fmt"
	"math/big"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/oloc-go/oloc/internal/eval"
	"github.com/oloc-go/oloc/internal/kernel"
	"github.com/oloc-go/oloc/internal/lexer"
	"github.com/oloc-go/oloc/internal/parser"
	"github.com/oloc-go/oloc/internal/preprocessor"
)

// Timings reports how long each pipeline stage took, exposed for
// diagnostics and the CLI's `--verbose` timing breakdown.
type Timings struct {
	Preprocess time.Duration `cbor:"preprocess"`
	Lex        time.Duration `cbor:"lex"`
	Parse      time.Duration `cbor:"parse"`
	Eval       time.Duration `cbor:"eval"`
}

// Result is the immutable outcome of one Calculate call: the original
// expression, the reproducible simplification steps, the final rendered
// form, and — when the expression reduced all the way to a rational — its
// exact numerator/denominator.
type Result struct {
	Expression string   `cbor:"expression"`
	Steps      []string `cbor:"steps"`
	Final      string   `cbor:"final"`
	Symbolic   bool     `cbor:"symbolic"`
	Numerator  string   `cbor:"numerator,omitempty"`
	Denominator string  `cbor:"denominator,omitempty"`
	Timings    Timings  `cbor:"timings"`
}

func newResult(expression string, pp *preprocessor.Preprocessor, lx *lexer.Lexer, ps *parser.Parser, ev *eval.Evaluator, r *eval.Result) *Result {
	steps := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		steps[i] = s.Expression
	}
	final := expression
	if len(steps) > 0 {
		final = steps[len(steps)-1]
	}

	res := &Result{
		Expression: expression,
		Steps:      steps,
		Final:      final,
		Symbolic:   r.Value == nil,
		Timings: Timings{
			Preprocess: pp.Elapsed,
			Lex:        lx.Elapsed,
			Parse:      ps.Elapsed,
			Eval:       ev.Elapsed,
		},
	}
	if r.Value != nil {
		res.Numerator = r.Value.Num.String()
		res.Denominator = r.Value.Den.String()
	}
	return res
}

// ToString returns the final rendered expression — the same value shown as
// the last simplification step.
func (r *Result) ToString() string { return r.Final }

// ToRational returns the result's exact value, when it reduced to one.
func (r *Result) ToRational() (kernel.Rational, bool) {
	if r.Symbolic {
		return kernel.Rational{}, false
	}
	num, _ := new(big.Int).SetString(r.Numerator, 10)
	den, _ := new(big.Int).SetString(r.Denominator, 10)
	rat, err := kernel.New(num, den)
	return rat, err == nil
}

// ToFloat approximates the result as a float64. It returns an error if the
// result never reduced to a rational value.
func (r *Result) ToFloat() (float64, error) {
	rat, ok := r.ToRational()
	if !ok {
		return 0, fmt.Errorf("oloc: result %q has no exact rational value", r.Final)
	}
	return rat.Float64(), nil
}

// ToInt returns the result as an int64, when it is both rational and an
// exact integer.
func (r *Result) ToInt() (int64, error) {
	rat, ok := r.ToRational()
	if !ok || !rat.IsInteger() {
		return 0, fmt.Errorf("oloc: result %q is not an integer", r.Final)
	}
	return rat.Num.Int64(), nil
}

// MarshalBinary implements encoding.BinaryMarshaler via CBOR, for any
// caller persisting a Result. RunTest's fixtures are plain JSON and do not
// use it.
func (r *Result) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(r)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler via CBOR.
func (r *Result) UnmarshalBinary(data []byte) error {
	return cbor.Unmarshal(data, r)
}
