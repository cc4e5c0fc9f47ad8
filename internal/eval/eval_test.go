package eval_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/oloc-go/oloc/internal/calcerr"
	"github.com/oloc-go/oloc/internal/eval"
	"github.com/oloc-go/oloc/internal/lexer"
	"github.com/oloc-go/oloc/internal/parser"
)

func evalExpr(t *testing.T, src string) (*eval.Result, error) {
	t.Helper()
	l := lexer.New(src)
	if err := l.Execute(); err != nil {
		t.Fatalf("lexing %q: %v", src, err)
	}
	p := parser.New(src, l.Tokens)
	arena, err := p.Execute()
	if err != nil {
		t.Fatalf("parsing %q: %v", src, err)
	}
	return eval.New(arena, src).Execute()
}

func mustEvalValue(t *testing.T, src, want string) {
	t.Helper()
	res, err := evalExpr(t, src)
	if err != nil {
		t.Fatalf("evaluating %q: %v", src, err)
	}
	if res.Value == nil {
		t.Fatalf("evaluating %q: expected an exact value, got symbolic result", src)
	}
	if got := res.Value.String(); got != want {
		t.Errorf("evaluating %q: value = %s, want %s", src, got, want)
	}
}

func TestExecuteArithmeticPrecedence(t *testing.T) {
	mustEvalValue(t, "2+3*4", "14")
}

func TestExecutePowerAndModulo(t *testing.T) {
	mustEvalValue(t, "2^10", "1024")
	mustEvalValue(t, "10%3", "1")
}

func TestExecuteFactorial(t *testing.T) {
	mustEvalValue(t, "5!", "120")
}

func TestExecuteEnclosingAbsoluteValue(t *testing.T) {
	mustEvalValue(t, "|0-3|", "3")
}

func TestExecuteSqrtOfPerfectSquare(t *testing.T) {
	mustEvalValue(t, "sqrt(4)", "2")
}

func TestExecutePowFunction(t *testing.T) {
	mustEvalValue(t, "pow(2,3)", "8")
}

func TestExecuteDivisionByZeroErrors(t *testing.T) {
	_, err := evalExpr(t, "1/0")
	if err == nil {
		t.Fatal("expected DIVIDE_BY_ZERO")
	}
	cerr, ok := err.(*calcerr.Error)
	if !ok || cerr.Kind != calcerr.DIVIDE_BY_ZERO {
		t.Fatalf("expected DIVIDE_BY_ZERO, got %v", err)
	}
}

func TestExecuteZeroToTheZeroErrors(t *testing.T) {
	_, err := evalExpr(t, "0^0")
	if err == nil {
		t.Fatal("expected ZERO_TO_THE_POWER_OF_ZERO")
	}
	cerr, ok := err.(*calcerr.Error)
	if !ok || cerr.Kind != calcerr.ZERO_TO_THE_POWER_OF_ZERO {
		t.Fatalf("expected ZERO_TO_THE_POWER_OF_ZERO, got %v", err)
	}
}

func TestExecuteLeavesUnknownTranscendentalSymbolic(t *testing.T) {
	res, err := evalExpr(t, "sin(1)")
	if err != nil {
		t.Fatalf("evaluating sin(1): %v", err)
	}
	if res.Value != nil {
		t.Fatalf("expected sin(1) to remain symbolic, got %s", res.Value.String())
	}
	last := res.Steps[len(res.Steps)-1]
	if last.Expression != "sin(1)" {
		t.Errorf("final step = %q, want %q", last.Expression, "sin(1)")
	}
}

func TestExecuteResolvesExactIdentity(t *testing.T) {
	mustEvalValue(t, "sin(0)", "0")
}

func TestExecuteLeavesIrrationalCarrierSymbolic(t *testing.T) {
	res, err := evalExpr(t, "π+1")
	if err != nil {
		t.Fatalf("evaluating π+1: %v", err)
	}
	if res.Value != nil {
		t.Fatalf("expected π+1 to remain symbolic, got %s", res.Value.String())
	}
}

func mustEvalSymbolic(t *testing.T, src, wantExpression string) {
	t.Helper()
	res, err := evalExpr(t, src)
	if err != nil {
		t.Fatalf("evaluating %q: %v", src, err)
	}
	if res.Value != nil {
		t.Fatalf("evaluating %q: expected symbolic result, got exact value %s", src, res.Value.String())
	}
	last := res.Steps[len(res.Steps)-1]
	if last.Expression != wantExpression {
		t.Errorf("evaluating %q: final step = %q, want %q", src, last.Expression, wantExpression)
	}
}

func mustEvalDomainError(t *testing.T, src string) {
	t.Helper()
	_, err := evalExpr(t, src)
	if err == nil {
		t.Fatalf("evaluating %q: expected DOMAIN_ERROR", src)
	}
	cerr, ok := err.(*calcerr.Error)
	if !ok || cerr.Kind != calcerr.DOMAIN_ERROR {
		t.Fatalf("evaluating %q: expected DOMAIN_ERROR, got %v", src, err)
	}
}

func TestExecuteDegreesConvertToRadians(t *testing.T) {
	mustEvalSymbolic(t, "180°", "π")
	mustEvalSymbolic(t, "45°", "π/4")
	mustEvalSymbolic(t, "30°", "π/6")
	mustEvalValue(t, "0°", "0")
}

func TestExecuteDegreeBindsBeforeAddition(t *testing.T) {
	mustEvalSymbolic(t, "30°+30°", "π/3")
}

func TestExecuteSinSpecialAngles(t *testing.T) {
	mustEvalValue(t, "sin(π/6)", "1/2")
	mustEvalSymbolic(t, "sin(π/4)", "√2/2")
	mustEvalSymbolic(t, "sin(π/3)", "√3/2")
	mustEvalValue(t, "sin(π/2)", "1")
	mustEvalValue(t, "sin(π)", "0")
}

func TestExecuteCosSpecialAngles(t *testing.T) {
	mustEvalValue(t, "cos(π/3)", "1/2")
	mustEvalSymbolic(t, "cos(π/6)", "√3/2")
	mustEvalValue(t, "cos(π)", "-1")
}

func TestExecuteTanSpecialAngles(t *testing.T) {
	mustEvalValue(t, "tan(π/4)", "1")
	mustEvalSymbolic(t, "tan(π/3)", "√3")
	mustEvalValue(t, "tan(π)", "0")
}

func TestExecuteTanAndCotDomainErrorsAtPoles(t *testing.T) {
	mustEvalDomainError(t, "tan(π/2)")
	mustEvalDomainError(t, "tan(3*π/2)")
	mustEvalDomainError(t, "cot(0)")
	mustEvalDomainError(t, "cot(π)")
}

func TestExecuteInverseTrigSpecialValues(t *testing.T) {
	mustEvalSymbolic(t, "asin(1/2)", "π/6")
	mustEvalSymbolic(t, "acos(1/2)", "π/3")
	mustEvalSymbolic(t, "atan(1)", "π/4")
	mustEvalSymbolic(t, "acot(1)", "π/4")
}

func TestExecuteAsinAcosDomainErrorOutsideRange(t *testing.T) {
	mustEvalDomainError(t, "asin(2)")
	mustEvalDomainError(t, "acos(-2)")
}

func TestExecuteStepSequenceMatchesSnapshot(t *testing.T) {
	res, err := evalExpr(t, "2+3*4-1")
	if err != nil {
		t.Fatalf("evaluating 2+3*4-1: %v", err)
	}
	snaps.MatchSnapshot(t, res.Steps)
}

func TestExecuteRecordsAtLeastOneStep(t *testing.T) {
	res, err := evalExpr(t, "1+2")
	if err != nil {
		t.Fatalf("evaluating 1+2: %v", err)
	}
	if len(res.Steps) == 0 {
		t.Fatal("expected at least one recorded step")
	}
	if res.Steps[len(res.Steps)-1].Expression != "3" {
		t.Errorf("final step = %q, want %q", res.Steps[len(res.Steps)-1].Expression, "3")
	}
}
