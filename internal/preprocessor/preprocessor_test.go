package preprocessor

import (
	"testing"

	"github.com/oloc-go/oloc/internal/calcerr"
)

func TestExecuteStripsCommentsAndAliasesSymbols(t *testing.T) {
	p := New("1 plus 2 #a free comment# multiply 3 @trailing note")
	if err := p.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if p.Expression != "1+2*3" {
		t.Errorf("Expression = %q, want %q", p.Expression, "1+2*3")
	}
}

func TestExecuteCollapsesSignRuns(t *testing.T) {
	p := New("1---2")
	if err := p.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if p.Expression != "1-2" {
		t.Errorf("Expression = %q, want %q", p.Expression, "1-2")
	}
}

func TestExecuteTrimsLeadingPlus(t *testing.T) {
	p := New("+5+3")
	if err := p.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if p.Expression != "5+3" {
		t.Errorf("Expression = %q, want %q", p.Expression, "5+3")
	}
}

func TestExecuteRewritesSemicolonSeparatorsToComma(t *testing.T) {
	p := New("pow(2;3)")
	if err := p.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if p.Expression != "pow(2,3)" {
		t.Errorf("Expression = %q, want %q", p.Expression, "pow(2,3)")
	}
}

func TestExecuteStripsDigitGroupingCommas(t *testing.T) {
	p := New("1,000+2,500")
	if err := p.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if p.Expression != "1000+2500" {
		t.Errorf("Expression = %q, want %q", p.Expression, "1000+2500")
	}
}

func TestExecuteNormalizesSuperscripts(t *testing.T) {
	p := New("2³")
	if err := p.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if p.Expression != "2^3" {
		t.Errorf("Expression = %q, want %q", p.Expression, "2^3")
	}
}

func TestExecuteErrorsOnUnmatchedFreeComment(t *testing.T) {
	p := New("1+2 #unterminated")
	err := p.Execute()
	if err == nil {
		t.Fatal("expected COMMENT_MISMATCH error")
	}
	cerr, ok := err.(*calcerr.Error)
	if !ok || cerr.Kind != calcerr.COMMENT_MISMATCH {
		t.Fatalf("expected COMMENT_MISMATCH, got %v", err)
	}
}

func TestExecuteErrorsOnSeparatorOutsideCall(t *testing.T) {
	p := New("1;2")
	err := p.Execute()
	if err == nil {
		t.Fatal("expected FUNCTION_SEPARATOR_OUTSIDE error")
	}
	cerr, ok := err.(*calcerr.Error)
	if !ok || cerr.Kind != calcerr.FUNCTION_SEPARATOR_OUTSIDE {
		t.Fatalf("expected FUNCTION_SEPARATOR_OUTSIDE, got %v", err)
	}
}

func TestExecuteErrorsOnMisplacedComma(t *testing.T) {
	p := New(",5")
	err := p.Execute()
	if err == nil {
		t.Fatal("expected NUMERIC_SEPARATOR_ERROR")
	}
	cerr, ok := err.(*calcerr.Error)
	if !ok || cerr.Kind != calcerr.NUMERIC_SEPARATOR_ERROR {
		t.Fatalf("expected NUMERIC_SEPARATOR_ERROR, got %v", err)
	}
}

func TestEliminateEqualsDropsSingleTrailingSign(t *testing.T) {
	got, err := eliminateEquals("2+2=")
	if err != nil {
		t.Fatalf("eliminateEquals: %v", err)
	}
	if got != "2+2" {
		t.Errorf("eliminateEquals = %q, want %q", got, "2+2")
	}
}

func TestEliminateEqualsRejectsMisplacedSign(t *testing.T) {
	_, err := eliminateEquals("2=+2")
	if err == nil {
		t.Fatal("expected EQUAL_SIGN_MISPLACEMENT")
	}
	cerr, ok := err.(*calcerr.Error)
	if !ok || cerr.Kind != calcerr.EQUAL_SIGN_MISPLACEMENT {
		t.Fatalf("expected EQUAL_SIGN_MISPLACEMENT, got %v", err)
	}
}

func TestLongCustomSpansProtectsBracketedBody(t *testing.T) {
	spans := longCustomSpans("1+<my.var,sep>+2")
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %d", len(spans))
	}
	if spans[0][0] != 2 {
		t.Errorf("span start = %d, want 2", spans[0][0])
	}
}

func TestCollapseSignRunsParity(t *testing.T) {
	cases := map[string]string{
		"1++2":  "1+2",
		"1--2":  "1+2",
		"1+-2":  "1-2",
		"1-+-2": "1+2",
	}
	for in, want := range cases {
		if got := collapseSignRuns(in); got != want {
			t.Errorf("collapseSignRuns(%q) = %q, want %q", in, got, want)
		}
	}
}
