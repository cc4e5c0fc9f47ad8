package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/oloc-go/oloc/internal/calcerr"
	"github.com/oloc-go/oloc/internal/token"
)

func tokenKinds(toks []token.Token) []token.Kind {
	kinds := make([]token.Kind, len(toks))
	for i, t := range toks {
		kinds[i] = t.Kind
	}
	return kinds
}

func tokenValues(toks []token.Token) []string {
	values := make([]string, len(toks))
	for i, t := range toks {
		values[i] = t.Value
	}
	return values
}

func TestExecuteTokenizesSimpleSum(t *testing.T) {
	l := New("12+34")
	if err := l.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	gotKinds := tokenKinds(l.Tokens)
	wantKinds := []token.Kind{token.Integer, token.Operator, token.Integer}
	if len(gotKinds) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(gotKinds), len(wantKinds), l.Tokens)
	}
	for i := range wantKinds {
		if gotKinds[i] != wantKinds[i] {
			t.Errorf("token[%d].Kind = %s, want %s", i, gotKinds[i], wantKinds[i])
		}
	}
	wantValues := []string{"12", "+", "34"}
	for i, v := range tokenValues(l.Tokens) {
		if v != wantValues[i] {
			t.Errorf("token[%d].Value = %q, want %q", i, v, wantValues[i])
		}
	}
}

func TestExecuteInsertsImplicitMultiplication(t *testing.T) {
	l := New("2(3+4)")
	if err := l.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := []token.Kind{
		token.Integer, token.Operator, token.LeftBracket,
		token.Integer, token.Operator, token.Integer, token.RightBracket,
	}
	got := tokenKinds(l.Tokens)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
	if l.Tokens[1].Value != "*" {
		t.Errorf("expected synthetic multiplication operator, got %q", l.Tokens[1].Value)
	}
}

func TestExecuteFractionalizesPercentage(t *testing.T) {
	l := New("50%")
	if err := l.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := []string{"(", "1", "/", "2", ")"}
	got := tokenValues(l.Tokens)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExecuteFractionalizesRecurringDecimalEllipsis(t *testing.T) {
	l := New("0.3...")
	if err := l.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := []string{"(", "1", "/", "3", ")"}
	got := tokenValues(l.Tokens)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExecuteNormalizesBracketFamilies(t *testing.T) {
	l := New("[1+2]")
	if err := l.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if l.Tokens[0].Value != "(" || l.Tokens[len(l.Tokens)-1].Value != ")" {
		t.Fatalf("expected brackets normalized to (), got %v", tokenValues(l.Tokens))
	}
}

func TestExecuteErrorsOnBracketHierarchyViolation(t *testing.T) {
	l := New("({1})")
	err := l.Execute()
	if err == nil {
		t.Fatal("expected BRACKET_HIERARCHY_ERROR")
	}
	cerr, ok := err.(*calcerr.Error)
	if !ok || cerr.Kind != calcerr.BRACKET_HIERARCHY_ERROR {
		t.Fatalf("expected BRACKET_HIERARCHY_ERROR, got %v", err)
	}
}

func TestExecuteErrorsOnUnmatchedLongCustomIrrational(t *testing.T) {
	l := New("<abc+1")
	err := l.Execute()
	if err == nil {
		t.Fatal("expected IRRATIONAL_BRACKET_MISMATCH")
	}
	cerr, ok := err.(*calcerr.Error)
	if !ok || cerr.Kind != calcerr.IRRATIONAL_BRACKET_MISMATCH {
		t.Fatalf("expected IRRATIONAL_BRACKET_MISMATCH, got %v", err)
	}
}

func TestExecuteErrorsOnUnmatchedRightBracket(t *testing.T) {
	l := New("1+2)")
	err := l.Execute()
	if err == nil {
		t.Fatal("expected RIGHT_BRACKET_MISMATCH")
	}
	cerr, ok := err.(*calcerr.Error)
	if !ok || cerr.Kind != calcerr.RIGHT_BRACKET_MISMATCH {
		t.Fatalf("expected RIGHT_BRACKET_MISMATCH, got %v", err)
	}
}

func TestExecuteErrorsOnUnrecognizedCharacter(t *testing.T) {
	l := New("1+$")
	err := l.Execute()
	if err == nil {
		t.Fatal("expected UNKNOWN_TOKEN")
	}
	cerr, ok := err.(*calcerr.Error)
	if !ok || cerr.Kind != calcerr.UNKNOWN_TOKEN {
		t.Fatalf("expected UNKNOWN_TOKEN, got %v", err)
	}
}

func TestExecuteTokenizesDegreeOperator(t *testing.T) {
	l := New("45°")
	if err := l.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := []token.Kind{token.Integer, token.Operator}
	got := tokenKinds(l.Tokens)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
	if l.Tokens[1].Value != "°" {
		t.Errorf("token[1].Value = %q, want %q", l.Tokens[1].Value, "°")
	}
}

func TestExecuteRecognizesFunctionNameAndLongCustomIrrational(t *testing.T) {
	l := New("sqrt(<phi>)")
	if err := l.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := []token.Kind{token.Function, token.LeftBracket, token.LongCustomIrrational, token.RightBracket}
	got := tokenKinds(l.Tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), tokenValues(l.Tokens), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d].Kind = %s, want %s", i, got[i], want[i])
		}
	}
}
