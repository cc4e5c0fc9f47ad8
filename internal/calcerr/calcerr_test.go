package calcerr

import (
	"strings"
	"testing"
)

func TestFamilyLookup(t *testing.T) {
	cases := map[Kind]Family{
		COMMENT_MISMATCH:  Syntax,
		INVALID_INTEGER:   Value,
		DIVIDE_BY_ZERO:    Calculation,
		MISSING_PARAM:     Conversion,
		TIMEOUT:           Timeout,
	}
	for kind, want := range cases {
		e := New(kind, "1+1", nil)
		if got := e.Family(); got != want {
			t.Errorf("%s: Family() = %s, want %s", kind, got, want)
		}
	}
}

func TestWithInfoInterpolatesMessage(t *testing.T) {
	e := New(INVALID_INTEGER, "007", []int{0}).WithInfo("007", "")
	msg := e.Error()
	if !strings.Contains(msg, "007") {
		t.Errorf("expected message to mention 007, got: %s", msg)
	}
}

func TestMarkerLinePlacesCarets(t *testing.T) {
	e := New(UNKNOWN_TOKEN, "1+$", []int{2}).WithInfo("$", "")
	msg := e.Error()
	lines := strings.Split(msg, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(lines))
	}
	if lines[1] != "1+$" {
		t.Errorf("expression line = %q, want %q", lines[1], "1+$")
	}
	if lines[2] != "  ^" {
		t.Errorf("marker line = %q, want %q", lines[2], "  ^")
	}
}

func TestWithTimingInterpolatesTimeLimit(t *testing.T) {
	e := New(TIMEOUT, "1+1", nil).WithTiming(5.0, 5.2)
	msg := e.Error()
	if !strings.Contains(msg, "5.0s") {
		t.Errorf("expected message to mention the time limit, got: %s", msg)
	}
}

func TestUnknownKindFallsBackToSyntaxFamily(t *testing.T) {
	e := New(Kind("NOT_A_REAL_KIND"), "x", nil)
	if e.Family() != Syntax {
		t.Errorf("expected unregistered kind to default to Syntax family, got %s", e.Family())
	}
	if e.Hint() != "" {
		t.Errorf("expected unregistered kind to have no hint, got %q", e.Hint())
	}
}

func TestNameReturnsKindString(t *testing.T) {
	e := New(DOMAIN_ERROR, "x", nil)
	if e.Name() != "DOMAIN_ERROR" {
		t.Errorf("Name() = %q, want DOMAIN_ERROR", e.Name())
	}
}
