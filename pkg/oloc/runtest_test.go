package oloc_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/oloc-go/oloc/pkg/oloc"
)

func writeFixture(t *testing.T, sets map[string][]oloc.TestCase) string {
	t.Helper()
	data, err := json.Marshal(sets)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestRunTestReportsPassAndFailCounts(t *testing.T) {
	path := writeFixture(t, map[string][]oloc.TestCase{
		"basic": {
			{Expression: "2+3*4", Expected: "14"},
			{Expression: "1+1", Expected: "3"},
		},
	})

	report, err := oloc.RunTest(path, "basic")
	if err != nil {
		t.Fatalf("RunTest: %v", err)
	}
	if report.Total != 2 {
		t.Errorf("Total = %d, want 2", report.Total)
	}
	if report.Passed != 1 {
		t.Errorf("Passed = %d, want 1", report.Passed)
	}
	if len(report.Failures) != 1 {
		t.Fatalf("Failures = %d, want 1", len(report.Failures))
	}
	if report.Failures[0].Case.Expression != "1+1" || report.Failures[0].Got != "2" {
		t.Errorf("unexpected failure record: %+v", report.Failures[0])
	}
}

func TestRunTestPauseIfExceptionStopsAtFirstError(t *testing.T) {
	path := writeFixture(t, map[string][]oloc.TestCase{
		"basic": {
			{Expression: "1/0", Expected: "anything"},
			{Expression: "2+2", Expected: "4"},
		},
	})

	report, err := oloc.RunTest(path, "basic", oloc.WithPauseIfException(true))
	if err != nil {
		t.Fatalf("RunTest: %v", err)
	}
	if report.Passed != 0 {
		t.Errorf("Passed = %d, want 0", report.Passed)
	}
	if len(report.Failures) != 1 {
		t.Fatalf("expected to stop after the first exception, got %d failures", len(report.Failures))
	}
	if report.Failures[0].Err == nil {
		t.Error("expected the recorded failure to carry the Calculate error")
	}
}

func TestRunTestUnknownSetNameErrors(t *testing.T) {
	path := writeFixture(t, map[string][]oloc.TestCase{
		"basic": {{Expression: "1+1", Expected: "2"}},
	})

	if _, err := oloc.RunTest(path, "missing"); err == nil {
		t.Fatal("expected an error for an unknown fixture set name")
	}
}

func TestRunTestMissingFileErrors(t *testing.T) {
	if _, err := oloc.RunTest(filepath.Join(t.TempDir(), "absent.json"), "basic"); err == nil {
		t.Fatal("expected an error reading a missing fixture file")
	}
}
