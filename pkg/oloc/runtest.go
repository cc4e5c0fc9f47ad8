package oloc

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
)

// TestCase is one fixture entry: an expression and the final rendered
// result RunTest expects Calculate to produce for it.
type TestCase struct {
	Expression string `json:"expression"`
	Expected   string `json:"expected"`
}

// TestFailure records one fixture that did not match.
type TestFailure struct {
	Case TestCase
	Got  string
	Err  error
}

// TestReport summarizes one RunTest invocation.
type TestReport struct {
	Total    int
	Passed   int
	Failures []TestFailure
}

// TestRunOption configures RunTest.
type TestRunOption func(*testRunOptions)

type testRunOptions struct {
	randomChoice     int
	pauseIfException bool
}

// WithRandomChoice samples n fixtures at random from the named set instead
// of running every one, mirroring oloc_core.py's run_test random_choice
// parameter.
func WithRandomChoice(n int) TestRunOption {
	return func(o *testRunOptions) { o.randomChoice = n }
}

// WithPauseIfException stops the run at the first fixture whose Calculate
// call itself errors (as opposed to merely producing the wrong answer),
// mirroring run_test's pause_if_exception parameter.
func WithPauseIfException(pause bool) TestRunOption {
	return func(o *testRunOptions) { o.pauseIfException = pause }
}

// RunTest loads the named fixture set from a JSON file shaped
// {"key": [{"expression": "...", "expected": "..."}, ...]} and checks
// every case's Calculate result against its expected rendering.
func RunTest(path, key string, opts ...TestRunOption) (*TestReport, error) {
	o := testRunOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("oloc: reading test fixture: %w", err)
	}
	var sets map[string][]TestCase
	if err := json.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("oloc: parsing test fixture: %w", err)
	}
	cases, ok := sets[key]
	if !ok {
		return nil, fmt.Errorf("oloc: no test set named %q in %s", key, path)
	}

	if o.randomChoice > 0 && o.randomChoice < len(cases) {
		shuffled := append([]TestCase(nil), cases...)
		rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		cases = shuffled[:o.randomChoice]
	}

	report := &TestReport{Total: len(cases)}
	for _, tc := range cases {
		result, err := Calculate(tc.Expression, -1)
		if err != nil {
			report.Failures = append(report.Failures, TestFailure{Case: tc, Err: err})
			if o.pauseIfException {
				break
			}
			continue
		}
		if result.Final == tc.Expected {
			report.Passed++
			continue
		}
		report.Failures = append(report.Failures, TestFailure{Case: tc, Got: result.Final})
	}
	return report, nil
}
