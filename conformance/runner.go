package conformance

import (
	"fmt"

	"achronyme/eval"
	"achronyme/types"
)

// TestResult is the outcome of running a single TestCase.
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner replays suites against fresh eval.Evaluator instances, one per
// suite file, so that variable bindings from `let` accumulate the way a
// single host session's eval() calls would, but never leak across
// files.
type Runner struct {
	evaluators map[string]*eval.Evaluator
}

// NewRunner creates an empty runner; each suite file gets its own
// evaluator lazily on first use.
func NewRunner() *Runner {
	return &Runner{evaluators: make(map[string]*eval.Evaluator)}
}

func (r *Runner) evaluatorFor(file string) *eval.Evaluator {
	e, ok := r.evaluators[file]
	if !ok {
		e = eval.NewEvaluator()
		r.evaluators[file] = e
	}
	return e
}

// Run executes a single loaded test case.
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{Test: test, Skipped: true, SkipReason: reason}
	}
	if test.Test.Expr == "" {
		return TestResult{Test: test, Skipped: true, SkipReason: "no expr"}
	}

	e := r.evaluatorFor(test.File)
	result := e.EvalSource(test.Test.Expr, e.NewContext())

	passed, err := checkExpectation(test.Test.Expect, result)
	return TestResult{Test: test, Passed: passed, Error: err}
}

// RunAll executes every test, preserving order.
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, t := range tests {
		results[i] = r.Run(t)
	}
	return results
}

// SummaryStats tallies a batch of results.
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats reduces results to a SummaryStats.
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Skipped:
			stats.Skipped++
		case r.Passed:
			stats.Passed++
		default:
			stats.Failed++
		}
	}
	return stats
}

// FormatStats renders a one-line human-readable summary.
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

func checkExpectation(expect Expectation, result types.Result) (bool, error) {
	if expect.Error != "" {
		if !result.IsError() {
			return false, fmt.Errorf("expected error %s, got value %q", expect.Error, types.CoerceBoolean(result.Val).String())
		}
		if result.Err.String() != expect.Error {
			return false, fmt.Errorf("expected error %s, got %s", expect.Error, result.Err.String())
		}
		return true, nil
	}

	if result.IsError() {
		return false, fmt.Errorf("unexpected error: %s (%s)", result.Err.String(), result.Err.Message())
	}

	got := types.CoerceBoolean(result.Val).String()
	if got != expect.Value {
		return false, fmt.Errorf("expected %q, got %q", expect.Value, got)
	}
	return true, nil
}
