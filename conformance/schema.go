// Package conformance drives the engine's slow path (eval.Evaluator)
// against data-driven YAML test suites: each fixture describes
// expression source and an expected stringified value or error code,
// loaded, run, and reported independently of the Go test binary's
// working directory.
package conformance

// TestSuite is a complete YAML test file: a named group of expression
// cases, optionally scoped to a feature this package exercises.
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase is a single expression and its expected outcome. Expr is
// evaluated with a fresh eval.Evaluator per suite (so `let` bindings in
// one case are visible to later cases in the same suite, mirroring how
// a host's REPL session accumulates bindings across eval() calls).
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"`
	Expr        string      `yaml:"expr"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation describes what Expr must produce. Exactly one of Value or
// Error is normally set; the loader does not check this, and
// TestLoadAllTests reports a case with neither.
type Expectation struct {
	Value string `yaml:"value,omitempty"` // exact match against eval's stringified result
	Error string `yaml:"error,omitempty"` // ErrorCode.String(), e.g. "ShapeError"
}

// IsSkipped reports whether tc should be skipped, and why.
func (tc *TestCase) IsSkipped() (bool, string) {
	switch v := tc.Skip.(type) {
	case nil:
		return false, ""
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
