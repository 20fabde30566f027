package conformance

import (
	"embed"
	"fmt"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// testdataFS embeds the suite fixtures so `go test` runs them with no
// dependency on the working directory the test binary happens to start
// in, rather than walking a sibling checkout on disk at run time.
//
//go:embed testdata/*.yaml
var testdataFS embed.FS

// LoadedTest pairs a parsed TestCase with the suite and file it came
// from, for subtest naming and per-suite evaluator reuse.
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests parses every embedded suite file and returns every case,
// grouped in file order so that tests sharing `let` bindings within a
// suite run in the order their author wrote them.
func LoadAllTests() ([]LoadedTest, error) {
	entries, err := testdataFS.ReadDir("testdata")
	if err != nil {
		return nil, fmt.Errorf("conformance: reading testdata: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var loaded []LoadedTest
	for _, name := range names {
		suite, err := loadSuiteFile(name)
		if err != nil {
			return nil, fmt.Errorf("conformance: %s: %w", name, err)
		}
		for _, tc := range suite.Tests {
			loaded = append(loaded, LoadedTest{
				File:  name,
				Suite: suite,
				Test:  tc,
			})
		}
	}
	return loaded, nil
}

func loadSuiteFile(name string) (TestSuite, error) {
	data, err := testdataFS.ReadFile(path.Join("testdata", name))
	if err != nil {
		return TestSuite{}, err
	}
	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return TestSuite{}, err
	}
	return suite, nil
}
