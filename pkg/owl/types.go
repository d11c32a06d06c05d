package owl

import "encoding/json"

// TestCase is one input/expected-output pair shipped to the judge. Field
// names follow the judge's wire format.
type TestCase struct {
	ID        uint   `json:"id"`
	ProblemID uint   `json:"problem_id"`
	Input     string `json:"input"`
	Output    string `json:"output"`
	Types     string `json:"types"`
}

// Job is the grading request posted to the judge.
type Job struct {
	Language   string     `json:"language"`
	SourceCode string     `json:"source_code"`
	TestCases  []TestCase `json:"test_cases"`
	Debug      bool       `json:"debug"`
}

// Result is the judge's verdict for a job. The per-test records are passed
// through verbatim; their shape is owned by the judge.
type Result struct {
	NumTests     int               `json:"num_tests"`
	TestsPassed  int               `json:"tests_passed"`
	TestsFailed  int               `json:"tests_failed"`
	TestsErrored int               `json:"tests_errored"`
	Results      []json.RawMessage `json:"results"`
}
