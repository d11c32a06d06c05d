package dto

import (
	"encoding/json"
	"time"

	"github.com/pidgeonhole/rookery-api/internal/models"
	"github.com/pidgeonhole/rookery-api/pkg/owl"
)

// SubmissionRequest carries the body for submitting an answer to a problem.
type SubmissionRequest struct {
	Name       string `json:"name" validate:"required"`
	Language   string `json:"language" validate:"required"`
	SourceCode string `json:"source_code" validate:"required"`
}

// SubmissionResultResponse is the graded-submission body: the judge's verdict
// merged with the submission metadata recorded at insertion time.
type SubmissionResultResponse struct {
	NumTests     int               `json:"num_tests"`
	TestsPassed  int               `json:"tests_passed"`
	TestsFailed  int               `json:"tests_failed"`
	TestsErrored int               `json:"tests_errored"`
	Results      []json.RawMessage `json:"results"`
	Name         string            `json:"name"`
	Language     string            `json:"language"`
	TimeReceived time.Time         `json:"time_received"`
}

// NewSubmissionResultResponse merges the judge result with the stored
// submission record.
func NewSubmissionResultResponse(submission models.Submission, result owl.Result) SubmissionResultResponse {
	results := result.Results
	if results == nil {
		results = []json.RawMessage{}
	}

	return SubmissionResultResponse{
		NumTests:     result.NumTests,
		TestsPassed:  result.TestsPassed,
		TestsFailed:  result.TestsFailed,
		TestsErrored: result.TestsErrored,
		Results:      results,
		Name:         submission.Name,
		Language:     submission.Language,
		TimeReceived: submission.TimeReceived,
	}
}

// LeaderboardEntry is one row of a problem's standings: a submitter's best
// submission. Counts are null for submitters whose submission was never
// graded.
type LeaderboardEntry struct {
	ID           uint      `json:"id"`
	ProblemID    uint      `json:"problem_id"`
	Name         string    `json:"name"`
	TimeReceived time.Time `json:"time_received"`
	NumTests     *int      `json:"num_tests"`
	TestsPassed  *int      `json:"tests_passed"`
	TestsFailed  *int      `json:"tests_failed"`
	TestsErrored *int      `json:"tests_errored"`
}

// NewLeaderboardEntry builds a standings row from the model.
func NewLeaderboardEntry(submission models.Submission) LeaderboardEntry {
	return LeaderboardEntry{
		ID:           submission.ID,
		ProblemID:    submission.ProblemID,
		Name:         submission.Name,
		TimeReceived: submission.TimeReceived,
		NumTests:     submission.NumTests,
		TestsPassed:  submission.TestsPassed,
		TestsFailed:  submission.TestsFailed,
		TestsErrored: submission.TestsErrored,
	}
}
