package models

import "time"

// Submission records an answer to a problem. The result counts stay null
// until the judge has responded; a submission moves from received to graded
// exactly once and never back.
type Submission struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProblemID    uint      `gorm:"not null" json:"problem_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Language     string    `gorm:"size:64;not null" json:"language"`
	SourceCode   string    `gorm:"type:text;not null" json:"source_code"`
	TimeReceived time.Time `gorm:"autoCreateTime" json:"time_received"`
	NumTests     *int      `json:"num_tests"`
	TestsPassed  *int      `json:"tests_passed"`
	TestsFailed  *int      `json:"tests_failed"`
	TestsErrored *int      `json:"tests_errored"`
	Problem      Problem   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// IsGraded reports whether the judge result has been recorded.
func (s Submission) IsGraded() bool {
	return s.NumTests != nil
}
