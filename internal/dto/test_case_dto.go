package dto

import (
	"github.com/pidgeonhole/rookery-api/internal/models"
	"github.com/pidgeonhole/rookery-api/pkg/owl"
)

// TestCaseCreateRequest carries the body for creating a test case under a
// problem. The problem comes from the URL.
type TestCaseCreateRequest struct {
	Input  string `json:"input" validate:"required"`
	Output string `json:"output" validate:"required"`
	Types  string `json:"types" validate:"required"`
}

// TestCaseUpdateRequest carries the body for updating a test case, including
// a possible move to another problem.
type TestCaseUpdateRequest struct {
	ProblemID uint   `json:"problem_id" validate:"required"`
	Input     string `json:"input" validate:"required"`
	Output    string `json:"output" validate:"required"`
	Types     string `json:"types" validate:"required"`
}

// TestCaseResponse represents a test case returned by the API.
type TestCaseResponse struct {
	ID        uint   `json:"id"`
	ProblemID uint   `json:"problem_id"`
	Input     string `json:"input"`
	Output    string `json:"output"`
	Types     string `json:"types"`
}

// NewTestCaseResponse builds a response DTO from the model.
func NewTestCaseResponse(testCase models.TestCase) TestCaseResponse {
	return TestCaseResponse{
		ID:        testCase.ID,
		ProblemID: testCase.ProblemID,
		Input:     testCase.Input,
		Output:    testCase.Output,
		Types:     testCase.Types,
	}
}

// NewTestCaseResponses maps a slice of test cases, preserving order.
func NewTestCaseResponses(testCases []models.TestCase) []TestCaseResponse {
	responses := make([]TestCaseResponse, 0, len(testCases))
	for _, testCase := range testCases {
		responses = append(responses, NewTestCaseResponse(testCase))
	}
	return responses
}

// NewJudgeTestCases converts stored test cases into the judge's wire shape.
func NewJudgeTestCases(testCases []models.TestCase) []owl.TestCase {
	converted := make([]owl.TestCase, 0, len(testCases))
	for _, testCase := range testCases {
		converted = append(converted, owl.TestCase{
			ID:        testCase.ID,
			ProblemID: testCase.ProblemID,
			Input:     testCase.Input,
			Output:    testCase.Output,
			Types:     testCase.Types,
		})
	}
	return converted
}
