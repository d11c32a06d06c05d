package dto

import (
	"fmt"

	"github.com/pidgeonhole/rookery-api/internal/models"
)

// ProblemCreateRequest carries the body for creating a problem under a
// category. The category comes from the URL.
type ProblemCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ProblemUpdateRequest carries the body for updating a problem, including a
// possible move to another category.
type ProblemUpdateRequest struct {
	CategoryID  uint   `json:"category_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ProblemResponse represents a problem returned by the API.
type ProblemResponse struct {
	ID          uint   `json:"id"`
	CategoryID  uint   `json:"category_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TestCases   Link   `json:"test_cases"`
}

// NewProblemResponse builds a response DTO from the model.
func NewProblemResponse(problem models.Problem, basePath string) ProblemResponse {
	return ProblemResponse{
		ID:          problem.ID,
		CategoryID:  problem.CategoryID,
		Title:       problem.Title,
		Description: problem.Description,
		TestCases:   Link{Href: fmt.Sprintf("%s/problems/%d/test-cases", basePath, problem.ID)},
	}
}

// NewProblemResponses maps a slice of problems, preserving order.
func NewProblemResponses(problems []models.Problem, basePath string) []ProblemResponse {
	responses := make([]ProblemResponse, 0, len(problems))
	for _, problem := range problems {
		responses = append(responses, NewProblemResponse(problem, basePath))
	}
	return responses
}
