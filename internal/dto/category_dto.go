package dto

import (
	"fmt"

	"github.com/pidgeonhole/rookery-api/internal/models"
)

// Link is a hypermedia reference to a related collection.
type Link struct {
	Href string `json:"href"`
}

// CategoryRequest carries the body for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// CategoryResponse represents a category returned by the API. Problems is
// either a Link to the category's problem collection or, when the caller
// requested expansion, the inlined []ProblemResponse.
type CategoryResponse struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Problems    interface{} `json:"problems"`
}

// NewCategoryResponse builds the unexpanded response carrying a problems link.
func NewCategoryResponse(category models.Category, basePath string) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Problems:    Link{Href: fmt.Sprintf("%s/categories/%d/problems", basePath, category.ID)},
	}
}

// NewExpandedCategoryResponse builds the response with problems inlined.
func NewExpandedCategoryResponse(category models.Category, problems []models.Problem, basePath string) CategoryResponse {
	response := NewCategoryResponse(category, basePath)
	response.Problems = NewProblemResponses(problems, basePath)
	return response
}
