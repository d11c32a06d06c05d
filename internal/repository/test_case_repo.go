package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pidgeonhole/rookery-api/internal/models"
)

// TestCaseRepository exposes persistence operations for test cases.
type TestCaseRepository interface {
	ListByProblem(ctx context.Context, problemID uint) ([]models.TestCase, error)
	GetByID(ctx context.Context, id uint) (models.TestCase, error)
	Create(ctx context.Context, testCases []*models.TestCase) error
	Update(ctx context.Context, id uint, problemID uint, input, output, types string) (int64, error)
}

// NewTestCaseRepository constructs a test case repository.
func NewTestCaseRepository(db *gorm.DB) TestCaseRepository {
	return &testCaseRepository{db: db}
}

type testCaseRepository struct {
	db *gorm.DB
}

func (r *testCaseRepository) ListByProblem(ctx context.Context, problemID uint) ([]models.TestCase, error) {
	var testCases []models.TestCase
	err := r.db.WithContext(ctx).
		Where("problem_id = ?", problemID).
		Order("id").
		Find(&testCases).Error
	if err != nil {
		return nil, err
	}
	return testCases, nil
}

func (r *testCaseRepository) GetByID(ctx context.Context, id uint) (models.TestCase, error) {
	var testCase models.TestCase
	if err := r.db.WithContext(ctx).First(&testCase, id).Error; err != nil {
		return models.TestCase{}, err
	}
	return testCase, nil
}

// Create inserts the test cases in a single statement; with one element it is
// a plain insert.
func (r *testCaseRepository) Create(ctx context.Context, testCases []*models.TestCase) error {
	if len(testCases) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(testCases).Error
}

func (r *testCaseRepository) Update(ctx context.Context, id uint, problemID uint, input, output, types string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.TestCase{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"problem_id": problemID, "input": input, "output": output, "types": types})
	return result.RowsAffected, result.Error
}
