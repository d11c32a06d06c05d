package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pidgeonhole/rookery-api/internal/models"
)

// SubmissionRepository exposes persistence operations for submissions. Create
// and SetResult are deliberately separate statements: a submission row exists
// from the moment it is received, before the judge has answered.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	SetResult(ctx context.Context, id uint, numTests, testsPassed, testsFailed, testsErrored int) (int64, error)
	ListByProblem(ctx context.Context, problemID uint) ([]models.Submission, error)
}

// NewSubmissionRepository constructs a submission repository.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

type submissionRepository struct {
	db *gorm.DB
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepository) SetResult(ctx context.Context, id uint, numTests, testsPassed, testsFailed, testsErrored int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"num_tests":     numTests,
			"tests_passed":  testsPassed,
			"tests_failed":  testsFailed,
			"tests_errored": testsErrored,
		})
	return result.RowsAffected, result.Error
}

func (r *submissionRepository) ListByProblem(ctx context.Context, problemID uint) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.WithContext(ctx).
		Where("problem_id = ?", problemID).
		Order("time_received").
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
