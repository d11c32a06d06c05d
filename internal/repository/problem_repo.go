package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pidgeonhole/rookery-api/internal/models"
)

// ProblemRepository exposes persistence operations for problems.
type ProblemRepository interface {
	ListByCategory(ctx context.Context, categoryID uint) ([]models.Problem, error)
	GetByID(ctx context.Context, id uint) (models.Problem, error)
	Create(ctx context.Context, problem *models.Problem) error
	Update(ctx context.Context, id uint, categoryID uint, title, description string) (int64, error)
}

// NewProblemRepository constructs a problem repository.
func NewProblemRepository(db *gorm.DB) ProblemRepository {
	return &problemRepository{db: db}
}

type problemRepository struct {
	db *gorm.DB
}

func (r *problemRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.Problem, error) {
	var problems []models.Problem
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&problems).Error
	if err != nil {
		return nil, err
	}
	return problems, nil
}

func (r *problemRepository) GetByID(ctx context.Context, id uint) (models.Problem, error) {
	var problem models.Problem
	if err := r.db.WithContext(ctx).First(&problem, id).Error; err != nil {
		return models.Problem{}, err
	}
	return problem, nil
}

func (r *problemRepository) Create(ctx context.Context, problem *models.Problem) error {
	return r.db.WithContext(ctx).Create(problem).Error
}

func (r *problemRepository) Update(ctx context.Context, id uint, categoryID uint, title, description string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Problem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"category_id": categoryID, "title": title, "description": description})
	return result.RowsAffected, result.Error
}
