package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pidgeonhole/rookery-api/internal/dto"
	"github.com/pidgeonhole/rookery-api/internal/models"
	"github.com/pidgeonhole/rookery-api/internal/repository"
)

// ErrCategoryNotFound indicates the referenced category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

const categoryListCacheKey = "categories:list"

// CategoryService exposes category operations, including the nested
// problem-creation endpoint.
type CategoryService interface {
	List(ctx context.Context, expand dto.ExpandSet) ([]dto.CategoryResponse, error)
	Get(ctx context.Context, id uint, expand dto.ExpandSet) (dto.CategoryResponse, error)
	Problems(ctx context.Context, categoryID uint) ([]dto.ProblemResponse, error)
	Create(ctx context.Context, payload dto.CategoryRequest) (dto.CategoryResponse, error)
	Update(ctx context.Context, id uint, payload dto.CategoryRequest) error
	CreateProblem(ctx context.Context, categoryID uint, payload dto.ProblemCreateRequest) (dto.ProblemResponse, error)
}

type categoryService struct {
	categories repository.CategoryRepository
	problems   repository.ProblemRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	basePath   string
	logger     zerolog.Logger
}

// NewCategoryService constructs the category service. The cache client may be
// nil, in which case every listing hits the database.
func NewCategoryService(categories repository.CategoryRepository, problems repository.ProblemRepository, cache *redis.Client, cacheTTL time.Duration, basePath string, logger zerolog.Logger) CategoryService {
	return &categoryService{
		categories: categories,
		problems:   problems,
		cache:      cache,
		cacheTTL:   cacheTTL,
		basePath:   basePath,
		logger:     logger.With().Str("component", "category_service").Logger(),
	}
}

func (s *categoryService) List(ctx context.Context, expand dto.ExpandSet) ([]dto.CategoryResponse, error) {
	categories, err := s.listCategories(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response, err := s.shape(ctx, category, expand)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	return responses, nil
}

func (s *categoryService) Get(ctx context.Context, id uint, expand dto.ExpandSet) (dto.CategoryResponse, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, ErrCategoryNotFound
		}
		return dto.CategoryResponse{}, err
	}

	return s.shape(ctx, category, expand)
}

func (s *categoryService) Problems(ctx context.Context, categoryID uint) ([]dto.ProblemResponse, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	problems, err := s.problems.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	return dto.NewProblemResponses(problems, s.basePath), nil
}

func (s *categoryService) Create(ctx context.Context, payload dto.CategoryRequest) (dto.CategoryResponse, error) {
	category := models.Category{
		Name:        payload.Name,
		Description: payload.Description,
	}

	if err := s.categories.Create(ctx, &category); err != nil {
		return dto.CategoryResponse{}, err
	}

	s.invalidateListing(ctx)
	return dto.NewCategoryResponse(category, s.basePath), nil
}

func (s *categoryService) Update(ctx context.Context, id uint, payload dto.CategoryRequest) error {
	affected, err := s.categories.Update(ctx, id, payload.Name, payload.Description)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *categoryService) CreateProblem(ctx context.Context, categoryID uint, payload dto.ProblemCreateRequest) (dto.ProblemResponse, error) {
	problem := models.Problem{
		CategoryID:  categoryID,
		Title:       payload.Title,
		Description: payload.Description,
	}

	if err := s.problems.Create(ctx, &problem); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return dto.ProblemResponse{}, ErrCategoryNotFound
		}
		return dto.ProblemResponse{}, err
	}

	return dto.NewProblemResponse(problem, s.basePath), nil
}

func (s *categoryService) shape(ctx context.Context, category models.Category, expand dto.ExpandSet) (dto.CategoryResponse, error) {
	if !expand.Has(dto.ExpandProblems) {
		return dto.NewCategoryResponse(category, s.basePath), nil
	}

	problems, err := s.problems.ListByCategory(ctx, category.ID)
	if err != nil {
		return dto.CategoryResponse{}, err
	}

	return dto.NewExpandedCategoryResponse(category, problems, s.basePath), nil
}

// listCategories serves the unexpanded category rows from the cache when it
// is warm; expansion happens afterwards and is never cached.
func (s *categoryService) listCategories(ctx context.Context) ([]models.Category, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, categoryListCacheKey).Result(); err == nil {
			var categories []models.Category
			if unmarshalErr := json.Unmarshal([]byte(cached), &categories); unmarshalErr == nil {
				s.logger.Debug().Msg("category listing cache hit")
				return categories, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read category listing cache")
		}
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(categories); err == nil {
			if err := s.cache.Set(ctx, categoryListCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store category listing cache")
			}
		}
	}

	return categories, nil
}

func (s *categoryService) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, categoryListCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate category listing cache")
	}
}
