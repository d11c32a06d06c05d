package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pidgeonhole/rookery-api/internal/dto"
	"github.com/pidgeonhole/rookery-api/internal/repository"
)

// ErrTestCaseNotFound indicates the referenced test case does not exist.
var ErrTestCaseNotFound = errors.New("test case not found")

// TestCaseService exposes the standalone test-case operations. Creation is
// nested under problems and lives on ProblemService.
type TestCaseService interface {
	Get(ctx context.Context, id uint) (dto.TestCaseResponse, error)
	Update(ctx context.Context, id uint, payload dto.TestCaseUpdateRequest) error
}

type testCaseService struct {
	testCases repository.TestCaseRepository
	logger    zerolog.Logger
}

// NewTestCaseService constructs the test case service.
func NewTestCaseService(testCases repository.TestCaseRepository, logger zerolog.Logger) TestCaseService {
	return &testCaseService{
		testCases: testCases,
		logger:    logger.With().Str("component", "test_case_service").Logger(),
	}
}

func (s *testCaseService) Get(ctx context.Context, id uint) (dto.TestCaseResponse, error) {
	testCase, err := s.testCases.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TestCaseResponse{}, ErrTestCaseNotFound
		}
		return dto.TestCaseResponse{}, err
	}

	return dto.NewTestCaseResponse(testCase), nil
}

func (s *testCaseService) Update(ctx context.Context, id uint, payload dto.TestCaseUpdateRequest) error {
	affected, err := s.testCases.Update(ctx, id, payload.ProblemID, payload.Input, payload.Output, payload.Types)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrProblemNotFound
		}
		return err
	}
	if affected == 0 {
		return ErrTestCaseNotFound
	}
	return nil
}
