package service

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pidgeonhole/rookery-api/internal/dto"
	"github.com/pidgeonhole/rookery-api/internal/models"
	"github.com/pidgeonhole/rookery-api/internal/repository"
)

// ErrProblemNotFound indicates the referenced problem does not exist.
var ErrProblemNotFound = errors.New("problem not found")

// ProblemService exposes problem operations, including the nested test-case
// endpoints and the per-problem standings.
type ProblemService interface {
	Get(ctx context.Context, id uint) (dto.ProblemResponse, error)
	TestCases(ctx context.Context, problemID uint) ([]dto.TestCaseResponse, error)
	Leaderboard(ctx context.Context, problemID uint) ([]dto.LeaderboardEntry, error)
	Update(ctx context.Context, id uint, payload dto.ProblemUpdateRequest) error
	CreateTestCases(ctx context.Context, problemID uint, payloads []dto.TestCaseCreateRequest) ([]dto.TestCaseResponse, error)
}

type problemService struct {
	problems    repository.ProblemRepository
	testCases   repository.TestCaseRepository
	submissions repository.SubmissionRepository
	basePath    string
	logger      zerolog.Logger
}

// NewProblemService constructs the problem service.
func NewProblemService(problems repository.ProblemRepository, testCases repository.TestCaseRepository, submissions repository.SubmissionRepository, basePath string, logger zerolog.Logger) ProblemService {
	return &problemService{
		problems:    problems,
		testCases:   testCases,
		submissions: submissions,
		basePath:    basePath,
		logger:      logger.With().Str("component", "problem_service").Logger(),
	}
}

func (s *problemService) Get(ctx context.Context, id uint) (dto.ProblemResponse, error) {
	problem, err := s.problems.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProblemResponse{}, ErrProblemNotFound
		}
		return dto.ProblemResponse{}, err
	}

	return dto.NewProblemResponse(problem, s.basePath), nil
}

// TestCases lists a problem's test cases; a problem with none yields an empty
// list, a missing problem yields ErrProblemNotFound.
func (s *problemService) TestCases(ctx context.Context, problemID uint) ([]dto.TestCaseResponse, error) {
	if err := s.requireProblem(ctx, problemID); err != nil {
		return nil, err
	}

	testCases, err := s.testCases.ListByProblem(ctx, problemID)
	if err != nil {
		return nil, err
	}

	return dto.NewTestCaseResponses(testCases), nil
}

// Leaderboard returns each submitter's best submission for the problem,
// ordered by tests passed (descending) and then by earliest receipt.
func (s *problemService) Leaderboard(ctx context.Context, problemID uint) ([]dto.LeaderboardEntry, error) {
	if err := s.requireProblem(ctx, problemID); err != nil {
		return nil, err
	}

	submissions, err := s.submissions.ListByProblem(ctx, problemID)
	if err != nil {
		return nil, err
	}

	best := map[string]models.Submission{}
	for _, submission := range submissions {
		current, seen := best[submission.Name]
		if !seen || passedCount(submission) > passedCount(current) {
			best[submission.Name] = submission
		}
	}

	entries := make([]dto.LeaderboardEntry, 0, len(best))
	for _, submission := range best {
		entries = append(entries, dto.NewLeaderboardEntry(submission))
	}

	sort.Slice(entries, func(i, j int) bool {
		pi, pj := intOrZero(entries[i].TestsPassed), intOrZero(entries[j].TestsPassed)
		if pi != pj {
			return pi > pj
		}
		return entries[i].TimeReceived.Before(entries[j].TimeReceived)
	})

	return entries, nil
}

func (s *problemService) Update(ctx context.Context, id uint, payload dto.ProblemUpdateRequest) error {
	affected, err := s.problems.Update(ctx, id, payload.CategoryID, payload.Title, payload.Description)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrCategoryNotFound
		}
		return err
	}
	if affected == 0 {
		return ErrProblemNotFound
	}
	return nil
}

func (s *problemService) CreateTestCases(ctx context.Context, problemID uint, payloads []dto.TestCaseCreateRequest) ([]dto.TestCaseResponse, error) {
	testCases := make([]*models.TestCase, 0, len(payloads))
	for _, payload := range payloads {
		testCases = append(testCases, &models.TestCase{
			ProblemID: problemID,
			Input:     payload.Input,
			Output:    payload.Output,
			Types:     payload.Types,
		})
	}

	if err := s.testCases.Create(ctx, testCases); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrProblemNotFound
		}
		return nil, err
	}

	responses := make([]dto.TestCaseResponse, 0, len(testCases))
	for _, testCase := range testCases {
		responses = append(responses, dto.NewTestCaseResponse(*testCase))
	}
	return responses, nil
}

func (s *problemService) requireProblem(ctx context.Context, problemID uint) error {
	if _, err := s.problems.GetByID(ctx, problemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProblemNotFound
		}
		return err
	}
	return nil
}

func passedCount(submission models.Submission) int {
	return intOrZero(submission.TestsPassed)
}

func intOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
