package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pidgeonhole/rookery-api/internal/dto"
	"github.com/pidgeonhole/rookery-api/internal/models"
	"github.com/pidgeonhole/rookery-api/internal/repository"
	"github.com/pidgeonhole/rookery-api/pkg/owl"
)

// SubmissionService runs the grading workflow: record the submission, ship
// it to the judge with the problem's test cases, persist the verdict.
type SubmissionService interface {
	Submit(ctx context.Context, problemID uint, payload dto.SubmissionRequest) (dto.SubmissionResultResponse, error)
}

type submissionService struct {
	submissions repository.SubmissionRepository
	testCases   repository.TestCaseRepository
	judge       owl.Client
	validator   *validator.Validate
	debug       bool
	logger      zerolog.Logger
}

// NewSubmissionService constructs the submission service. The debug flag is
// forwarded verbatim on every judge job.
func NewSubmissionService(submissions repository.SubmissionRepository, testCases repository.TestCaseRepository, judge owl.Client, validate *validator.Validate, debug bool, logger zerolog.Logger) SubmissionService {
	return &submissionService{
		submissions: submissions,
		testCases:   testCases,
		judge:       judge,
		validator:   validate,
		debug:       debug,
		logger:      logger.With().Str("component", "submission_service").Logger(),
	}
}

// Submit records the submission before anything else so that a received
// answer is never lost, then grades it. A failure after the insert leaves
// the row permanently ungraded; there is no retry and no failed state.
func (s *submissionService) Submit(ctx context.Context, problemID uint, payload dto.SubmissionRequest) (dto.SubmissionResultResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubmissionResultResponse{}, err
	}

	submission := models.Submission{
		ProblemID:  problemID,
		Name:       payload.Name,
		Language:   payload.Language,
		SourceCode: payload.SourceCode,
	}

	if err := s.submissions.Create(ctx, &submission); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return dto.SubmissionResultResponse{}, ErrProblemNotFound
		}
		return dto.SubmissionResultResponse{}, err
	}

	testCases, err := s.testCases.ListByProblem(ctx, problemID)
	if err != nil {
		return dto.SubmissionResultResponse{}, fmt.Errorf("load test cases: %w", err)
	}

	job := owl.Job{
		Language:   payload.Language,
		SourceCode: payload.SourceCode,
		TestCases:  dto.NewJudgeTestCases(testCases),
		Debug:      s.debug,
	}

	result, err := s.judge.NewJob(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).
			Uint("submission_id", submission.ID).
			Uint("problem_id", problemID).
			Msg("judge call failed, submission left ungraded")
		return dto.SubmissionResultResponse{}, fmt.Errorf("grade submission: %w", err)
	}

	affected, err := s.submissions.SetResult(ctx, submission.ID, result.NumTests, result.TestsPassed, result.TestsFailed, result.TestsErrored)
	if err != nil {
		return dto.SubmissionResultResponse{}, fmt.Errorf("record result: %w", err)
	}
	if affected == 0 {
		return dto.SubmissionResultResponse{}, fmt.Errorf("record result: submission %d vanished", submission.ID)
	}

	return dto.NewSubmissionResultResponse(submission, result), nil
}
