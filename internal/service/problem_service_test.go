package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pidgeonhole/rookery-api/internal/dto"
	"github.com/pidgeonhole/rookery-api/internal/models"
)

func intPtr(value int) *int {
	return &value
}

func newProblemService(problems *stubProblemRepo, testCases *stubTestCaseRepo, submissions *stubSubmissionRepo) ProblemService {
	return NewProblemService(problems, testCases, submissions, "/api/v3", zerolog.Nop())
}

func TestProblemServiceGetMissingProblem(t *testing.T) {
	svc := newProblemService(&stubProblemRepo{}, &stubTestCaseRepo{}, &stubSubmissionRepo{})

	_, err := svc.Get(context.Background(), 42)
	require.ErrorIs(t, err, ErrProblemNotFound)
}

func TestProblemServiceTestCasesMissingProblem(t *testing.T) {
	svc := newProblemService(&stubProblemRepo{}, &stubTestCaseRepo{}, &stubSubmissionRepo{})

	_, err := svc.TestCases(context.Background(), 42)
	require.ErrorIs(t, err, ErrProblemNotFound)
}

func TestProblemServiceTestCasesEmptyProblem(t *testing.T) {
	problems := &stubProblemRepo{problems: []models.Problem{{ID: 1, CategoryID: 1, Title: "t", Description: "d"}}}
	svc := newProblemService(problems, &stubTestCaseRepo{}, &stubSubmissionRepo{})

	responses, err := svc.TestCases(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, responses)
	require.Empty(t, responses)
}

func TestProblemServiceLeaderboardKeepsBestPerName(t *testing.T) {
	problems := &stubProblemRepo{problems: []models.Problem{{ID: 1, CategoryID: 1, Title: "t", Description: "d"}}}
	base := time.Date(2017, 2, 1, 12, 0, 0, 0, time.UTC)
	submissions := &stubSubmissionRepo{listed: []models.Submission{
		{ID: 1, ProblemID: 1, Name: "ada", TimeReceived: base, TestsPassed: intPtr(1)},
		{ID: 2, ProblemID: 1, Name: "ada", TimeReceived: base.Add(time.Minute), TestsPassed: intPtr(3)},
		{ID: 3, ProblemID: 1, Name: "grace", TimeReceived: base.Add(2 * time.Minute), TestsPassed: intPtr(3)},
		{ID: 4, ProblemID: 1, Name: "linus", TimeReceived: base.Add(3 * time.Minute)},
	}}
	svc := newProblemService(problems, &stubTestCaseRepo{}, submissions)

	entries, err := svc.Leaderboard(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Ties on tests passed break on the earlier submission.
	require.Equal(t, "ada", entries[0].Name)
	require.Equal(t, uint(2), entries[0].ID)
	require.Equal(t, "grace", entries[1].Name)

	// An ungraded submission ranks last with null counts.
	require.Equal(t, "linus", entries[2].Name)
	require.Nil(t, entries[2].TestsPassed)
}

func TestProblemServiceLeaderboardMissingProblem(t *testing.T) {
	svc := newProblemService(&stubProblemRepo{}, &stubTestCaseRepo{}, &stubSubmissionRepo{})

	_, err := svc.Leaderboard(context.Background(), 42)
	require.ErrorIs(t, err, ErrProblemNotFound)
}

func TestProblemServiceUpdateMissingProblem(t *testing.T) {
	svc := newProblemService(&stubProblemRepo{updateRows: 0}, &stubTestCaseRepo{}, &stubSubmissionRepo{})

	err := svc.Update(context.Background(), 42, dto.ProblemUpdateRequest{CategoryID: 1, Title: "t", Description: "d"})
	require.ErrorIs(t, err, ErrProblemNotFound)
}

func TestProblemServiceUpdateMissingCategory(t *testing.T) {
	svc := newProblemService(&stubProblemRepo{updateErr: gorm.ErrForeignKeyViolated}, &stubTestCaseRepo{}, &stubSubmissionRepo{})

	err := svc.Update(context.Background(), 1, dto.ProblemUpdateRequest{CategoryID: 42, Title: "t", Description: "d"})
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestProblemServiceCreateTestCasesMissingProblem(t *testing.T) {
	testCases := &stubTestCaseRepo{createErr: gorm.ErrForeignKeyViolated}
	svc := newProblemService(&stubProblemRepo{}, testCases, &stubSubmissionRepo{})

	_, err := svc.CreateTestCases(context.Background(), 42, []dto.TestCaseCreateRequest{
		{Input: "1", Output: "1", Types: "int"},
	})
	require.ErrorIs(t, err, ErrProblemNotFound)
}
