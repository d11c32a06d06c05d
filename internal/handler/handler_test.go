package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pidgeonhole/rookery-api/internal/handler"
	"github.com/pidgeonhole/rookery-api/internal/models"
	"github.com/pidgeonhole/rookery-api/internal/repository"
	"github.com/pidgeonhole/rookery-api/internal/service"
	"github.com/pidgeonhole/rookery-api/pkg/owl"
)

const testBasePath = "/api/v3"

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
}

// newTestEnv stands up the full handler stack on an in-memory database. The
// judge defaults to one that grades everything as passed; tests that care
// about the judge swap it via the option.
func newTestEnv(t *testing.T, opts ...func(*envConfig)) testEnv {
	t.Helper()

	cfg := envConfig{judge: allPassJudge{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Problem{}, &models.TestCase{}, &models.Submission{}, &models.Event{}))

	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.Nop()

	categoryRepo := repository.NewCategoryRepository(db)
	problemRepo := repository.NewProblemRepository(db)
	testCaseRepo := repository.NewTestCaseRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	eventRepo := repository.NewEventRepository(db)

	categoryService := service.NewCategoryService(categoryRepo, problemRepo, nil, time.Minute, testBasePath, logger)
	problemService := service.NewProblemService(problemRepo, testCaseRepo, submissionRepo, testBasePath, logger)
	testCaseService := service.NewTestCaseService(testCaseRepo, logger)
	submissionService := service.NewSubmissionService(submissionRepo, testCaseRepo, cfg.judge, validate, false, logger)
	eventService := service.NewEventService(eventRepo, logger)

	categoryHandler := handler.NewCategoryHandler(categoryService, validate, logger)
	problemHandler := handler.NewProblemHandler(problemService, submissionService, validate, logger)
	testCaseHandler := handler.NewTestCaseHandler(testCaseService, validate, logger)
	eventHandler := handler.NewEventHandler(eventService, validate, logger)

	app := fiber.New()
	categoryHandler.RegisterPublic(app.Group(testBasePath + "/categories"))
	categoryHandler.RegisterInstructor(app.Group(testBasePath + "/categories"))
	problemHandler.RegisterPublic(app.Group(testBasePath + "/problems"))
	problemHandler.RegisterInstructor(app.Group(testBasePath + "/problems"))
	testCaseHandler.RegisterPublic(app.Group(testBasePath + "/test-cases"))
	testCaseHandler.RegisterInstructor(app.Group(testBasePath + "/test-cases"))
	eventHandler.Register(app.Group(testBasePath + "/events"))

	return testEnv{app: app, db: db}
}

type envConfig struct {
	judge owl.Client
}

func withJudge(judge owl.Client) func(*envConfig) {
	return func(cfg *envConfig) {
		cfg.judge = judge
	}
}

// allPassJudge grades every test case as passed without leaving the process.
type allPassJudge struct{}

func (allPassJudge) NewJob(ctx context.Context, job owl.Job) (owl.Result, error) {
	passed := len(job.TestCases)
	return owl.Result{NumTests: passed, TestsPassed: passed}, nil
}

// downJudge simulates an unreachable judge.
type downJudge struct{}

func (downJudge) NewJob(ctx context.Context, job owl.Job) (owl.Result, error) {
	return owl.Result{}, errors.New("connection refused")
}

func (env testEnv) request(t *testing.T, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(body, target))
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return body
}
