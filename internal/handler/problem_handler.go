package handler

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/pidgeonhole/rookery-api/internal/dto"
	"github.com/pidgeonhole/rookery-api/internal/service"
	"github.com/pidgeonhole/rookery-api/internal/utils"
)

// ProblemHandler exposes the problem endpoints, including the nested
// test-case endpoints, the standings, and submission grading.
type ProblemHandler struct {
	problems    service.ProblemService
	submissions service.SubmissionService
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewProblemHandler constructs the handler.
func NewProblemHandler(problems service.ProblemService, submissions service.SubmissionService, validator *validator.Validate, logger zerolog.Logger) *ProblemHandler {
	return &ProblemHandler{
		problems:    problems,
		submissions: submissions,
		validator:   validator,
		logger:      logger.With().Str("component", "problem_handler").Logger(),
	}
}

// RegisterPublic wires the read endpoints and submission intake.
func (h *ProblemHandler) RegisterPublic(router fiber.Router) {
	router.Get("/:id", h.get)
	router.Get("/:id/test-cases", h.testCases)
	router.Get("/:id/submissions", h.leaderboard)
	router.Post("/:id/submissions", h.submit)
}

// RegisterInstructor wires the mutation endpoints; the router guards them
// with the instructor gate.
func (h *ProblemHandler) RegisterInstructor(router fiber.Router) {
	router.Put("/:id", h.update)
	router.Post("/:id/test-cases", h.createTestCases)
}

func (h *ProblemHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	problem, err := h.problems.Get(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, problem)
}

func (h *ProblemHandler) testCases(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	testCases, err := h.problems.TestCases(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, testCases)
}

func (h *ProblemHandler) leaderboard(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	entries, err := h.problems.Leaderboard(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, entries)
}

func (h *ProblemHandler) submit(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	var payload dto.SubmissionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	result, err := h.submissions.Submit(c.Context(), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusCreated, result)
}

func (h *ProblemHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	var payload dto.ProblemUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	if err := h.problems.Update(c.Context(), id, payload); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendStatus(c, fiber.StatusOK)
}

// createTestCases accepts either a single test-case object or an array of
// them; the array form is inserted in one statement.
func (h *ProblemHandler) createTestCases(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	payloads, err := h.parseTestCaseBody(c.Body())
	if err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	created, err := h.problems.CreateTestCases(c.Context(), id, payloads)
	if err != nil {
		return h.handleError(c, err)
	}

	if len(created) == 1 {
		return utils.SendJSON(c, fiber.StatusCreated, created[0])
	}
	return utils.SendJSON(c, fiber.StatusCreated, created)
}

func (h *ProblemHandler) parseTestCaseBody(body []byte) ([]dto.TestCaseCreateRequest, error) {
	var single dto.TestCaseCreateRequest
	if err := json.Unmarshal(body, &single); err == nil {
		if err := h.validator.Struct(single); err == nil {
			return []dto.TestCaseCreateRequest{single}, nil
		}
	}

	var many []dto.TestCaseCreateRequest
	if err := json.Unmarshal(body, &many); err != nil {
		return nil, err
	}
	if len(many) == 0 {
		return nil, errors.New("empty test case list")
	}
	for _, payload := range many {
		if err := h.validator.Struct(payload); err != nil {
			return nil, err
		}
	}
	return many, nil
}

func (h *ProblemHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrProblemNotFound), errors.Is(err, service.ErrCategoryNotFound):
		return utils.SendStatus(c, fiber.StatusNotFound)
	case isValidationError(err):
		return utils.SendStatus(c, fiber.StatusBadRequest)
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg("problem operation failed")
		return utils.SendStatus(c, fiber.StatusInternalServerError)
	}
}
