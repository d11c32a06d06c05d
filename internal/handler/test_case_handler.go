package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/pidgeonhole/rookery-api/internal/dto"
	"github.com/pidgeonhole/rookery-api/internal/service"
	"github.com/pidgeonhole/rookery-api/internal/utils"
)

// TestCaseHandler exposes the standalone test-case endpoints.
type TestCaseHandler struct {
	service   service.TestCaseService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewTestCaseHandler constructs the handler.
func NewTestCaseHandler(service service.TestCaseService, validator *validator.Validate, logger zerolog.Logger) *TestCaseHandler {
	return &TestCaseHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "test_case_handler").Logger(),
	}
}

// RegisterPublic wires the read endpoint.
func (h *TestCaseHandler) RegisterPublic(router fiber.Router) {
	router.Get("/:id", h.get)
}

// RegisterInstructor wires the mutation endpoint; the router guards it with
// the instructor gate.
func (h *TestCaseHandler) RegisterInstructor(router fiber.Router) {
	router.Put("/:id", h.update)
}

func (h *TestCaseHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	testCase, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, testCase)
}

func (h *TestCaseHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	var payload dto.TestCaseUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	if err := h.service.Update(c.Context(), id, payload); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendStatus(c, fiber.StatusOK)
}

func (h *TestCaseHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrTestCaseNotFound), errors.Is(err, service.ErrProblemNotFound):
		return utils.SendStatus(c, fiber.StatusNotFound)
	case isValidationError(err):
		return utils.SendStatus(c, fiber.StatusBadRequest)
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg("test case operation failed")
		return utils.SendStatus(c, fiber.StatusInternalServerError)
	}
}
