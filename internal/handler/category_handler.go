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

// CategoryHandler exposes the category endpoints, including the nested
// problem listing and creation.
type CategoryHandler struct {
	service   service.CategoryService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCategoryHandler constructs the handler.
func NewCategoryHandler(service service.CategoryService, validator *validator.Validate, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "category_handler").Logger(),
	}
}

// RegisterPublic wires the read endpoints.
func (h *CategoryHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Get("/:id/problems", h.problems)
}

// RegisterInstructor wires the mutation endpoints; the router guards them
// with the instructor gate.
func (h *CategoryHandler) RegisterInstructor(router fiber.Router) {
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Post("/:id/problems", h.createProblem)
}

func (h *CategoryHandler) list(c *fiber.Ctx) error {
	expand := dto.ParseExpand(c.Query("expand"), dto.ExpandProblems)

	categories, err := h.service.List(c.Context(), expand)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, categories)
}

func (h *CategoryHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	expand := dto.ParseExpand(c.Query("expand"), dto.ExpandProblems)

	category, err := h.service.Get(c.Context(), id, expand)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, category)
}

func (h *CategoryHandler) problems(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	problems, err := h.service.Problems(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, problems)
}

func (h *CategoryHandler) create(c *fiber.Ctx) error {
	var payload dto.CategoryRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	category, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusCreated, category)
}

func (h *CategoryHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	var payload dto.CategoryRequest
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

func (h *CategoryHandler) createProblem(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	var payload dto.ProblemCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	problem, err := h.service.CreateProblem(c.Context(), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusCreated, problem)
}

func (h *CategoryHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		return utils.SendStatus(c, fiber.StatusNotFound)
	case isValidationError(err):
		return utils.SendStatus(c, fiber.StatusBadRequest)
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg("category operation failed")
		return utils.SendStatus(c, fiber.StatusInternalServerError)
	}
}
