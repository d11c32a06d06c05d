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

// EventHandler exposes the event endpoints.
type EventHandler struct {
	service   service.EventService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewEventHandler constructs the handler.
func NewEventHandler(service service.EventService, validator *validator.Validate, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "event_handler").Logger(),
	}
}

// Register wires the event endpoints.
func (h *EventHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
}

func (h *EventHandler) list(c *fiber.Ctx) error {
	events, err := h.service.List(c.Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, events)
}

func (h *EventHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	event, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, event)
}

func (h *EventHandler) create(c *fiber.Ctx) error {
	var payload dto.EventRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendStatus(c, fiber.StatusBadRequest)
	}

	event, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusCreated, event)
}

func (h *EventHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		return utils.SendStatus(c, fiber.StatusNotFound)
	case isValidationError(err):
		return utils.SendStatus(c, fiber.StatusBadRequest)
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg("event operation failed")
		return utils.SendStatus(c, fiber.StatusInternalServerError)
	}
}
