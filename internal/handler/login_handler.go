package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/pidgeonhole/rookery-api/internal/dto"
	"github.com/pidgeonhole/rookery-api/internal/utils"
	"github.com/pidgeonhole/rookery-api/pkg/identity"
)

// LoginHandler proxies credential logins to the identity provider. A login
// succeeds only when the account belongs to the group matching the endpoint,
// so a student cannot obtain a token through the instructor door.
type LoginHandler struct {
	client    identity.Client
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewLoginHandler constructs the handler.
func NewLoginHandler(client identity.Client, validator *validator.Validate, logger zerolog.Logger) *LoginHandler {
	return &LoginHandler{
		client:    client,
		validator: validator,
		logger:    logger.With().Str("component", "login_handler").Logger(),
	}
}

// Register wires the login endpoints.
func (h *LoginHandler) Register(router fiber.Router) {
	router.Post("/instructor", h.login("instructors"))
	router.Post("/student", h.login("students"))
}

func (h *LoginHandler) login(group string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload dto.LoginRequest
		if err := c.BodyParser(&payload); err != nil {
			return utils.SendStatus(c, fiber.StatusBadRequest)
		}
		if err := h.validator.Struct(payload); err != nil {
			return utils.SendStatus(c, fiber.StatusBadRequest)
		}

		token, err := h.client.Login(c.Context(), payload.UserID, payload.Password)
		if err != nil {
			return utils.SendStatus(c, fiber.StatusUnauthorized)
		}

		account, err := h.client.Introspect(c.Context(), token.AccessToken)
		if err != nil || !account.InGroup(group) {
			return utils.SendStatus(c, fiber.StatusUnauthorized)
		}

		return utils.SendJSON(c, fiber.StatusOK, dto.NewTokenResponse(token))
	}
}
