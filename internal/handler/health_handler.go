package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pidgeonhole/rookery-api/internal/config"
	"github.com/pidgeonhole/rookery-api/internal/utils"
)

// APIVersion is the version string reported by the version endpoint.
const APIVersion = "3.3.0"

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
}

// HealthCheck returns a handler that reports application health information.
func HealthCheck(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
		}

		return utils.SendJSON(c, fiber.StatusOK, payload)
	}
}

// Version returns a handler that reports the API version as plain text.
func Version() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Type("txt")
		return c.SendString(APIVersion)
	}
}
