package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pidgeonhole/rookery-api/internal/config"
	"github.com/pidgeonhole/rookery-api/internal/handler"
	"github.com/pidgeonhole/rookery-api/internal/middleware"
	"github.com/pidgeonhole/rookery-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	CategoryHandler *handler.CategoryHandler
	ProblemHandler  *handler.ProblemHandler
	TestCaseHandler *handler.TestCaseHandler
	EventHandler    *handler.EventHandler
	LoginHandler    *handler.LoginHandler
	AuthMiddleware  fiber.Handler
}

// Register wires the HTTP routes into the fiber application. Reads and
// submission intake are public; mutations of the problem bank sit behind the
// identity gate plus instructor group membership.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group(cfg.BasePath, func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})

	api.Get("/version", handler.Version())
	api.Get("/healthz", handler.HealthCheck(cfg))

	if deps.LoginHandler != nil {
		deps.LoginHandler.Register(api.Group("/login"))
	}

	authenticate := deps.AuthMiddleware
	if authenticate == nil {
		authenticate = func(c *fiber.Ctx) error { return c.Next() }
	}
	instructorsOnly := middleware.RequireGroup("instructors")

	if deps.CategoryHandler != nil {
		deps.CategoryHandler.RegisterPublic(api.Group("/categories"))
		deps.CategoryHandler.RegisterInstructor(api.Group("/categories", authenticate, instructorsOnly))
	}

	if deps.ProblemHandler != nil {
		deps.ProblemHandler.RegisterPublic(api.Group("/problems"))
		deps.ProblemHandler.RegisterInstructor(api.Group("/problems", authenticate, instructorsOnly))
	}

	if deps.TestCaseHandler != nil {
		deps.TestCaseHandler.RegisterPublic(api.Group("/test-cases"))
		deps.TestCaseHandler.RegisterInstructor(api.Group("/test-cases", authenticate, instructorsOnly))
	}

	if deps.EventHandler != nil {
		deps.EventHandler.Register(api.Group("/events"))
	}
}
