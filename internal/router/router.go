package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/profboard/profboard-go-api/internal/config"
	"github.com/profboard/profboard-go-api/internal/handler"
	"github.com/profboard/profboard-go-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AssistantHandler    *handler.AssistantHandler
	StudentHandler      *handler.StudentHandler
	AssignmentHandler   *handler.AssignmentHandler
	ScheduleHandler     *handler.ScheduleHandler
	AttendanceHandler   *handler.AttendanceHandler
	NotificationHandler *handler.NotificationHandler
	DashboardHandler    *handler.DashboardHandler
	JWTMiddleware       fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	// The assistant is reachable without a bearer token; its scoping key travels
	// in the request body and enrichment simply degrades when it is absent.
	if deps.AssistantHandler != nil {
		deps.AssistantHandler.Register(api.Group("/assistant"))
	}

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students", jwtMiddleware))
	}

	if deps.AssignmentHandler != nil {
		deps.AssignmentHandler.Register(api.Group("/assignments", jwtMiddleware))
	}

	if deps.ScheduleHandler != nil {
		deps.ScheduleHandler.Register(api.Group("/schedule", jwtMiddleware))
	}

	if deps.AttendanceHandler != nil {
		deps.AttendanceHandler.Register(api.Group("/attendance", jwtMiddleware))
	}

	if deps.NotificationHandler != nil {
		deps.NotificationHandler.Register(api.Group("/notifications", jwtMiddleware))
	}

	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(api.Group("/dashboard", jwtMiddleware))
	}
}
