package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trackademic/trackademic-api/internal/config"
	"github.com/trackademic/trackademic-api/internal/handler"
	"github.com/trackademic/trackademic-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ClassHandler       *handler.ClassHandler
	AssignmentHandler  *handler.AssignmentHandler
	SemesterHandler    *handler.SemesterHandler
	RequirementHandler *handler.RequirementHandler
	WeightHandler      *handler.WeightHandler
	ProfileHandler     *handler.ProfileHandler
	NoteHandler        *handler.NoteHandler
	TodoHandler        *handler.TodoHandler
	CareerHandler      *handler.CareerHandler
	GradebookHandler   *handler.GradebookHandler
	DegreeHandler      *handler.DegreeHandler
	DashboardHandler   *handler.DashboardHandler
	JWTMiddleware      fiber.Handler
	RateLimiter        fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	protected := api.Group("", jwtMiddleware)
	if deps.RateLimiter != nil {
		protected.Use(deps.RateLimiter)
	}

	if deps.ClassHandler != nil {
		deps.ClassHandler.Register(protected.Group("/classes"))
	}
	if deps.AssignmentHandler != nil {
		deps.AssignmentHandler.Register(protected.Group("/assignments"))
	}
	if deps.SemesterHandler != nil {
		deps.SemesterHandler.Register(protected.Group("/semesters"))
	}
	if deps.RequirementHandler != nil {
		deps.RequirementHandler.Register(protected.Group("/requirements"))
	}
	if deps.WeightHandler != nil {
		deps.WeightHandler.Register(protected.Group("/weights"))
	}
	if deps.ProfileHandler != nil {
		deps.ProfileHandler.Register(protected.Group("/profile"))
	}
	if deps.NoteHandler != nil {
		deps.NoteHandler.Register(protected.Group("/notes"))
	}
	if deps.TodoHandler != nil {
		deps.TodoHandler.Register(protected.Group("/todos"))
	}
	if deps.CareerHandler != nil {
		deps.CareerHandler.Register(protected.Group("/applications"))
	}
	if deps.GradebookHandler != nil {
		deps.GradebookHandler.Register(protected.Group("/gradebook"))
	}
	if deps.DegreeHandler != nil {
		deps.DegreeHandler.Register(protected.Group("/degree"))
	}
	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(protected.Group("/dashboard"))
	}
}
