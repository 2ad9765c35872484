package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-issue-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Users      *handlers.UsersHandler
	Issues     *handlers.IssuesHandler
	Gov        *handlers.GovHandler
	UploadsDir string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/signup", cfg.Users.Signup)
	app.Post("/login", cfg.Users.Login)

	app.Post("/report", cfg.Issues.Report)
	app.Get("/my-issues", cfg.Issues.MyIssues)
	app.Delete("/issue/:id", cfg.Issues.Delete)

	gov := app.Group("/gov")
	gov.Get("/issues", cfg.Gov.ListIssues)
	gov.Put("/issue/:id", cfg.Gov.ResolveIssue)

	// stored attachments are served back verbatim by filename
	app.Static("/uploads", cfg.UploadsDir)
}
