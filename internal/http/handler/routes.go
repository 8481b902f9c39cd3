package handler

import (
	"github.com/gofiber/fiber/v2"

	"gnapi/internal/service"
)

// Deps are the collaborators the HTTP layer is wired with.
type Deps struct {
	Pinger  Pinger
	Content service.ContentService
	Leads   service.LeadService
	// ContactLimiter throttles POST /api/contact; nil leaves it unthrottled.
	ContactLimiter fiber.Handler
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.Pinger))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/", APIRoot())
	api.Get("/team", ListTeam(d.Content))
	api.Get("/projects", ListProjects(d.Content))
	api.Get("/projects/:id", GetProject(d.Content))
	api.Get("/news", ListNews(d.Content))
	api.Get("/news/:id", GetArticle(d.Content))

	contact := []fiber.Handler{}
	if d.ContactLimiter != nil {
		contact = append(contact, d.ContactLimiter)
	}
	contact = append(contact, SubmitContact(d.Leads))
	api.Post("/contact", contact...)
}
