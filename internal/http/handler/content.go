package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gnapi/internal/model"
	"gnapi/internal/service"
)

// APIRoot godoc
// @Summary  API banner
// @Tags     meta
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /api/ [get]
func APIRoot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "GN Management API"})
	}
}

// ListTeam godoc
// @Summary  List leadership team
// @Tags     team
// @Produce  json
// @Success  200  {array}   model.TeamMember
// @Failure  500  {object}  errorPayload
// @Router   /api/team [get]
func ListTeam(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListTeam(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(items)
	}
}

// ListProjects godoc
// @Summary      List portfolio projects
// @Description  Optional exact category filter and case-insensitive name/address search. An unknown category matches nothing.
// @Tags         projects
// @Produce      json
// @Param        category  query     string  false  "Project category"  Enums(Featured, Upcoming, Under Construction, Completed, Affordable Housing)
// @Param        q         query     string  false  "Search in name and address"
// @Success      200       {array}   model.Project
// @Failure      500       {object}  errorPayload
// @Router       /api/projects [get]
func ListProjects(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListProjects(c.UserContext(), service.ProjectFilter{
			Category: c.Query("category"),
			Search:   c.Query("q"),
		})
		if err != nil {
			return err
		}
		return c.JSON(items)
	}
}

// GetProject godoc
// @Summary  Get a project
// @Tags     projects
// @Produce  json
// @Param    id   path      string  true  "Project ID"
// @Success  200  {object}  model.Project
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Router   /api/projects/{id} [get]
func GetProject(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !model.ValidContentID(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		p, err := svc.GetProject(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "project not found")
			}
			return err
		}
		return c.JSON(p)
	}
}

// ListNews godoc
// @Summary  List news articles, newest first
// @Tags     news
// @Produce  json
// @Success  200  {array}   model.NewsArticle
// @Failure  500  {object}  errorPayload
// @Router   /api/news [get]
func ListNews(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListNews(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(items)
	}
}

// GetArticle godoc
// @Summary  Get a news article
// @Tags     news
// @Produce  json
// @Param    id   path      string  true  "Article ID"
// @Success  200  {object}  model.NewsArticle
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Router   /api/news/{id} [get]
func GetArticle(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !model.ValidContentID(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		a, err := svc.GetArticle(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "article not found")
			}
			return err
		}
		return c.JSON(a)
	}
}
