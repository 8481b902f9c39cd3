package repository

import (
	"context"
	"errors"

	"gnapi/internal/model"
)

// ErrNotFound is returned by every backend when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Result caps per listing.
const (
	MaxProjects = 1000
	MaxTeam     = 100
	MaxNews     = 100
)

// ProjectQuery narrows a project listing. Zero values mean "no filter".
type ProjectQuery struct {
	// Category matches exactly.
	Category model.ProjectCategory
	// Search matches name or address, case-insensitive substring.
	Search string
}

// TeamRepository persists team members.
type TeamRepository interface {
	// List returns members in curated order (created_at, then id).
	List(ctx context.Context) ([]model.TeamMember, error)
	// Replace swaps the whole collection for members.
	Replace(ctx context.Context, members []model.TeamMember) error
}

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context, q ProjectQuery) ([]model.Project, error)
	FindByID(ctx context.Context, id string) (*model.Project, error)
	Replace(ctx context.Context, projects []model.Project) error
}

// NewsRepository persists news articles. Listings are newest first by Date.
type NewsRepository interface {
	List(ctx context.Context) ([]model.NewsArticle, error)
	FindByID(ctx context.Context, id string) (*model.NewsArticle, error)
	Replace(ctx context.Context, articles []model.NewsArticle) error
}

// LeadRepository stores contact-form submissions. There is no read path over HTTP.
type LeadRepository interface {
	// Create inserts a lead and returns the stored record.
	Create(ctx context.Context, lead *model.Lead) (*model.Lead, error)
}
