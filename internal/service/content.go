package service

import (
	"context"
	"errors"
	"strings"

	"gnapi/internal/model"
	"gnapi/internal/repository"
)

// ProjectFilter is the service-level filter for portfolio listings.
type ProjectFilter struct {
	Category string
	Search   string
}

// ContentService serves the read-only site content: team, portfolio and news.
type ContentService interface {
	ListTeam(ctx context.Context) ([]model.TeamMember, error)

	// ListProjects returns projects narrowed by f. An unknown category matches nothing.
	ListProjects(ctx context.Context, f ProjectFilter) ([]model.Project, error)

	GetProject(ctx context.Context, id string) (*model.Project, error)

	ListNews(ctx context.Context) ([]model.NewsArticle, error)

	GetArticle(ctx context.Context, id string) (*model.NewsArticle, error)
}

type contentService struct {
	team     repository.TeamRepository
	projects repository.ProjectRepository
	news     repository.NewsRepository
}

// NewContentService constructs a new ContentService.
func NewContentService(team repository.TeamRepository, projects repository.ProjectRepository, news repository.NewsRepository) ContentService {
	return &contentService{team: team, projects: projects, news: news}
}

func (s *contentService) ListTeam(ctx context.Context) ([]model.TeamMember, error) {
	items, err := s.team.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.TeamMember{}
	}
	return items, nil
}

func (s *contentService) ListProjects(ctx context.Context, f ProjectFilter) ([]model.Project, error) {
	q := repository.ProjectQuery{Search: strings.TrimSpace(f.Search)}
	if c := strings.TrimSpace(f.Category); c != "" {
		category := model.ProjectCategory(c)
		if !category.Valid() {
			return []model.Project{}, nil
		}
		q.Category = category
	}

	items, err := s.projects.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Project{}
	}
	return items, nil
}

func (s *contentService) GetProject(ctx context.Context, id string) (*model.Project, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *contentService) ListNews(ctx context.Context) ([]model.NewsArticle, error) {
	items, err := s.news.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.NewsArticle{}
	}
	return items, nil
}

func (s *contentService) GetArticle(ctx context.Context, id string) (*model.NewsArticle, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	a, err := s.news.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
