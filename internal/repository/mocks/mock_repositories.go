package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gnapi/internal/model"
	"gnapi/internal/repository"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) List(ctx context.Context) ([]model.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) Replace(ctx context.Context, members []model.TeamMember) error {
	args := m.Called(ctx, members)
	return args.Error(0)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) List(ctx context.Context, q repository.ProjectQuery) ([]model.Project, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) Replace(ctx context.Context, projects []model.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) List(ctx context.Context) ([]model.NewsArticle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NewsArticle), args.Error(1)
}

func (m *MockNewsRepository) FindByID(ctx context.Context, id string) (*model.NewsArticle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsArticle), args.Error(1)
}

func (m *MockNewsRepository) Replace(ctx context.Context, articles []model.NewsArticle) error {
	args := m.Called(ctx, articles)
	return args.Error(0)
}

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	args := m.Called(ctx, lead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lead), args.Error(1)
}

var (
	_ repository.TeamRepository    = (*MockTeamRepository)(nil)
	_ repository.ProjectRepository = (*MockProjectRepository)(nil)
	_ repository.NewsRepository    = (*MockNewsRepository)(nil)
	_ repository.LeadRepository    = (*MockLeadRepository)(nil)
)
