package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gnapi/internal/model"
	"gnapi/internal/service"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) ListTeam(ctx context.Context) ([]model.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func (m *MockContentService) ListProjects(ctx context.Context, f service.ProjectFilter) ([]model.Project, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockContentService) GetProject(ctx context.Context, id string) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockContentService) ListNews(ctx context.Context) ([]model.NewsArticle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NewsArticle), args.Error(1)
}

func (m *MockContentService) GetArticle(ctx context.Context, id string) (*model.NewsArticle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsArticle), args.Error(1)
}

type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) Submit(ctx context.Context, in service.LeadInput) (*model.Lead, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lead), args.Error(1)
}

var (
	_ service.ContentService = (*MockContentService)(nil)
	_ service.LeadService    = (*MockLeadService)(nil)
)
