package service

import (
	"context"

	"github.com/portfolio-site/portfolio-backend/internal/projects/domain"
)

// ProjectStore is the storage contract the service depends on.
type ProjectStore interface {
	List(ctx context.Context) ([]domain.Project, error)
	ListFeatured(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int) (*domain.Project, bool)
	Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error)
}

// ProjectService handles project-related business logic
type ProjectService struct {
	store ProjectStore
}

// NewProjectService creates a new project service
func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{
		store: store,
	}
}

// List returns every project
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.List(ctx)
}

// Featured returns the projects highlighted on the home page
func (s *ProjectService) Featured(ctx context.Context) ([]domain.Project, error) {
	return s.store.ListFeatured(ctx)
}

// Get returns a single project, ok is false when it does not exist
func (s *ProjectService) Get(ctx context.Context, id int) (*domain.Project, bool) {
	return s.store.Get(ctx, id)
}

// Create inserts a new project
func (s *ProjectService) Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error) {
	return s.store.Create(ctx, req)
}
