package repository

import (
	"context"
	"sync"

	"github.com/portfolio-site/portfolio-backend/internal/projects/domain"
)

// MemRepo keeps projects in memory for the lifetime of the process.
type MemRepo struct {
	mu     sync.RWMutex
	nextID int
	order  []int
	byID   map[int]domain.Project
}

// NewMemRepo creates an empty MemRepo. Ids start at 1.
func NewMemRepo() *MemRepo {
	return &MemRepo{
		nextID: 1,
		byID:   make(map[int]domain.Project),
	}
}

// List returns all projects in insertion order
func (r *MemRepo) List(_ context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

// ListFeatured returns the featured projects, keeping insertion order
func (r *MemRepo) ListFeatured(_ context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, 0)
	for _, id := range r.order {
		if p := r.byID[id]; p.Featured {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// Get returns the project with the given id. ok is false when there is none.
func (r *MemRepo) Get(_ context.Context, id int) (*domain.Project, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	cp := p.Clone()
	return &cp, true
}

// Create assigns the next id and stores the project.
func (r *MemRepo) Create(_ context.Context, req domain.CreateProjectRequest) (*domain.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	id := r.nextID
	r.nextID++
	p := req.ToProject(id)
	r.byID[id] = p
	r.order = append(r.order, id)
	r.mu.Unlock()

	out := p.Clone()
	return &out, nil
}

// Len reports how many projects are stored.
func (r *MemRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
