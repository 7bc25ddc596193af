package repository

import (
	"context"
	"sync"

	"github.com/portfolio-site/portfolio-backend/internal/contact/domain"
)

// MemRepo stores contact messages for the lifetime of the process.
type MemRepo struct {
	mu       sync.Mutex
	nextID   int
	messages []domain.ContactMessage
}

// NewMemRepo creates an empty MemRepo. Ids start at 1.
func NewMemRepo() *MemRepo {
	return &MemRepo{nextID: 1}
}

// Create assigns the next id and stores the message
func (r *MemRepo) Create(_ context.Context, req domain.CreateMessageRequest) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := domain.ContactMessage{
		ID:      r.nextID,
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	r.nextID++
	r.messages = append(r.messages, msg)

	return &msg, nil
}

// Count returns the number of stored messages.
func (r *MemRepo) Count(_ context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

// All returns a copy of every stored message in arrival order.
func (r *MemRepo) All(_ context.Context) []domain.ContactMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ContactMessage(nil), r.messages...)
}
