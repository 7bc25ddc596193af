package users

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrInvalidUser   = errors.New("username and password are required")
)

// User is an account record. No route reads or writes it yet.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type InsertUser struct {
	Username string
	Password string
}

// MemRepo keeps users in memory, indexed by id and username.
type MemRepo struct {
	mu         sync.RWMutex
	nextID     int
	byID       map[int]User
	byUsername map[string]int
}

func NewMemRepo() *MemRepo {
	return &MemRepo{
		nextID:     1,
		byID:       make(map[int]User),
		byUsername: make(map[string]int),
	}
}

func (r *MemRepo) Get(_ context.Context, id int) (*User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &u, true
}

func (r *MemRepo) GetByUsername(_ context.Context, username string) (*User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, false
	}
	u := r.byID[id]
	return &u, true
}

func (r *MemRepo) Create(_ context.Context, in InsertUser) (*User, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, ErrInvalidUser
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[in.Username]; taken {
		return nil, ErrUsernameTaken
	}

	u := User{ID: r.nextID, Username: in.Username, Password: in.Password}
	r.nextID++
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u.ID

	return &u, nil
}
