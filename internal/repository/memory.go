package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/cradlecare/cradle/internal/model"
)

// memoryRepo is the in-memory substitute used by tests and by demos
// that should not touch disk.
type memoryRepo struct {
	mu    sync.Mutex
	users []model.RegisteredUser
}

func NewMemory() Repository {
	return &memoryRepo{}
}

func (r *memoryRepo) AddUser(_ context.Context, user model.RegisteredUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, user)
	return nil
}

func (r *memoryRepo) GetUsers(_ context.Context) ([]model.RegisteredUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.RegisteredUser, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *memoryRepo) GetUserByEmail(_ context.Context, email string) (*model.RegisteredUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}

	return nil, ErrNotFound
}
