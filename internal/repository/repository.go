package repository

import (
	"context"
	"errors"

	"github.com/cradlecare/cradle/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
)

// Repository persists the registered-users list. Entries are appended
// verbatim: no deduplication and no password storage, a deliberate
// limitation of the mock sign-up flow.
type Repository interface {
	AddUser(ctx context.Context, user model.RegisteredUser) error
	GetUsers(ctx context.Context) ([]model.RegisteredUser, error)
	GetUserByEmail(ctx context.Context, email string) (*model.RegisteredUser, error)
}
