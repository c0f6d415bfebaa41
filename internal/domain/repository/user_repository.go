package repository

import (
	"context"
	"errors"

	"github.com/uptask/uptask-server/internal/domain/entity"
)

// ErrNotFound is returned by any repository when no record matches
// the given identifier or filter.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned by Create when a uniqueness constraint in
// the store rejects the record.
var ErrDuplicate = errors.New("duplicate record")

// UserRepository defines the interface for user-related store operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
