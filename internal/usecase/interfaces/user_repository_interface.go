package interfaces

import (
	"context"
	"errors"

	"polymesh/internal/domain/entities"
)

// ErrAlreadyExists is returned by repositories when a uniqueness condition
// fails on create.
var ErrAlreadyExists = errors.New("item already exists")

// IUserRepository keeps users unique by email.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
