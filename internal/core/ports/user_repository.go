package ports

import (
	"context"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for principals.
type UserRepository interface {
	// Add persists a new user. Usernames are unique; storage rejects
	// duplicates.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by identifier.
	Get(ctx context.Context, id kernel.ID) (*user.User, error)

	// GetByUsername retrieves a user by unique login name.
	// Returns ObjectNotFoundError if the username is unknown.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// GetAll retrieves all users in insertion order.
	GetAll(ctx context.Context) ([]*user.User, error)
}
