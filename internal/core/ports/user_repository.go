package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user entities.
type UserRepository interface {
	// Add persists a new user to storage.
	// Fails if the username is already taken.
	Add(ctx context.Context, entity *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user by its login name.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
