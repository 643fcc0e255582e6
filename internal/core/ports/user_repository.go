package ports

import (
	"context"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user account to storage.
	// Returns errs.DuplicateValueError when the email is already registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user account.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user account by its unique login email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
