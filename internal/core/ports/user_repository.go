package ports

import (
	"context"

	"trippy/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// Add persists a new user. A taken name fails with errs.ErrConflict.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by name.
	// Returns errs.ObjectNotFoundError if it does not exist.
	Get(ctx context.Context, name string) (*user.User, error)
}
