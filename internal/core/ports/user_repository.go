package ports

import (
	"context"

	"github.com/bazarxpress/account-service/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
// Lookups of a missing record return domain.ErrUserNotFound.
type UserRepository interface {
	// Create inserts the user and returns it with its generated ID.
	// A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateProfile applies only the non-empty fields of update.
	UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) error
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	// Delete removes the user. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error
}
