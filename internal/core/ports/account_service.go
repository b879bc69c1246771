package ports

import (
	"context"

	"github.com/bazarxpress/account-service/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer to Register.
type RegisterInput struct {
	Name        string `validate:"required"`
	Email       string `validate:"required"`
	Password    string `validate:"required,min=6"`
	Phone       string
	DateOfBirth string
}

// LoginInput is the DTO passed from the transport layer to Login.
type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// Authenticator resolves a bearer token to the current stored user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// AccountService defines the account use cases. Admin-only operations take
// the acting principal and return domain.ErrAdminRequired for non-admins.
type AccountService interface {
	Authenticator

	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	UpdateProfile(ctx context.Context, actor *domain.User, update domain.ProfileUpdate) (*domain.User, error)
	ListUsers(ctx context.Context, actor *domain.User) ([]*domain.User, error)
	DeleteUser(ctx context.Context, actor *domain.User, id string) error
	ChangeRole(ctx context.Context, actor *domain.User, id string, role domain.Role) error
}
