package ports

import "github.com/bazarxpress/account-service/internal/core/domain"

// TokenService issues and verifies stateless bearer tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify returns domain.ErrInvalidToken for every kind of failure.
	Verify(token string) (*domain.TokenClaims, error)
}
