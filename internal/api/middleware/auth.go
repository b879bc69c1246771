package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bazarxpress/account-service/internal/core/domain"
	"github.com/bazarxpress/account-service/internal/core/ports"
)

const (
	principalKey = "principal"
	bearerPrefix = "Bearer "
)

// Auth requires an "Authorization: Bearer <token>" header, resolves the token
// to the stored user and injects it into the context as the principal.
func Auth(authenticator ports.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearerPrefix)
			if !ok || token == "" {
				return domain.ErrMissingToken
			}

			user, err := authenticator.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			SetPrincipal(c, user)
			return next(c)
		}
	}
}

// SetPrincipal stores the authenticated user on the context.
func SetPrincipal(c echo.Context, user *domain.User) {
	c.Set(principalKey, user)
}

// Principal returns the user injected by Auth.
func Principal(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(principalKey).(*domain.User)
	return user, ok && user != nil
}
