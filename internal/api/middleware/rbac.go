package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/bazarxpress/account-service/internal/core/domain"
)

// RBAC enforces role-based access control on the principal set by Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := Principal(c)
			if !ok {
				return domain.ErrMissingToken
			}
			if _, ok := allowed[user.Role]; !ok {
				return domain.ErrAdminRequired
			}
			return next(c)
		}
	}
}
