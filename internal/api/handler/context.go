package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bazarxpress/account-service/internal/api/middleware"
	"github.com/bazarxpress/account-service/internal/core/domain"
)

// currentUser returns the principal injected by the Auth middleware. A
// missing principal means the route was mounted without Auth.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.Principal(c)
	if !ok {
		return nil, domain.ErrMissingToken
	}
	return user, nil
}
