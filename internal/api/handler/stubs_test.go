package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bazarxpress/account-service/internal/api/middleware"
	"github.com/bazarxpress/account-service/internal/core/domain"
	"github.com/bazarxpress/account-service/internal/core/ports"
)

type stubAccountService struct {
	authenticateFn  func(ctx context.Context, token string) (*domain.User, error)
	registerFn      func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn         func(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error)
	updateProfileFn func(ctx context.Context, actor *domain.User, update domain.ProfileUpdate) (*domain.User, error)
	listUsersFn     func(ctx context.Context, actor *domain.User) ([]*domain.User, error)
	deleteUserFn    func(ctx context.Context, actor *domain.User, id string) error
	changeRoleFn    func(ctx context.Context, actor *domain.User, id string, role domain.Role) error
}

var _ ports.AccountService = (*stubAccountService)(nil)

func (s *stubAccountService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	return s.authenticateFn(ctx, token)
}

func (s *stubAccountService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAccountService) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	return s.loginFn(ctx, in)
}

func (s *stubAccountService) UpdateProfile(ctx context.Context, actor *domain.User, update domain.ProfileUpdate) (*domain.User, error) {
	return s.updateProfileFn(ctx, actor, update)
}

func (s *stubAccountService) ListUsers(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
	return s.listUsersFn(ctx, actor)
}

func (s *stubAccountService) DeleteUser(ctx context.Context, actor *domain.User, id string) error {
	return s.deleteUserFn(ctx, actor, id)
}

func (s *stubAccountService) ChangeRole(ctx context.Context, actor *domain.User, id string, role domain.Role) error {
	return s.changeRoleFn(ctx, actor, id, role)
}

// newContext builds an echo context for a JSON request, optionally carrying
// an authenticated principal.
func newContext(method, target, body string, principal *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		middleware.SetPrincipal(c, principal)
	}
	return c, rec
}
