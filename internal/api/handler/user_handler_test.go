package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/bazarxpress/account-service/internal/core/domain"
)

var (
	testAdmin = &domain.User{ID: "64b0000000000000000000aa", Role: domain.RoleAdmin}
	testUser  = &domain.User{ID: "64b0000000000000000000bb", Role: domain.RoleUser}
)

func TestUserHandler_List(t *testing.T) {
	stub := &stubAccountService{
		listUsersFn: func(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "1", Name: "Ann", Email: "ann@example.com", PasswordHash: "h", Role: domain.RoleAdmin},
				{ID: "2", Name: "Bob", Email: "bob@example.com", PasswordHash: "h", Role: domain.RoleUser},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newContext(http.MethodGet, "/api/auth/users", "", testAdmin)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[1]["email"] != "bob@example.com" {
		t.Fatalf("unexpected list: %+v", resp)
	}
	for _, u := range resp {
		if _, present := u["password"]; present {
			t.Fatalf("password must not be serialized")
		}
	}
}

func TestUserHandler_List_Empty(t *testing.T) {
	stub := &stubAccountService{
		listUsersFn: func(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newContext(http.MethodGet, "/api/auth/users", "", testAdmin)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestUserHandler_List_Forbidden(t *testing.T) {
	stub := &stubAccountService{
		listUsersFn: func(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
			return nil, domain.ErrAdminRequired
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newContext(http.MethodGet, "/api/auth/users", "", testUser)

	if err := handler.List(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	stub := &stubAccountService{
		deleteUserFn: func(ctx context.Context, actor *domain.User, id string) error {
			if actor != testAdmin || id != "64b000000000000000000001" {
				t.Fatalf("unexpected args: %v %s", actor, id)
			}
			return nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newContext(http.MethodDelete, "/", "", testAdmin)
	c.SetParamNames("id")
	c.SetParamValues("64b000000000000000000001")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp successResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || !resp.Success {
		t.Fatalf("expected success:true, got %s", rec.Body.String())
	}
}

func TestUserHandler_Delete_InvalidID(t *testing.T) {
	stub := &stubAccountService{
		deleteUserFn: func(ctx context.Context, actor *domain.User, id string) error {
			return domain.ErrInvalidUserID
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newContext(http.MethodDelete, "/", "", testAdmin)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := handler.Delete(c); !errors.Is(err, domain.ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
}

func TestUserHandler_ChangeRole(t *testing.T) {
	stub := &stubAccountService{
		changeRoleFn: func(ctx context.Context, actor *domain.User, id string, role domain.Role) error {
			if id != "64b000000000000000000001" || role != domain.RoleAdmin {
				t.Fatalf("unexpected args: %s %s", id, role)
			}
			return nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newContext(http.MethodPatch, "/", `{"role":"admin"}`, testAdmin)
	c.SetParamNames("id")
	c.SetParamValues("64b000000000000000000001")

	if err := handler.ChangeRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_ChangeRole_InvalidRole(t *testing.T) {
	stub := &stubAccountService{
		changeRoleFn: func(ctx context.Context, actor *domain.User, id string, role domain.Role) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewUserHandler(stub)

	for _, body := range []string{`{"role":"superuser"}`, `{"role":""}`, `{}`} {
		c, _ := newContext(http.MethodPatch, "/", body, testAdmin)
		c.SetParamNames("id")
		c.SetParamValues("64b000000000000000000001")

		if err := handler.ChangeRole(c); !errors.Is(err, domain.ErrInvalidRole) {
			t.Fatalf("body %s: expected ErrInvalidRole, got %v", body, err)
		}
	}
}

func TestUserHandler_ChangeRole_NonAdminForbiddenBeforeRoleCheck(t *testing.T) {
	handler := NewUserHandler(&stubAccountService{})

	c, _ := newContext(http.MethodPatch, "/", `{"role":"superuser"}`, testUser)
	c.SetParamNames("id")
	c.SetParamValues("64b000000000000000000001")

	if err := handler.ChangeRole(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
