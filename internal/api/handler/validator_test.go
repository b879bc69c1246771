package handler

import (
	"errors"
	"testing"

	"github.com/bazarxpress/account-service/internal/core/domain"
)

func TestValidator_RoleOneOf(t *testing.T) {
	v := NewValidator()

	for _, role := range []string{"admin", "user"} {
		if err := v.Validate(&changeRoleRequest{Role: role}); err != nil {
			t.Fatalf("role %q: expected valid, got %v", role, err)
		}
	}

	for _, role := range []string{"", "root", "Admin"} {
		if err := v.Validate(&changeRoleRequest{Role: role}); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("role %q: expected validation kind, got %v", role, err)
		}
	}
}
