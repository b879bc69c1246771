package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bazarxpress/account-service/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"validation", domain.ErrPasswordTooShort, http.StatusBadRequest, "Password must be at least 6 characters."},
		{"unauthenticated", domain.ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token."},
		{"forbidden", domain.ErrAdminRequired, http.StatusForbidden, "Forbidden"},
		{"conflict", domain.ErrEmailTaken, http.StatusConflict, "Email already registered."},
		{"wrapped not found", fmt.Errorf("update profile: %w", domain.ErrUserNotFound), http.StatusNotFound, "user not found"},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{"unknown", errors.New("connection reset by peer"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			e := echo.New()
			e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.New(&logs))

			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			e.HTTPErrorHandler(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, body.Error)
			}

			logged := strings.Contains(logs.String(), "unhandled error")
			if logged != (tc.wantCode == http.StatusInternalServerError) {
				t.Fatalf("unexpected logging (logged=%v): %s", logged, logs.String())
			}
		})
	}
}
