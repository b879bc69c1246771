package domain

import "errors"

// Error kinds. The HTTP layer maps each kind to a status code.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
)

// Error is a client-facing error: Msg is safe to render, Kind decides the status.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

var (
	ErrRegistrationFieldsRequired = newError(ErrValidation, "Name, email, and password are required.")
	ErrPasswordTooShort           = newError(ErrValidation, "Password must be at least 6 characters.")
	ErrPasswordTooLong            = newError(ErrValidation, "Password must be at most 72 bytes.")
	ErrLoginFieldsRequired        = newError(ErrValidation, "Email and password are required.")
	ErrInvalidRole                = newError(ErrValidation, "Invalid role")
	ErrInvalidUserID              = newError(ErrValidation, "Invalid user id")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = newError(ErrUnauthenticated, "Invalid email or password.")
	ErrMissingToken       = newError(ErrUnauthenticated, "Authorization header missing or malformed.")
	ErrInvalidToken       = newError(ErrUnauthenticated, "Invalid or expired token.")
	ErrPrincipalNotFound  = newError(ErrUnauthenticated, "User not found")

	ErrAdminRequired = newError(ErrForbidden, "Forbidden")
	ErrEmailTaken    = newError(ErrConflict, "Email already registered.")
	ErrUserNotFound  = newError(ErrNotFound, "user not found")
)
