package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/bazarxpress/account-service/internal/pkg/metrics"
	"github.com/bazarxpress/account-service/internal/core/domain"
	"github.com/bazarxpress/account-service/internal/core/ports"
)

// AccountService implements registration, login, token authentication,
// profile self-update and admin user management.
type AccountService struct {
	repo        ports.UserRepository
	credentials *CredentialStore
	tokens      ports.TokenService
	validate    *validator.Validate
	log         zerolog.Logger
}

var _ ports.AccountService = (*AccountService)(nil)

func NewAccountService(
	repo ports.UserRepository,
	credentials *CredentialStore,
	tokens ports.TokenService,
	log zerolog.Logger,
) *AccountService {
	return &AccountService{
		repo:        repo,
		credentials: credentials,
		tokens:      tokens,
		validate:    validator.New(),
		log:         log,
	}
}

// Register creates a user account and returns it with a fresh token.
func (s *AccountService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if err := s.validate.Struct(in); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, translateValidation(err, domain.ErrRegistrationFieldsRequired)
	}
	if len(in.Password) > MaxPasswordBytes {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrPasswordTooLong
	}

	// Fast path; the unique index on email is the real guard against races.
	existing, err := s.credentials.FindByEmail(ctx, in.Email)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrEmailTaken
	}

	user, err := s.credentials.CreateUser(ctx, domain.NewUser{
		Name:        in.Name,
		Email:       in.Email,
		Password:    in.Password,
		Role:        domain.RoleUser,
		Phone:       in.Phone,
		DateOfBirth: in.DateOfBirth,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return nil, domain.ErrEmailTaken
		}
		if errors.Is(err, domain.ErrValidation) {
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			return nil, err
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("register: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("register: issue token: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user registered")

	return &ports.AuthResult{Token: token, User: user}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error.
func (s *AccountService) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	if err := s.validate.Struct(in); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return nil, translateValidation(err, domain.ErrLoginFieldsRequired)
	}

	user, err := s.credentials.FindByEmail(ctx, in.Email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("login: %w", err)
	}
	if !s.credentials.ValidatePassword(user, in.Password) {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.AuthResult{Token: token, User: user}, nil
}

// Authenticate verifies token and loads the current stored record of its
// subject. This costs one repository lookup per protected request, which
// keeps role changes effective immediately.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidUserID) {
			metrics.AuthFailuresTotal.WithLabelValues("user_not_found").Inc()
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return user, nil
}

// UpdateProfile applies the non-empty fields of update to the actor's own
// record and returns the stored result.
func (s *AccountService) UpdateProfile(ctx context.Context, actor *domain.User, update domain.ProfileUpdate) (*domain.User, error) {
	if actor == nil {
		return nil, domain.ErrMissingToken
	}

	if !update.IsEmpty() {
		if err := s.repo.UpdateProfile(ctx, actor.ID, update); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
	}

	user, err := s.repo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

// ListUsers returns every account. Admin only.
func (s *AccountService) ListUsers(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
	if err := requireAdmin(actor, "list"); err != nil {
		return nil, err
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		metrics.AdminActionsTotal.WithLabelValues("list", "error").Inc()
		return nil, fmt.Errorf("list users: %w", err)
	}

	metrics.AdminActionsTotal.WithLabelValues("list", "success").Inc()
	return users, nil
}

// DeleteUser removes the account with the given ID. Admin only. A missing
// account is reported as success.
func (s *AccountService) DeleteUser(ctx context.Context, actor *domain.User, id string) error {
	if err := requireAdmin(actor, "delete"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			metrics.AdminActionsTotal.WithLabelValues("delete", "invalid").Inc()
			return err
		}
		metrics.AdminActionsTotal.WithLabelValues("delete", "error").Inc()
		return fmt.Errorf("delete user: %w", err)
	}

	metrics.AdminActionsTotal.WithLabelValues("delete", "success").Inc()
	s.log.Info().Str("admin_id", actor.ID).Str("user_id", id).Msg("user deleted")
	return nil
}

// ChangeRole sets the role of the account with the given ID. Admin only. A
// missing account is reported as success.
func (s *AccountService) ChangeRole(ctx context.Context, actor *domain.User, id string, role domain.Role) error {
	if err := requireAdmin(actor, "change_role"); err != nil {
		return err
	}
	if !role.Valid() {
		metrics.AdminActionsTotal.WithLabelValues("change_role", "invalid").Inc()
		return domain.ErrInvalidRole
	}

	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			metrics.AdminActionsTotal.WithLabelValues("change_role", "invalid").Inc()
			return err
		}
		metrics.AdminActionsTotal.WithLabelValues("change_role", "error").Inc()
		return fmt.Errorf("change role: %w", err)
	}

	metrics.AdminActionsTotal.WithLabelValues("change_role", "success").Inc()
	s.log.Info().
		Str("admin_id", actor.ID).
		Str("user_id", id).
		Str("role", string(role)).
		Msg("user role changed")
	return nil
}

// EnsureAdmin promotes the account registered under email to admin. It is run
// at startup so a fresh deployment has someone able to manage users.
func (s *AccountService) EnsureAdmin(ctx context.Context, email string) error {
	user, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	if user == nil {
		s.log.Warn().Str("email", email).Msg("bootstrap admin account not registered yet")
		return nil
	}
	if user.IsAdmin() {
		return nil
	}

	if err := s.repo.UpdateRole(ctx, user.ID, domain.RoleAdmin); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	s.log.Info().Str("user_id", user.ID).Msg("bootstrap admin promoted")
	return nil
}

func requireAdmin(actor *domain.User, action string) error {
	if !actor.IsAdmin() {
		metrics.AdminActionsTotal.WithLabelValues(action, "forbidden").Inc()
		return domain.ErrAdminRequired
	}
	return nil
}

// translateValidation maps validator failures onto domain errors. A missing
// field wins over a too-short password.
func translateValidation(err error, missing *domain.Error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	for _, fe := range ve {
		if fe.Tag() == "required" {
			return missing
		}
	}
	for _, fe := range ve {
		if fe.Tag() == "min" && fe.Field() == "Password" {
			return domain.ErrPasswordTooShort
		}
	}
	return missing
}
