package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bazarxpress/account-service/internal/core/domain"
	"github.com/bazarxpress/account-service/internal/core/ports"
)

const (
	// DefaultPasswordCost is the bcrypt work factor used for stored passwords.
	DefaultPasswordCost = 10
	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

// CredentialStore creates accounts with hashed passwords and checks candidates
// against stored hashes.
type CredentialStore struct {
	repo ports.UserRepository
	cost int
	// dummyHash absorbs one compare when no account exists.
	dummyHash []byte
}

// NewCredentialStore returns a CredentialStore. Costs outside bcrypt's range
// fall back to DefaultPasswordCost.
func NewCredentialStore(repo ports.UserRepository, cost int) *CredentialStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	return &CredentialStore{repo: repo, cost: cost, dummyHash: dummy}
}

// CreateUser hashes the password and persists the account. Email uniqueness is
// left to the repository, which reports duplicates as domain.ErrEmailTaken.
func (s *CredentialStore) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	if len(in.Password) > MaxPasswordBytes {
		return nil, domain.ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        in.Phone,
		DateOfBirth:  in.DateOfBirth,
		CreatedAt:    time.Now().UTC(),
	}
	if in.Address != nil && !in.Address.IsZero() {
		addr := *in.Address
		user.Address = &addr
	}

	return s.repo.Create(ctx, user)
}

// FindByEmail returns the account for email, or nil when there is none.
func (s *CredentialStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// ValidatePassword reports whether candidate matches the stored hash.
func (s *CredentialStore) ValidatePassword(user *domain.User, candidate string) bool {
	if user == nil || user.PasswordHash == "" || len(candidate) > MaxPasswordBytes {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(candidate[:min(len(candidate), MaxPasswordBytes)]))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidate)) == nil
}
