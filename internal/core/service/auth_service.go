package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/financeflow/finance-api/internal/core/domain"
	"github.com/financeflow/finance-api/internal/core/ports"
)

// AuthService implements signup, login, and current-user lookup. A nil
// repository means the process started without a reachable store; every
// operation then fails with ErrBackendUnavailable.
type AuthService struct {
	users ports.UserRepository
}

func NewAuthService(users ports.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Signup creates a pending account. The email uniqueness check is
// read-then-write with no atomicity guarantee; a concurrent duplicate signup
// can slip through and is accepted.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	if s.users == nil {
		return nil, domain.ErrBackendUnavailable
	}

	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: HashPassword(password),
		Role:         domain.RoleUser,
		Status:       domain.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	return user, nil
}

// Login verifies credentials and stamps lastLogin. Unknown email and wrong
// password both map to ErrInvalidCredentials so the response does not reveal
// which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if s.users == nil {
		return nil, domain.ErrBackendUnavailable
	}

	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.users.UpdateFields(ctx, user.ID, map[string]any{"lastLogin": now}); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	return user, nil
}

// CurrentUser performs a fresh lookup by id. Session-cached role and status
// are never consulted here.
func (s *AuthService) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	if s.users == nil {
		return nil, domain.ErrBackendUnavailable
	}
	return s.users.FindByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
