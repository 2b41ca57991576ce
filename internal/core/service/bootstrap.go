package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/financeflow/finance-api/internal/core/domain"
	"github.com/financeflow/finance-api/internal/core/ports"
)

// BootstrapConfig carries the env-driven admin provisioning settings.
type BootstrapConfig struct {
	Enabled  bool
	Email    string
	Password string
}

// BootstrapService ensures a first admin account exists at startup. It is not
// part of the request-serving path.
type BootstrapService struct {
	users ports.UserRepository
	cfg   BootstrapConfig
	log   zerolog.Logger
}

func NewBootstrapService(users ports.UserRepository, cfg BootstrapConfig, log zerolog.Logger) *BootstrapService {
	return &BootstrapService{users: users, cfg: cfg, log: log}
}

// EnsureAdmin creates an approved Admin account for the configured email when
// none exists. It silently no-ops when disabled, when credentials are absent,
// or when the store is unavailable. The existence check is read-then-write, so
// concurrent bootstrap runs can race; the duplicate is accepted.
func (s *BootstrapService) EnsureAdmin(ctx context.Context) error {
	if !s.cfg.Enabled || s.cfg.Email == "" || s.cfg.Password == "" {
		s.log.Info().Msg("skipping admin auto-creation: disabled or credentials not set")
		return nil
	}
	if s.users == nil {
		s.log.Warn().Msg("skipping admin auto-creation: store not initialized")
		return nil
	}

	email := normalizeEmail(s.cfg.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		s.log.Info().Str("email", email).Msg("admin user already exists")
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	admin := &domain.User{
		Email:        email,
		PasswordHash: HashPassword(s.cfg.Password),
		Role:         domain.RoleAdmin,
		Status:       domain.StatusApproved,
		CreatedAt:    time.Now().UTC(),
	}
	id, err := s.users.Create(ctx, admin)
	if err != nil {
		return err
	}

	s.log.Info().Str("email", email).Str("user_id", id).Msg("admin user created")
	return nil
}
