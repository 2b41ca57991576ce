package ports

import (
	"context"

	"github.com/financeflow/finance-api/internal/core/domain"
)

// AuthService implements signup, login, and current-user lookup.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// CurrentUser re-reads the user by id; it never trusts session-cached fields.
	CurrentUser(ctx context.Context, id string) (*domain.User, error)
}
