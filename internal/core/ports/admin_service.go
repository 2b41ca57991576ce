package ports

import (
	"context"

	"github.com/financeflow/finance-api/internal/core/domain"
)

// AdminService implements account approval, role management, and deletion.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	Delete(ctx context.Context, id string) error
}
