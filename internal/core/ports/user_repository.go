package ports

import (
	"context"

	"github.com/financeflow/finance-api/internal/core/domain"
)

// UserRepository defines persistence operations for the users collection.
//
// Email uniqueness is NOT store-enforced: FindByEmail returns the first match
// and Create performs no duplicate check. Callers that need uniqueness must
// check-then-insert and accept the race.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create inserts the user and returns the store-assigned id.
	Create(ctx context.Context, user *domain.User) (string, error)
	// UpdateFields merges the given fields into the document. A missing id is
	// not reported; callers needing a not-found error must check existence first.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*domain.User, error)
}
