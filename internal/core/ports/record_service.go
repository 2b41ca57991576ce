package ports

import (
	"context"

	"github.com/financeflow/finance-api/internal/core/domain"
)

// RecordService implements CRUD over one record collection.
type RecordService interface {
	List(ctx context.Context) ([]domain.Record, error)
	Create(ctx context.Context, fields domain.Fields) (string, error)
	Update(ctx context.Context, id string, fields domain.Fields) error
	Delete(ctx context.Context, id string) error
}
