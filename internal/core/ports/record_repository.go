package ports

import (
	"context"

	"github.com/financeflow/finance-api/internal/core/domain"
)

// RecordRepository defines persistence operations for one schema-less record
// collection (invoices or transactions).
type RecordRepository interface {
	// ListAll returns every document, unordered. Snapshot consistency under
	// concurrent writes is not guaranteed.
	ListAll(ctx context.Context) ([]domain.Record, error)
	// Create inserts the fields as a new document and returns its id.
	Create(ctx context.Context, fields domain.Fields) (string, error)
	// Update merges fields into the document. Updating an id that does not
	// exist succeeds silently.
	Update(ctx context.Context, id string, fields domain.Fields) error
	// Delete removes the document. Deleting an id that does not exist
	// succeeds silently.
	Delete(ctx context.Context, id string) error
}
