package service

import (
	"context"

	"github.com/financeflow/finance-api/internal/core/domain"
	"github.com/financeflow/finance-api/internal/core/ports"
)

// RecordService is the CRUD layer over one record collection. It adds no
// validation beyond what the Fields type enforces: records are schema-less
// and whatever the caller sends is persisted as-is.
type RecordService struct {
	repo ports.RecordRepository
}

func NewRecordService(repo ports.RecordRepository) *RecordService {
	return &RecordService{repo: repo}
}

func (s *RecordService) List(ctx context.Context) ([]domain.Record, error) {
	if s.repo == nil {
		return nil, domain.ErrBackendUnavailable
	}
	return s.repo.ListAll(ctx)
}

func (s *RecordService) Create(ctx context.Context, fields domain.Fields) (string, error) {
	if s.repo == nil {
		return "", domain.ErrBackendUnavailable
	}
	return s.repo.Create(ctx, fields)
}

// Update succeeds even when id never existed; the store call reports nothing
// for a zero-match update and this layer preserves that.
func (s *RecordService) Update(ctx context.Context, id string, fields domain.Fields) error {
	if s.repo == nil {
		return domain.ErrBackendUnavailable
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *RecordService) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return domain.ErrBackendUnavailable
	}
	return s.repo.Delete(ctx, id)
}
