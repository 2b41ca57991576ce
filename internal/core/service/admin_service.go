package service

import (
	"context"

	"github.com/financeflow/finance-api/internal/core/domain"
	"github.com/financeflow/finance-api/internal/core/ports"
)

// AdminService implements the admin-gated user management operations.
type AdminService struct {
	users ports.UserRepository
}

func NewAdminService(users ports.UserRepository) *AdminService {
	return &AdminService{users: users}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if s.users == nil {
		return nil, domain.ErrBackendUnavailable
	}
	return s.users.ListAll(ctx)
}

func (s *AdminService) Approve(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.StatusApproved)
}

func (s *AdminService) Reject(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.StatusRejected)
}

// UpdateRole validates the role before touching the store, so an invalid role
// leaves the stored value unchanged.
func (s *AdminService) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	if !role.Valid() {
		return domain.ErrInvalidRole
	}
	if s.users == nil {
		return domain.ErrBackendUnavailable
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	return s.users.UpdateFields(ctx, id, map[string]any{"role": role})
}

func (s *AdminService) Delete(ctx context.Context, id string) error {
	if s.users == nil {
		return domain.ErrBackendUnavailable
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

// setStatus checks existence first: the repository's UpdateFields does not
// report missing ids, but these endpoints promise 404.
func (s *AdminService) setStatus(ctx context.Context, id string, status domain.Status) error {
	if s.users == nil {
		return domain.ErrBackendUnavailable
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	return s.users.UpdateFields(ctx, id, map[string]any{"status": status})
}
