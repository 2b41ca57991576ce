package service

import (
	"context"
	"errors"
	"testing"

	"github.com/financeflow/finance-api/internal/core/domain"
)

func seedUser(repo *stubUserRepo, email string, role domain.Role, status domain.Status) string {
	id, _ := repo.Create(context.Background(), &domain.User{
		Email:        email,
		PasswordHash: HashPassword("pw"),
		Role:         role,
		Status:       status,
	})
	return id
}

func TestAdminService_ApproveAndReject(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAdminService(repo)
	id := seedUser(repo, "a@x.com", domain.RoleUser, domain.StatusPending)

	if err := svc.Approve(context.Background(), id); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if got := repo.users[id].Status; got != domain.StatusApproved {
		t.Fatalf("expected approved, got %s", got)
	}

	if err := svc.Reject(context.Background(), id); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	if got := repo.users[id].Status; got != domain.StatusRejected {
		t.Fatalf("expected rejected, got %s", got)
	}
}

func TestAdminService_Approve_MissingUser(t *testing.T) {
	svc := NewAdminService(newStubUserRepo())
	if err := svc.Approve(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminService_UpdateRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAdminService(repo)
	id := seedUser(repo, "a@x.com", domain.RoleUser, domain.StatusApproved)

	if err := svc.UpdateRole(context.Background(), id, domain.RoleManager); err != nil {
		t.Fatalf("UpdateRole failed: %v", err)
	}
	if got := repo.users[id].Role; got != domain.RoleManager {
		t.Fatalf("expected Manager, got %s", got)
	}
}

func TestAdminService_UpdateRole_Invalid_NoWrite(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAdminService(repo)
	id := seedUser(repo, "a@x.com", domain.RoleUser, domain.StatusApproved)
	repo.calls = 0

	if err := svc.UpdateRole(context.Background(), id, "SuperAdmin"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("invalid role touched the store")
	}
	if got := repo.users[id].Role; got != domain.RoleUser {
		t.Fatalf("stored role changed to %s", got)
	}
}

func TestAdminService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAdminService(repo)
	id := seedUser(repo, "a@x.com", domain.RoleUser, domain.StatusApproved)

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := repo.users[id]; ok {
		t.Fatalf("user still present after delete")
	}

	if err := svc.Delete(context.Background(), id); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestAdminService_ListUsers(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAdminService(repo)
	seedUser(repo, "a@x.com", domain.RoleUser, domain.StatusPending)
	seedUser(repo, "b@x.com", domain.RoleAdmin, domain.StatusApproved)

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestAdminService_BackendUnavailable(t *testing.T) {
	svc := NewAdminService(nil)
	if _, err := svc.ListUsers(context.Background()); !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
	if err := svc.Approve(context.Background(), "x"); !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
	if err := svc.UpdateRole(context.Background(), "x", domain.RoleUser); !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

// Approval lifecycle across both services: signup leaves the account pending,
// approval flips it, rejection flips it back.
func TestAccountLifecycle(t *testing.T) {
	repo := newStubUserRepo()
	auth := NewAuthService(repo)
	admin := NewAdminService(repo)

	created, err := auth.Signup(context.Background(), "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, err := auth.Login(context.Background(), "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Status != domain.StatusPending {
		t.Fatalf("expected pending after signup, got %s", user.Status)
	}

	if err := admin.Approve(context.Background(), created.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	user, err = auth.CurrentUser(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("current user failed: %v", err)
	}
	if user.Status != domain.StatusApproved {
		t.Fatalf("expected approved, got %s", user.Status)
	}

	if err := admin.Reject(context.Background(), created.ID); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	user, _ = auth.CurrentUser(context.Background(), created.ID)
	if user.Status != domain.StatusRejected {
		t.Fatalf("expected rejected, got %s", user.Status)
	}
}
