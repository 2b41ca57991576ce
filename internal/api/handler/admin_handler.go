package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/financeflow/finance-api/internal/core/domain"
	"github.com/financeflow/finance-api/internal/core/ports"
)

// AdminHandler serves the /api/admin routes. All of them sit behind the
// RequireAdmin guard.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type adminUserPayload struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Role      domain.Role   `json:"role"`
	Status    domain.Status `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	LastLogin *time.Time    `json:"lastLogin"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=Admin Manager User"`
}

// ListUsers returns every account.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	payload := make([]adminUserPayload, 0, len(users))
	for _, u := range users {
		payload = append(payload, adminUserPayload{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			Status:    u.Status,
			CreatedAt: u.CreatedAt,
			LastLogin: u.LastLogin,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"users": payload})
}

// Approve sets a user's status to approved.
//
// @Summary      Approve a user
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id}/approve [put]
func (h *AdminHandler) Approve(c echo.Context) error {
	if err := h.admin.Approve(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User approved successfully"})
}

// Reject sets a user's status to rejected.
//
// @Summary      Reject a user
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id}/reject [put]
func (h *AdminHandler) Reject(c echo.Context) error {
	if err := h.admin.Reject(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User rejected successfully"})
}

// UpdateRole reassigns a user's role. Anything outside Admin/Manager/User is
// rejected before the store is touched.
//
// @Summary      Update a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/users/{id}/role [put]
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.admin.UpdateRole(c.Request().Context(), c.Param("id"), domain.Role(req.Role)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User role updated to " + req.Role})
}

// Delete removes a user document.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	if err := h.admin.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}
