package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/financeflow/finance-api/internal/api/metrics"
	"github.com/financeflow/finance-api/internal/core/domain"
	"github.com/financeflow/finance-api/internal/core/ports"
)

// The three guards below compose in front of route handlers and short-circuit
// with an error response before the handler body runs. RequireAdmin and
// RequireApproved re-read the user repository on every request: role and
// status can change mid-session, and trusting the cookie's cached copy would
// let a demoted or de-approved user keep acting on stale privilege for up to
// 24 hours.

// RequireLogin admits any request whose session holds a user id. It never
// touches the store.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := Current(c)
			if !ok {
				metrics.GuardDenialsTotal.WithLabelValues("login", "unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			refresh(c)
			c.Set(keyUserID, ident.UserID)
			return next(c)
		}
	}
}

// RequireAdmin admits only users whose CURRENT stored role is Admin. A nil
// repository (store never initialised) fails every request with 503.
func RequireAdmin(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if users == nil {
				metrics.GuardDenialsTotal.WithLabelValues("admin", "backend_unavailable").Inc()
				return echo.NewHTTPError(http.StatusServiceUnavailable, domain.ErrBackendUnavailable.Error())
			}
			ident, ok := Current(c)
			if !ok {
				metrics.GuardDenialsTotal.WithLabelValues("admin", "unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			user, err := users.FindByID(c.Request().Context(), ident.UserID)
			if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
				return err
			}
			if err != nil || user.Role != domain.RoleAdmin {
				metrics.GuardDenialsTotal.WithLabelValues("admin", "forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}

			refresh(c)
			c.Set(keyUserID, ident.UserID)
			return next(c)
		}
	}
}

// RequireApproved admits only users whose CURRENT stored status is approved.
// When the session references a deleted user the guard clears the cookie
// before failing, so stale sessions self-heal. A not-approved rejection
// includes the actual status so clients can render pending vs rejected.
func RequireApproved(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if users == nil {
				metrics.GuardDenialsTotal.WithLabelValues("approved", "backend_unavailable").Inc()
				return echo.NewHTTPError(http.StatusServiceUnavailable, domain.ErrBackendUnavailable.Error())
			}
			ident, ok := Current(c)
			if !ok {
				metrics.GuardDenialsTotal.WithLabelValues("approved", "unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			user, err := users.FindByID(c.Request().Context(), ident.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					_ = Clear(c)
					metrics.GuardDenialsTotal.WithLabelValues("approved", "not_found").Inc()
					return echo.NewHTTPError(http.StatusNotFound, "user not found")
				}
				return err
			}
			if user.Status != domain.StatusApproved {
				metrics.GuardDenialsTotal.WithLabelValues("approved", "forbidden").Inc()
				return c.JSON(http.StatusForbidden, echo.Map{
					"error":  "account not approved",
					"status": user.Status,
				})
			}

			refresh(c)
			c.Set(keyUserID, ident.UserID)
			return next(c)
		}
	}
}
