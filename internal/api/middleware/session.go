package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/financeflow/finance-api/internal/core/domain"
)

// CookieName is the session cookie issued at login.
const CookieName = "session"

const sessionTTL = 24 * time.Hour

const (
	keyUserID = "user_id"
	keyEmail  = "user_email"
	keyRole   = "user_role"
	keyStatus = "user_status"
)

// Identity is the per-browser state the signed cookie carries. Only UserID is
// authoritative: role and status are snapshots from the last login, and any
// guard that cares about freshness re-reads the user repository instead.
type Identity struct {
	UserID string
	Email  string
	Role   string
	Status string
}

// NewStore builds the signed cookie store backing all sessions. Cookies are
// tamper-evident but NOT encrypted, so values must never be confidential.
func NewStore(secret string, secure bool) sessions.Store {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Sessions returns the middleware that makes the store available to every
// request. It must run before any guard.
func Sessions(store sessions.Store) echo.MiddlewareFunc {
	return session.Middleware(store)
}

// Establish writes the user's identity into the session and issues the cookie.
func Establish(c echo.Context, u *domain.User) error {
	sess, err := session.Get(CookieName, c)
	if err != nil {
		return err
	}
	sess.Values[keyUserID] = u.ID
	sess.Values[keyEmail] = u.Email
	sess.Values[keyRole] = string(u.Role)
	sess.Values[keyStatus] = string(u.Status)
	return sess.Save(c.Request(), c.Response())
}

// Current returns the identity held by the request's session cookie. A
// missing, expired, or tampered cookie reads as unauthenticated.
func Current(c echo.Context) (Identity, bool) {
	sess, err := session.Get(CookieName, c)
	if err != nil {
		return Identity{}, false
	}
	id, _ := sess.Values[keyUserID].(string)
	if id == "" {
		return Identity{}, false
	}
	email, _ := sess.Values[keyEmail].(string)
	role, _ := sess.Values[keyRole].(string)
	status, _ := sess.Values[keyStatus].(string)
	return Identity{UserID: id, Email: email, Role: role, Status: status}, true
}

// Clear drops all session values and expires the cookie.
func Clear(c echo.Context) error {
	sess, err := session.Get(CookieName, c)
	if err != nil {
		return err
	}
	sess.Values = make(map[any]any)
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}

// refresh re-issues the cookie so the 24h expiry rolls on each gated request.
func refresh(c echo.Context) {
	sess, err := session.Get(CookieName, c)
	if err != nil {
		return
	}
	_ = sess.Save(c.Request(), c.Response())
}
