package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/financeflow/finance-api/internal/infrastructure/config"
)

// Booting without a reachable store must leave the process serving: health
// and logout keep working, everything store-backed answers 503, and the
// login-only guard still answers 401.
//
// NewRouter registers prometheus collectors with the default registry, so it
// is built exactly once here.
func TestRouter_DegradedWithoutStore(t *testing.T) {
	cfg := &config.Config{
		Port:        "8080",
		Env:         "test",
		SecretKey:   "test-secret",
		CORSOrigins: []string{"http://localhost:8080"},
	}
	e := NewRouter(nil, cfg, zerolog.Nop())

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/health/ready", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodPost, "/api/auth/signup", `{"email":"a@x.com","password":"pw"}`, http.StatusServiceUnavailable},
		{http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"pw"}`, http.StatusServiceUnavailable},
		{http.MethodPost, "/api/auth/logout", "", http.StatusOK},
		{http.MethodGet, "/api/auth/me", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/admin/users", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/invoices", "", http.StatusServiceUnavailable},
		{http.MethodPost, "/api/transactions", `{"amount":1}`, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		rec := do(tc.method, tc.path, tc.body)
		if rec.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d: %s", tc.method, tc.path, tc.want, rec.Code, rec.Body.String())
		}
	}
}
