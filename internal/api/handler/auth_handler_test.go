package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/financeflow/finance-api/internal/api/middleware"
	"github.com/financeflow/finance-api/internal/core/domain"
)

type stubAuthService struct {
	signupFn  func(ctx context.Context, email, password string) (*domain.User, error)
	loginFn   func(ctx context.Context, email, password string) (*domain.User, error)
	currentFn func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	return s.signupFn(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return s.currentFn(ctx, id)
}

func newTestContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			if email != "a@x.com" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: "user_1", Email: email, Status: domain.StatusPending, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(e, http.MethodPost, "/api/auth/signup", `{"email":"a@x.com","password":"pw1"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user_id"] != "user_1" || resp["status"] != "pending" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(e, http.MethodPost, "/api/auth/signup", `{"email":"a@x.com"}`)
	err := h.Signup(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Signup_Duplicate(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(e, http.MethodPost, "/api/auth/signup", `{"email":"a@x.com","password":"pw"}`)
	if err := h.Signup(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Signup_InvalidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(e, http.MethodPost, "/api/auth/signup", `not-json`)
	err := h.Signup(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

// Login followed by /me on the issued cookie must resolve to the same user.
func TestAuthHandler_LoginThenMe(t *testing.T) {
	user := &domain.User{ID: "user_1", Email: "a@x.com", Role: domain.RoleUser, Status: domain.StatusApproved}
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return user, nil
		},
		currentFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "user_1" {
				return nil, domain.ErrUserNotFound
			}
			return user, nil
		},
	}
	h := NewAuthHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	e.Use(middleware.Sessions(middleware.NewStore("test-secret", false)))
	e.POST("/api/auth/login", h.Login)
	e.GET("/api/auth/me", h.Me, middleware.RequireLogin())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@x.com","password":"pw1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("login did not issue a session cookie")
	}

	var loginResp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &loginResp)
	if u, _ := loginResp["user"].(map[string]any); u["id"] != "user_1" {
		t.Fatalf("unexpected login payload: %+v", loginResp)
	}

	meReq := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, ck := range cookies {
		meReq.AddCookie(ck)
	}
	meRec := httptest.NewRecorder()
	e.ServeHTTP(meRec, meReq)

	if meRec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", meRec.Code, meRec.Body.String())
	}
	var meResp map[string]any
	_ = json.Unmarshal(meRec.Body.Bytes(), &meResp)
	if u, _ := meResp["user"].(map[string]any); u["id"] != "user_1" {
		t.Fatalf("me returned a different user: %+v", meResp)
	}
}

func TestAuthHandler_Login_BadCredentials_NoSession(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	e.Use(middleware.Sessions(middleware.NewStore("test-secret", false)))
	e.POST("/api/auth/login", h.Login)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@x.com","password":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.CookieName && ck.Value != "" {
			t.Fatalf("failed login must not establish a session")
		}
	}
}

func TestAuthHandler_Logout_AlwaysOK(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	e := echo.New()
	e.Use(middleware.Sessions(middleware.NewStore("test-secret", false)))
	e.POST("/api/auth/logout", h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Me_VanishedUserClearsSession(t *testing.T) {
	stub := &stubAuthService{
		currentFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewAuthHandler(stub)

	e := echo.New()
	store := middleware.NewStore("test-secret", false)

	c, rec := newTestContext(e, http.MethodGet, "/api/auth/me", "")
	c.Set("user_id", "gone")

	wrapped := middleware.Sessions(store)(h.Me)
	if err := wrapped(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	cleared := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.CookieName && (ck.MaxAge < 0 || ck.Value == "") {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected session cookie to be expired")
	}
}
