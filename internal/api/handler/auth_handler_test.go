package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/minikart/storefront/internal/api/middleware"
	"github.com/minikart/storefront/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (string, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
	verifyFn   func(ctx context.Context, token string) (string, error)
	profileFn  func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Verify(ctx context.Context, token string) (string, error) {
	return s.verifyFn(ctx, token)
}

func (s *stubAuthService) Profile(ctx context.Context, token string) (*domain.User, error) {
	return s.profileFn(ctx, token)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestAuthHandler_Register(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			if name != "Alice" || email != "alice@example.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return "tok-123", nil
		},
	})

	req := jsonRequest(http.MethodPost, "/register", `{"name":"Alice","email":"alice@example.com","password":"secret1"}`)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["token"] != "tok-123" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			return "", domain.ErrDuplicateUser
		},
	})

	req := jsonRequest(http.MethodPost, "/register", `{"name":"Alice","email":"alice@example.com","password":"secret1"}`)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["msg"] != "User already exists" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@example.com","password":"secret1"}`},
		{"bad email", `{"name":"A","email":"not-an-email","password":"secret1"}`},
		{"short password", `{"name":"A","email":"a@example.com","password":"123"}`},
	}

	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			t.Fatal("service must not be called on invalid input")
			return "", nil
		},
	})

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			if err := h.Register(e.NewContext(jsonRequest(http.MethodPost, "/register", tc.body), rec)); err != nil {
				t.Fatalf("register: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if body := decodeBody(t, rec); body["msg"] == "" {
				t.Fatalf("expected validation message, got %v", body)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "tok-456", nil
		},
	})

	rec := httptest.NewRecorder()
	req := jsonRequest(http.MethodPost, "/login", `{"email":"alice@example.com","password":"secret1"}`)
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["token"] != "tok-456" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	})

	rec := httptest.NewRecorder()
	req := jsonRequest(http.MethodPost, "/login", `{"email":"alice@example.com","password":"wrong"}`)
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["msg"] != "Invalid credentials" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		profileFn: func(ctx context.Context, token string) (*domain.User, error) {
			if token != "tok-123" {
				t.Fatalf("unexpected token %q", token)
			}
			return &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set(middleware.HeaderAuthToken, "tok-123")
	rec := httptest.NewRecorder()

	if err := h.Profile(e.NewContext(req, rec)); err != nil {
		t.Fatalf("profile: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["id"] != "u1" || body["email"] != "alice@example.com" {
		t.Fatalf("unexpected body: %v", body)
	}
	// The hash must never cross the wire.
	if _, leaked := body["password"]; leaked {
		t.Fatalf("password hash leaked: %v", body)
	}
}

func TestAuthHandler_Profile_TokenErrors(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		err     error
		wantMsg string
	}{
		{"missing token", "", nil, domain.ErrMissingToken.Error()},
		{"invalid token", "garbage", domain.ErrInvalidToken, domain.ErrInvalidToken.Error()},
		{"expired token", "stale", domain.ErrTokenExpired, domain.ErrTokenExpired.Error()},
	}

	e := newEcho()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{
				profileFn: func(ctx context.Context, token string) (*domain.User, error) {
					return nil, tc.err
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tc.header != "" {
				req.Header.Set(middleware.HeaderAuthToken, tc.header)
			}
			rec := httptest.NewRecorder()

			if err := h.Profile(e.NewContext(req, rec)); err != nil {
				t.Fatalf("profile: %v", err)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if body := decodeBody(t, rec); body["msg"] != tc.wantMsg {
				t.Fatalf("expected msg %q, got %v", tc.wantMsg, body)
			}
		})
	}
}

func TestAuthHandler_Profile_UserDeleted(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		profileFn: func(ctx context.Context, token string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set(middleware.HeaderAuthToken, "tok-for-deleted-user")
	rec := httptest.NewRecorder()

	if err := h.Profile(e.NewContext(req, rec)); err != nil {
		t.Fatalf("profile: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
