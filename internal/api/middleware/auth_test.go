package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/minikart/storefront/internal/core/domain"
)

type stubVerifier struct {
	verifyFn func(ctx context.Context, token string) (string, error)
}

func (s *stubVerifier) Verify(ctx context.Context, token string) (string, error) {
	return s.verifyFn(ctx, token)
}

func runAuth(t *testing.T, verifier *stubVerifier, token string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if token != "" {
		req.Header.Set(HeaderAuthToken, token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var sawUserID string
	next := func(c echo.Context) error {
		sawUserID, _ = c.Get("user_id").(string)
		return c.NoContent(http.StatusOK)
	}

	if err := Auth(verifier)(next)(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	return rec, sawUserID
}

func msgOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body["msg"]
}

func TestAuth_MissingToken(t *testing.T) {
	verifier := &stubVerifier{
		verifyFn: func(ctx context.Context, token string) (string, error) {
			t.Fatal("verifier must not be called without a token")
			return "", nil
		},
	}

	rec, userID := runAuth(t, verifier, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := msgOf(t, rec); got != domain.ErrMissingToken.Error() {
		t.Fatalf("unexpected msg %q", got)
	}
	if userID != "" {
		t.Fatalf("next handler ran with user %q", userID)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{
		verifyFn: func(ctx context.Context, token string) (string, error) {
			return "", domain.ErrInvalidToken
		},
	}

	rec, userID := runAuth(t, verifier, "garbage")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := msgOf(t, rec); got != domain.ErrInvalidToken.Error() {
		t.Fatalf("unexpected msg %q", got)
	}
	if userID != "" {
		t.Fatalf("next handler ran with user %q", userID)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	verifier := &stubVerifier{
		verifyFn: func(ctx context.Context, token string) (string, error) {
			return "", domain.ErrTokenExpired
		},
	}

	rec, _ := runAuth(t, verifier, "stale")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	// Expiry gets its own message so clients can prompt a re-login.
	if got := msgOf(t, rec); got != domain.ErrTokenExpired.Error() {
		t.Fatalf("unexpected msg %q", got)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	verifier := &stubVerifier{
		verifyFn: func(ctx context.Context, token string) (string, error) {
			if token != "tok-123" {
				t.Fatalf("unexpected token %q", token)
			}
			return "u1", nil
		},
	}

	rec, userID := runAuth(t, verifier, "tok-123")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if userID != "u1" {
		t.Fatalf("expected user_id u1 in context, got %q", userID)
	}
}
