package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/minikart/storefront/internal/core/domain"
)

type stubUserRepo struct {
	users []*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateUser
		}
	}
	r.seq++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("u%d", r.seq)
	r.users = append(r.users, created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, len(r.users))
	for i, u := range r.users {
		out[i] = cloneUser(u)
	}
	return out, nil
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	token, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	stored, err := repo.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	loginToken, err := svc.Login(context.Background(), "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("login after register failed: %v", err)
	}
	if loginToken == "" {
		t.Fatalf("expected login token, got empty")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Bobby", "bob@example.com", "pass2"); !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}

	users, _ := repo.List(context.Background())
	if len(users) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(users))
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "Carol", "carol@example.com", "goodpass")

	_, wrongPass := svc.Login(context.Background(), "carol@example.com", "badpass")
	_, unknownUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPass != unknownUser {
		t.Fatalf("failures must be indistinguishable: %v vs %v", wrongPass, unknownUser)
	}
}

func TestAuthService_TokenClaims(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	token, err := svc.Register(context.Background(), "Dave", "dave@example.com", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "u1" {
		t.Fatalf("expected sub u1, got %v", claims["sub"])
	}

	exp, _ := claims.GetExpirationTime()
	iat, _ := claims.GetIssuedAt()
	if got := exp.Sub(iat.Time); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %v", got)
	}
}

func TestAuthService_Verify_Expiry(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	// A token 59 minutes into its lifetime still verifies.
	svc.now = func() time.Time { return time.Now().Add(-59 * time.Minute) }
	token, err := svc.Register(context.Background(), "Erin", "erin@example.com", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Verify(context.Background(), token); err != nil {
		t.Fatalf("token rejected at T+59min: %v", err)
	}

	// One issued 61 minutes ago is expired.
	svc.now = func() time.Time { return time.Now().Add(-61 * time.Minute) }
	expired, err := svc.Login(context.Background(), "erin@example.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := svc.Verify(context.Background(), expired); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at T+61min, got %v", err)
	}
}

func TestAuthService_Verify_Invalid(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Verify(context.Background(), ""); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if _, err := svc.Verify(context.Background(), "not-a-jwt"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}

	other := NewAuthService(repo, "different-secret", time.Hour)
	token, err := other.Register(context.Background(), "Frank", "frank@example.com", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong signature, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	token, err := svc.Register(context.Background(), "Grace", "grace@example.com", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Profile(context.Background(), token)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if user.ID != "u1" || user.Name != "Grace" || user.Email != "grace@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// Records are never deleted in normal operation; simulate the defensive
	// branch anyway.
	repo.users = nil
	if _, err := svc.Profile(context.Background(), token); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
