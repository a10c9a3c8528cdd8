package ports

import (
	"context"

	"github.com/minikart/storefront/internal/core/domain"
)

// AuthService issues and validates bearer credentials.
type AuthService interface {
	// Register creates an account and returns a fresh token for it.
	Register(ctx context.Context, name, email, password string) (string, error)
	// Login returns a fresh token for valid credentials. Unknown email and
	// wrong password are indistinguishable: both fail with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	// Verify checks a token's signature and expiry and returns the user id
	// it is bound to.
	Verify(ctx context.Context, token string) (string, error)
	// Profile composes Verify with a store lookup.
	Profile(ctx context.Context, token string) (*domain.User, error)
}

// TokenVerifier is the subset of AuthService the HTTP middleware needs.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}
