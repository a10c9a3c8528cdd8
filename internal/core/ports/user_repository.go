package ports

import (
	"context"

	"github.com/minikart/storefront/internal/core/domain"
)

// UserRepository defines persistence for registered users. Implementations
// are the sole writers of the user record set and own duplicate detection:
// Create must fail with domain.ErrDuplicateUser when the email already
// exists, without mutating the store.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create assigns a unique id, appends the record, and returns the
	// stored user.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// List returns all users in insertion order.
	List(ctx context.Context) ([]*domain.User, error)
}
