// Package jsonfile persists users to a single flat file holding a JSON
// array of records in insertion order, matching the original data layout of
// the storefront. Every write is a full read-modify-write of the file; a
// single mutex serializes them so concurrent registrations cannot drop or
// duplicate records.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/minikart/storefront/internal/core/domain"
)

// UserRepository is a flat-file ports.UserRepository.
type UserRepository struct {
	path string

	mu     sync.Mutex
	lastID int64
}

// NewUserRepository creates the parent directory if needed. The file itself
// is created lazily on the first write; a missing file reads as an empty
// store.
func NewUserRepository(path string) (*UserRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("jsonfile: create data dir: %w", err)
		}
	}
	return &UserRepository{path: path}, nil
}

// fileUser is the on-disk record. The hash is stored under "password",
// preserving the original file format.
type fileUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateUser
		}
	}

	created := *user
	created.ID = r.nextID()
	users = append(users, fileUser{
		ID:       created.ID,
		Name:     created.Name,
		Email:    created.Email,
		Password: created.PasswordHash,
	})

	if err := r.persist(users); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return toDomain(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return toDomain(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make([]*domain.User, len(users))
	for i, u := range users {
		out[i] = toDomain(u)
	}
	return out, nil
}

// nextID returns millisecond timestamps as string ids, bumping by one when
// two creations land in the same millisecond. Caller holds r.mu.
func (r *UserRepository) nextID() string {
	ms := time.Now().UnixMilli()
	if ms <= r.lastID {
		ms = r.lastID + 1
	}
	r.lastID = ms
	return strconv.FormatInt(ms, 10)
}

func (r *UserRepository) load() ([]fileUser, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("jsonfile: read %s: %w", r.path, err)
	}

	var users []fileUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("jsonfile: decode %s: %w", r.path, err)
	}
	return users, nil
}

func (r *UserRepository) persist(users []fileUser) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: encode users: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("jsonfile: write %s: %w", r.path, err)
	}
	return nil
}

func toDomain(u fileUser) *domain.User {
	return &domain.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.Password,
	}
}
