package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/karshdev/LeadBlock-BE/internal/storage"
)

// Repository handles credential data access over the flat-file user store.
type Repository struct {
	store *storage.Store
}

// NewRepository creates a credential repository.
func NewRepository(store *storage.Store) *Repository {
	return &Repository{store: store}
}

// FindByUsername returns the matching user, or nil when absent.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var users []User
	if err := r.store.Load(&users); err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == username {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// UpdatePassword replaces the stored secret of the user with the given id.
// Used to upgrade legacy plaintext records to bcrypt hashes.
func (r *Repository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	var users []User
	return r.store.Update(&users, func() error {
		for i := range users {
			if users[i].ID == id {
				users[i].Password = passwordHash
				return nil
			}
		}
		return ErrUserNotFound
	})
}

// EnsureDefaultAdmin seeds the default admin account when the store is empty.
// Calling it on a non-empty store is a no-op.
func (r *Repository) EnsureDefaultAdmin(ctx context.Context) error {
	var users []User
	if err := r.store.Load(&users); err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	return r.store.Save([]User{{
		ID:       DefaultAdminID,
		Username: DefaultAdminUsername,
		Password: string(hash),
		Role:     RoleAdmin,
	}})
}
