package auth

import "context"

// UserRepositoryInterface defines credential data access for the service.
type UserRepositoryInterface interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
