package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type jwtService interface {
	GenerateToken(userID, username, role string) (string, error)
}

// Service contains the login business logic.
type Service struct {
	users UserRepositoryInterface
	jwt   jwtService
}

// NewService creates the auth service.
func NewService(users UserRepositoryInterface, jwt jwtService) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
	}
}

// Login validates credentials and issues a signed token.
//
// A supplied password that is itself a bcrypt hash is rejected outright, so a
// leaked stored hash cannot be replayed as a password. A stored secret that is
// still plaintext is upgraded: the supplied password is hashed and persisted
// before the comparison.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if isBcryptHash(req.Password) {
		return nil, "", ErrInvalidCredentials
	}

	if !isBcryptHash(user.Password) {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", fmt.Errorf("hash password: %w", err)
		}
		if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
			return nil, "", err
		}
		user.Password = string(hash)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$")
}
