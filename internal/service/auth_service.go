package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/library-service/internal/auth"
	"github.com/spec-kit/library-service/internal/domain"
	"github.com/spec-kit/library-service/internal/repository"
	apperrors "github.com/spec-kit/library-service/pkg/util"
)

// AuthService coordinates librarian registration and login.
type AuthService struct {
	librarians repository.LibrarianRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(librarians repository.LibrarianRepository, tokens *auth.TokenManager, bcryptCost int) *AuthService {
	return &AuthService{librarians: librarians, tokens: tokens, bcryptCost: bcryptCost}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Register creates a librarian account, storing only a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.Librarian, error) {
	if _, err := s.librarians.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("librarian with this email already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	librarian := &domain.Librarian{Email: email, PasswordHash: hash}
	if err := s.librarians.Create(ctx, librarian); err != nil {
		// the pre-check can lose a race with a concurrent registration
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("librarian with this email already exists", nil)
		}
		return nil, err
	}
	return librarian, nil
}

// Login verifies credentials and issues an access-kind token. Unknown email
// and wrong password produce the same forbidden error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	librarian, err := s.librarians.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewForbidden("invalid email or password")
		}
		return "", err
	}
	if !auth.VerifyPassword(librarian.PasswordHash, password) {
		return "", apperrors.NewForbidden("invalid email or password")
	}

	token, _, err := s.tokens.Issue(librarian.Email, auth.TokenTypeAccess)
	if err != nil {
		return "", err
	}
	return token, nil
}
