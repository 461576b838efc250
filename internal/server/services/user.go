// Package services contains server-side business logic. UserService covers
// registration and login; PostService covers ownership-scoped post CRUD.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/William0209/backend-last/internal/common"
	"github.com/William0209/backend-last/internal/server/auth"
	"github.com/William0209/backend-last/internal/server/models"
	"github.com/William0209/backend-last/internal/server/repositories/users"
)

const (
	maxEmailLen    = 254
	maxPasswordLen = 72
)

// TokenIssuer mints a session token for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type UserService struct {
	users  users.Repository
	hasher auth.Hasher
	tokens TokenIssuer
}

func NewUserService(repo users.Repository, hasher auth.Hasher, tokens TokenIssuer) *UserService {
	return &UserService{
		users:  repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates an account for email. The email is trimmed and lower-cased
// before storage. A taken email yields common.ErrIdentityTaken and leaves the
// existing account untouched.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.users.Create(ctx, &models.User{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrIdentityTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Login checks the credentials and returns a fresh session token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return "", err
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUserNotFound
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(email, password string) error {
	switch {
	case email == "":
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	case len(email) > maxEmailLen:
		return fmt.Errorf("%w: email is too long", common.ErrValidation)
	case !strings.Contains(email, "@"):
		return fmt.Errorf("%w: email is invalid", common.ErrValidation)
	case password == "":
		return fmt.Errorf("%w: password is required", common.ErrValidation)
	case len(password) > maxPasswordLen:
		return fmt.Errorf("%w: password is too long", common.ErrValidation)
	}
	return nil
}
