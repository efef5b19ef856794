// Package service provides business logic for registration, authentication,
// and vocabulary management, delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkarpov/flashcards/internal/models"
	"github.com/mkarpov/flashcards/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// CreateUser inserts a new user together with their default language.
	// Returns repository.ErrDuplicate if the username is taken.
	CreateUser(ctx context.Context, username, passwordHash string) error
	// FindUser returns the user record, or repository.ErrNotFound.
	FindUser(ctx context.Context, username string) (models.User, error)
	// DeleteUser removes the user and everything the user owns.
	DeleteUser(ctx context.Context, username string) error
}

// AuthService implements registration and credential verification. Passwords
// are hashed with bcrypt; the plaintext never leaves this package and is
// never logged.
type AuthService struct {
	repo UserRepository
}

// NewAuthService constructs an AuthService using the provided repository.
func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Register hashes the password and creates the user account together with
// its default language. Returns ErrUsernameTaken if the username exists.
func (s *AuthService) Register(ctx context.Context, username, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.CreateUser(ctx, username, string(hash)); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	return models.User{Username: username, PasswordHash: string(hash)}, nil
}

// Authenticate verifies the username and password pair. An unknown username
// and a wrong password both return ErrInvalidCredentials so the caller
// cannot distinguish them.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.repo.FindUser(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// DeleteAccount removes the user and, via cascade, all of their languages,
// words, and translations.
func (s *AuthService) DeleteAccount(ctx context.Context, username string) error {
	if err := s.repo.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
