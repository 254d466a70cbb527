package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"scribepad/internal/app/auth"
	"scribepad/internal/app/metrics"
	"scribepad/internal/app/repository"
)

// AuthServiceImpl implements AuthService over a UserDAO and a token
// manager.
type AuthServiceImpl struct {
	dao    repository.UserDAO
	tokens *auth.TokenManager
	logger *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(dao repository.UserDAO, tokens *auth.TokenManager, logger *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		dao:    dao,
		tokens: tokens,
		logger: logger,
	}
}

// Signup hashes the password and inserts a new credential row.
// repository.ErrUserAlreadyExists passes through for the handler to
// translate.
func (s *AuthServiceImpl) Signup(ctx context.Context, username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.dao.CreateUser(ctx, username, hash); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return err
		}
		s.logger.Error("Failed to create user", "username", username, "error", err)
		return err
	}

	s.logger.Info("User created", "username", username)
	return nil
}

// Login verifies credentials and issues a session token. Every failure
// path, including store errors, collapses to ErrInvalidCredentials so
// verification fails closed and leaks nothing.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.dao.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Error("Credential lookup failed", "username", username, "error", err)
		}
		metrics.LoginsTotal.WithLabelValues(metrics.StatusError).Inc()
		return "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		metrics.LoginsTotal.WithLabelValues(metrics.StatusError).Inc()
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.logger.Error("Failed to issue session token", "username", username, "error", err)
		metrics.LoginsTotal.WithLabelValues(metrics.StatusError).Inc()
		return "", fmt.Errorf("issue session token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues(metrics.StatusOK).Inc()
	return token, nil
}
