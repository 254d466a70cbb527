package repository

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUserAlreadyExists is returned when a username is already taken.
	ErrUserAlreadyExists = errors.New("username already exists")
	// ErrUserNotFound is returned when no row matches the username.
	ErrUserNotFound = errors.New("user not found")
)

// User is one row of the credential store. Rows are created on signup
// and read on login; they are never updated or deleted.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// UserDAO defines the credential store operations.
type UserDAO interface {
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Close() error
}
