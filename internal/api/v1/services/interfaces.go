package services

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrInvalidCredentials is returned by Login for every failure that
	// must not reveal whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNoSheet is returned when no practice sheet has been generated.
	ErrNoSheet = errors.New("no practice sheet generated")
)

// AuthService handles signup and login against the credential store.
type AuthService interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
}

// TranscriptionService turns one audio payload into text.
type TranscriptionService interface {
	TranscribeClip(ctx context.Context, audio io.Reader) (string, error)
}

// SheetService generates and publishes practice-sheet PDFs.
type SheetService interface {
	GenerateSheet(ctx context.Context, text string) (string, error)
	LatestSheetPath() (string, error)
	FontLoaded() bool
}
