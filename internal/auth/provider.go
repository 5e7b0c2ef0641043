package auth

import (
	"context"
	"errors"

	"github.com/yishak-cs/campus-meals/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountExists      = errors.New("an account with this email already exists")
	ErrInvalidToken       = errors.New("invalid or expired session")
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
)

// Provider is the identity boundary the HTTP layer signs users in through.
// The meal planning core never depends on it.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignUp(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context, token string) error
	Subscribe() (<-chan SessionEvent, func())
}

// SessionEventKind says what happened to a session
type SessionEventKind string

const (
	SessionSignedIn  SessionEventKind = "signed_in"
	SessionSignedOut SessionEventKind = "signed_out"
)

// SessionEvent is delivered to subscribers whenever a session starts or ends
type SessionEvent struct {
	Kind    SessionEventKind
	Session models.Session
}
