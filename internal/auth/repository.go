package auth

import (
	"context"
	"errors"

	"github.com/yishak-cs/campus-meals/internal/models"
)

// ErrUserNotFound is returned by repositories when no account matches
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	// Create stores a new user and returns ErrAccountExists when the email is taken
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Health(ctx context.Context) error
}
