package auth

import (
	"context"
	"sync"

	"github.com/yishak-cs/campus-meals/internal/models"
)

type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*models.User),
	}
}

func (r *InMemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return ErrAccountExists
	}
	stored := *user
	r.users[user.Email] = &stored
	return nil
}

func (r *InMemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (r *InMemoryUserRepository) Health(context.Context) error {
	return nil
}
