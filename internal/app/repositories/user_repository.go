package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/pkg/apperrors"
)

// UserRepository holds users in memory
type UserRepository struct {
	store *memStore[models.User]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		store: newMemStore(func(u *models.User) string { return u.ID }, (*models.User).Clone),
	}
}

// Reset replaces every user with the given fixtures
func (r *UserRepository) Reset(users []*models.User) {
	r.store.reset(users)
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("user %q: %w", id, apperrors.ErrUserNotFound)
	}
	return user, nil
}

// FindByEmail retrieves a user by e-mail, ignoring case
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	matches := r.store.filter(func(u *models.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if len(matches) == 0 {
		return nil, fmt.Errorf("user with email %q: %w", email, apperrors.ErrUserNotFound)
	}
	return matches[0], nil
}

// FindManyByIDs resolves ids in order, skipping unknown ones
func (r *UserRepository) FindManyByIDs(ctx context.Context, ids []string) []*models.User {
	users := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.store.get(id); ok {
			users = append(users, u)
		}
	}
	return users
}

// List returns every user in join order
func (r *UserRepository) List(ctx context.Context) []*models.User {
	return r.store.all()
}

// Count returns the number of users
func (r *UserRepository) Count(ctx context.Context) int {
	return r.store.count(nil)
}

// Create stores a new user, rejecting duplicate e-mails
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.store.insert(user, func(existing *models.User) error {
		if strings.EqualFold(existing.Email, user.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
		if existing.ID == user.ID {
			return apperrors.ErrResourceAlreadyExists
		}
		return nil
	})
}

// Update applies fn to the stored user atomically
func (r *UserRepository) Update(ctx context.Context, id string, fn func(*models.User) error) (*models.User, error) {
	user, found, err := r.store.update(id, fn)
	if !found {
		return nil, fmt.Errorf("user %q: %w", id, apperrors.ErrUserNotFound)
	}
	return user, err
}
