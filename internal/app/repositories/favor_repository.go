package repositories

import (
	"context"
	"fmt"
	"slices"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/pkg/apperrors"
)

// FavorRepository holds favors in memory
type FavorRepository struct {
	store *memStore[models.Favor]
}

// NewFavorRepository creates a new FavorRepository
func NewFavorRepository() *FavorRepository {
	return &FavorRepository{
		store: newMemStore(func(f *models.Favor) string { return f.ID }, (*models.Favor).Clone),
	}
}

// Reset replaces every favor with the given fixtures
func (r *FavorRepository) Reset(favors []*models.Favor) {
	r.store.reset(favors)
}

// FindByID retrieves a favor by ID
func (r *FavorRepository) FindByID(ctx context.Context, id string) (*models.Favor, error) {
	favor, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("favor %q: %w", id, apperrors.ErrFavorNotFound)
	}
	return favor, nil
}

// List returns favors accepted by keep (nil keeps all), newest first
func (r *FavorRepository) List(ctx context.Context, keep func(*models.Favor) bool) []*models.Favor {
	var favors []*models.Favor
	if keep == nil {
		favors = r.store.all()
	} else {
		favors = r.store.filter(keep)
	}
	slices.SortStableFunc(favors, func(a, b *models.Favor) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return favors
}

// Count returns the number of favors accepted by keep (nil counts all)
func (r *FavorRepository) Count(ctx context.Context, keep func(*models.Favor) bool) int {
	return r.store.count(keep)
}

// Create stores a new favor
func (r *FavorRepository) Create(ctx context.Context, favor *models.Favor) error {
	return r.store.insert(favor, func(existing *models.Favor) error {
		if existing.ID == favor.ID {
			return apperrors.ErrResourceAlreadyExists
		}
		return nil
	})
}

// Delete removes a favor
func (r *FavorRepository) Delete(ctx context.Context, id string) error {
	if !r.store.remove(id) {
		return fmt.Errorf("favor %q: %w", id, apperrors.ErrFavorNotFound)
	}
	return nil
}

// Update applies fn to the stored favor atomically
func (r *FavorRepository) Update(ctx context.Context, id string, fn func(*models.Favor) error) (*models.Favor, error) {
	favor, found, err := r.store.update(id, fn)
	if !found {
		return nil, fmt.Errorf("favor %q: %w", id, apperrors.ErrFavorNotFound)
	}
	return favor, err
}
