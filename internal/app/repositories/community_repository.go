package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/pkg/apperrors"
)

// CommunityRepository holds communities in memory
type CommunityRepository struct {
	store *memStore[models.Community]
}

// NewCommunityRepository creates a new CommunityRepository
func NewCommunityRepository() *CommunityRepository {
	return &CommunityRepository{
		store: newMemStore(func(c *models.Community) string { return c.ID }, (*models.Community).Clone),
	}
}

// Reset replaces every community with the given fixtures
func (r *CommunityRepository) Reset(communities []*models.Community) {
	r.store.reset(communities)
}

// GetByID retrieves a community by ID
func (r *CommunityRepository) GetByID(ctx context.Context, id string) (*models.Community, error) {
	community, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("community %q: %w", id, apperrors.ErrCommunityNotFound)
	}
	return community, nil
}

// GetAll returns communities accepted by keep (nil keeps all) in creation order
func (r *CommunityRepository) GetAll(ctx context.Context, keep func(*models.Community) bool) []*models.Community {
	if keep == nil {
		return r.store.all()
	}
	return r.store.filter(keep)
}

// GetByMember returns the communities userID belongs to
func (r *CommunityRepository) GetByMember(ctx context.Context, userID string) []*models.Community {
	return r.store.filter(func(c *models.Community) bool { return c.HasMember(userID) })
}

// Count returns the number of communities
func (r *CommunityRepository) Count(ctx context.Context) int {
	return r.store.count(nil)
}

// Create stores a new community, rejecting duplicate names
func (r *CommunityRepository) Create(ctx context.Context, community *models.Community) error {
	return r.store.insert(community, func(existing *models.Community) error {
		if strings.EqualFold(existing.Name, community.Name) || existing.ID == community.ID {
			return apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, "community already exists").
				WithStatusMsg("Já existe uma comunidade com esse nome.")
		}
		return nil
	})
}

// Update applies fn to the stored community atomically
func (r *CommunityRepository) Update(ctx context.Context, id string, fn func(*models.Community) error) (*models.Community, error) {
	community, found, err := r.store.update(id, fn)
	if !found {
		return nil, fmt.Errorf("community %q: %w", id, apperrors.ErrCommunityNotFound)
	}
	return community, err
}
