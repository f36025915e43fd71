package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/pkg/apperrors"
)

// MissionRepository holds missions in memory
type MissionRepository struct {
	store *memStore[models.Mission]
}

// NewMissionRepository creates a new MissionRepository
func NewMissionRepository() *MissionRepository {
	return &MissionRepository{
		store: newMemStore(func(m *models.Mission) string { return m.ID }, (*models.Mission).Clone),
	}
}

// Reset replaces every mission with the given fixtures
func (r *MissionRepository) Reset(missions []*models.Mission) {
	r.store.reset(missions)
}

// FindByID retrieves a mission by ID
func (r *MissionRepository) FindByID(ctx context.Context, id string) (*models.Mission, error) {
	mission, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("mission %q: %w", id, apperrors.ErrMissionNotFound)
	}
	return mission, nil
}

// List returns every mission in fixture order
func (r *MissionRepository) List(ctx context.Context) []*models.Mission {
	return r.store.all()
}

// ListByNiche returns the missions of one niche
func (r *MissionRepository) ListByNiche(ctx context.Context, niche models.Niche) []*models.Mission {
	return r.store.filter(func(m *models.Mission) bool { return m.Niche == niche })
}

// Count returns the number of missions
func (r *MissionRepository) Count(ctx context.Context) int {
	return r.store.count(nil)
}

// Update applies fn to the stored mission atomically
func (r *MissionRepository) Update(ctx context.Context, id string, fn func(*models.Mission) error) (*models.Mission, error) {
	mission, found, err := r.store.update(id, fn)
	if !found {
		return nil, fmt.Errorf("mission %q: %w", id, apperrors.ErrMissionNotFound)
	}
	return mission, err
}
