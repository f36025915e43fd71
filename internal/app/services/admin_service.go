package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/conexao/internal/app/auth"
	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/app/repositories"
	"github.com/yigit/conexao/internal/pkg/simulate"
)

// SnapshotFunc builds the data set a fixture reset restores.
type SnapshotFunc func(now time.Time) (*repositories.Snapshot, error)

// AdminService defines the interface for moderation-wide operations
type AdminService interface {
	GetStats(ctx context.Context, admin *models.User) (*dto.AdminStats, error)
	ResetFixtures(ctx context.Context, admin *models.User) error
}

// adminServiceImpl implements AdminService
type adminServiceImpl struct {
	repos        *repositories.Repositories
	snapshot     SnapshotFunc
	authzService *auth.AuthorizationService
	backend      *simulate.Backend
	now          Clock
	logger       zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	repos *repositories.Repositories,
	snapshot SnapshotFunc,
	authzService *auth.AuthorizationService,
	backend *simulate.Backend,
	logger zerolog.Logger,
) AdminService {
	return &adminServiceImpl{
		repos:        repos,
		snapshot:     snapshot,
		authzService: authzService,
		backend:      backend,
		now:          time.Now,
		logger:       logger,
	}
}

// GetStats returns the counters of the admin dashboard
func (s *adminServiceImpl) GetStats(ctx context.Context, admin *models.User) (*dto.AdminStats, error) {
	if err := s.authzService.ValidateAdmin(ctx, userID(admin)); err != nil {
		return nil, err
	}

	byStatus := func(status models.FavorStatus) int {
		return s.repos.FavorRepository.Count(ctx, func(f *models.Favor) bool { return f.Status == status })
	}
	return &dto.AdminStats{
		Users:           s.repos.UserRepository.Count(ctx),
		Favors:          s.repos.FavorRepository.Count(ctx, nil),
		OpenFavors:      byStatus(models.FavorStatusOpen),
		AcceptedFavors:  byStatus(models.FavorStatusAccepted),
		CompletedFavors: byStatus(models.FavorStatusCompleted),
		CancelledFavors: byStatus(models.FavorStatusCancelled),
		Communities:     s.repos.CommunityRepository.Count(ctx),
		PendingReports:  s.repos.ReportRepository.CountByStatus(ctx, models.ReportStatusPending),
		Missions:        s.repos.MissionRepository.Count(ctx),
	}, nil
}

// ResetFixtures discards runtime changes and reloads the fixture data set
func (s *adminServiceImpl) ResetFixtures(ctx context.Context, admin *models.User) error {
	if err := s.authzService.ValidateAdmin(ctx, userID(admin)); err != nil {
		return err
	}

	err := s.backend.Do(ctx, "admin.fixtures.reset", func() error {
		snap, err := s.snapshot(s.now())
		if err != nil {
			return err
		}
		s.repos.Load(snap)
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Fixture reset failed")
		return err
	}

	s.logger.Warn().Str("adminID", admin.ID).Msg("Fixture data reset")
	return nil
}
