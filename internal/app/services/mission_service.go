package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/conexao/internal/app/auth"
	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/app/repositories"
	"github.com/yigit/conexao/internal/pkg/apperrors"
	"github.com/yigit/conexao/internal/pkg/simulate"
)

// MissionService defines the interface for mission operations
type MissionService interface {
	GetMissionsByNiche(ctx context.Context) []dto.MissionView
	GetMission(ctx context.Context, id string) (*models.Mission, error)
	ToggleGoal(ctx context.Context, id string, goal int, admin *models.User) (*models.Mission, error)
}

// missionServiceImpl implements MissionService
type missionServiceImpl struct {
	missionRepo  *repositories.MissionRepository
	authzService *auth.AuthorizationService
	backend      *simulate.Backend
	logger       zerolog.Logger
}

// NewMissionService creates a new MissionService
func NewMissionService(
	missionRepo *repositories.MissionRepository,
	authzService *auth.AuthorizationService,
	backend *simulate.Backend,
	logger zerolog.Logger,
) MissionService {
	return &missionServiceImpl{
		missionRepo:  missionRepo,
		authzService: authzService,
		backend:      backend,
		logger:       logger,
	}
}

// GetMissionsByNiche groups missions by niche in display order, skipping empty niches
func (s *missionServiceImpl) GetMissionsByNiche(ctx context.Context) []dto.MissionView {
	var groups []dto.MissionView
	for _, niche := range models.Niches {
		missions := s.missionRepo.ListByNiche(ctx, niche)
		if len(missions) == 0 {
			continue
		}
		groups = append(groups, dto.MissionView{Niche: niche, Missions: missions})
	}
	return groups
}

// GetMission retrieves a mission by ID
func (s *missionServiceImpl) GetMission(ctx context.Context, id string) (*models.Mission, error) {
	return s.missionRepo.FindByID(ctx, id)
}

// ToggleGoal flips the completion flag of one goal
func (s *missionServiceImpl) ToggleGoal(ctx context.Context, id string, goal int, admin *models.User) (*models.Mission, error) {
	if err := s.authzService.ValidateAdmin(ctx, userID(admin)); err != nil {
		return nil, err
	}

	var updated *models.Mission
	err := s.backend.Do(ctx, "admin.missions.toggleGoal", func() error {
		m, err := s.missionRepo.Update(ctx, id, func(m *models.Mission) error {
			if goal < 0 || goal >= len(m.Goals) {
				return apperrors.NewBadRequestError("goal index out of range")
			}
			m.Goals[goal].Completed = !m.Goals[goal].Completed
			return nil
		})
		updated = m
		return err
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("missionID", id).Int("goal", goal).Msg("Goal toggle rejected")
		return nil, err
	}

	s.logger.Info().Str("missionID", id).Int("goal", goal).Msg("Mission goal toggled")
	return updated, nil
}
