package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/conexao/internal/app/auth"
	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/app/repositories"
	"github.com/yigit/conexao/internal/pkg/apperrors"
	"github.com/yigit/conexao/internal/pkg/helpers"
	"github.com/yigit/conexao/internal/pkg/simulate"
)

// CommunityService defines the interface for community operations
type CommunityService interface {
	GetAllCommunities(ctx context.Context, filter *dto.CommunityFilterRequest, page, size int, viewerID string) (*dto.CommunityListResponse, error)
	GetCommunityByID(ctx context.Context, id string, viewer *models.User) (*dto.CommunityDetailResponse, error)
	GetUserCommunities(ctx context.Context, userID string) []*models.Community
	CreateCommunity(ctx context.Context, req *dto.CreateCommunityRequest, creator *models.User) (*models.Community, error)
	JoinCommunity(ctx context.Context, communityID, userID string) error
	LeaveCommunity(ctx context.Context, communityID, userID string) error
}

// communityServiceImpl implements CommunityService
type communityServiceImpl struct {
	communityRepo *repositories.CommunityRepository
	favorRepo     *repositories.FavorRepository
	userRepo      *repositories.UserRepository
	notifications NotificationService
	backend       *simulate.Backend
	views         *viewBuilder
	now           Clock
	logger        zerolog.Logger
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(
	communityRepo *repositories.CommunityRepository,
	favorRepo *repositories.FavorRepository,
	userRepo *repositories.UserRepository,
	notifications NotificationService,
	authzService *auth.AuthorizationService,
	backend *simulate.Backend,
	logger zerolog.Logger,
) CommunityService {
	return &communityServiceImpl{
		communityRepo: communityRepo,
		favorRepo:     favorRepo,
		userRepo:      userRepo,
		notifications: notifications,
		backend:       backend,
		views:         &viewBuilder{userRepo: userRepo, communityRepo: communityRepo, authzService: authzService},
		now:           time.Now,
		logger:        logger,
	}
}

// GetAllCommunities retrieves all communities with filtering and pagination
func (s *communityServiceImpl) GetAllCommunities(ctx context.Context, filter *dto.CommunityFilterRequest, page, size int, viewerID string) (*dto.CommunityListResponse, error) {
	if filter == nil {
		filter = &dto.CommunityFilterRequest{}
	}
	s.logger.Debug().
		Interface("filter", filter).
		Int("page", page).
		Msg("Getting all communities")

	matches := s.communityRepo.GetAll(ctx, func(c *models.Community) bool {
		if filter.Type != "" && string(c.Type) != filter.Type {
			return false
		}
		return helpers.MatchesKeyword(filter.Q, c.Name, c.Description)
	})
	pageItems, info := helpers.Paginate(matches, page, size)

	views := make([]dto.CommunityView, 0, len(pageItems))
	for _, c := range pageItems {
		views = append(views, s.views.communityView(ctx, c, viewerID))
	}

	return &dto.CommunityListResponse{
		Communities: views,
		Filter:      *filter,
		Pagination:  info,
	}, nil
}

// GetCommunityByID retrieves a community with its members and favors
func (s *communityServiceImpl) GetCommunityByID(ctx context.Context, id string, viewer *models.User) (*dto.CommunityDetailResponse, error) {
	community, err := s.communityRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Debug().Err(err).Str("communityID", id).Msg("Community not found")
		return nil, err
	}

	favors := s.favorRepo.List(ctx, func(f *models.Favor) bool {
		return f.CommunityID != nil && *f.CommunityID == community.ID
	})

	return &dto.CommunityDetailResponse{
		CommunityView: s.views.communityView(ctx, community, userID(viewer)),
		Members:       s.userRepo.FindManyByIDs(ctx, community.MemberIDs),
		Favors:        s.views.favorViews(ctx, favors, viewer),
	}, nil
}

// GetUserCommunities lists the communities a user belongs to
func (s *communityServiceImpl) GetUserCommunities(ctx context.Context, userID string) []*models.Community {
	if userID == "" {
		return nil
	}
	return s.communityRepo.GetByMember(ctx, userID)
}

// CreateCommunity creates a new community with the creator as first member
func (s *communityServiceImpl) CreateCommunity(ctx context.Context, req *dto.CreateCommunityRequest, creator *models.User) (*models.Community, error) {
	if creator == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	community := &models.Community{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Type:        models.CommunityType(req.Type),
		CreatorID:   creator.ID,
		MemberIDs:   []string{creator.ID},
		CreatedAt:   s.now(),
	}

	err := s.backend.Do(ctx, "communities.create", func() error {
		return s.communityRepo.Create(ctx, community)
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("name", community.Name).
			Msg("Failed to create community")
		return nil, err
	}

	s.logger.Info().Str("communityID", community.ID).Str("creatorID", creator.ID).Msg("Community created")
	return community, nil
}

// JoinCommunity adds the user to a public community
func (s *communityServiceImpl) JoinCommunity(ctx context.Context, communityID, userID string) error {
	if userID == "" {
		return apperrors.ErrUnauthenticated
	}

	var community *models.Community
	err := s.backend.Do(ctx, "communities.join", func() error {
		updated, err := s.communityRepo.Update(ctx, communityID, func(c *models.Community) error {
			if c.HasMember(userID) {
				return apperrors.ErrAlreadyMember
			}
			if c.Type == models.CommunityPrivate {
				return apperrors.ErrPrivateCommunity
			}
			c.MemberIDs = append(c.MemberIDs, userID)
			return nil
		})
		community = updated
		return err
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("communityID", communityID).Str("userID", userID).Msg("Join rejected")
		return err
	}

	if joiner, err := s.userRepo.FindByID(ctx, userID); err == nil {
		s.notifications.Notify(ctx, []string{community.CreatorID}, models.NotificationCommunity,
			"Novo membro na comunidade",
			fmt.Sprintf("%s entrou em %s.", joiner.PublicName(), community.Name),
			"/communities/"+community.ID)
	}
	return nil
}

// LeaveCommunity removes a member; the creator stays
func (s *communityServiceImpl) LeaveCommunity(ctx context.Context, communityID, userID string) error {
	if userID == "" {
		return apperrors.ErrUnauthenticated
	}

	err := s.backend.Do(ctx, "communities.leave", func() error {
		_, err := s.communityRepo.Update(ctx, communityID, func(c *models.Community) error {
			if !c.HasMember(userID) {
				return apperrors.ErrNotMember
			}
			if c.CreatorID == userID {
				return apperrors.ErrCreatorCannotLeave
			}
			c.MemberIDs = slices.DeleteFunc(c.MemberIDs, func(id string) bool { return id == userID })
			return nil
		})
		return err
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("communityID", communityID).Str("userID", userID).Msg("Leave rejected")
		return err
	}
	return nil
}
