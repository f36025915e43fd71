package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/conexao/internal/app/auth"
	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/app/repositories"
	"github.com/yigit/conexao/internal/pkg/apperrors"
	"github.com/yigit/conexao/internal/pkg/helpers"
	"github.com/yigit/conexao/internal/pkg/simulate"
)

// suggestedFavors caps the open favors suggested on the dashboard.
const suggestedFavors = 4

// UserService defines the interface for user operations
type UserService interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserProfile(ctx context.Context, id string, viewer *models.User) (*dto.ProfileView, error)
	UpdateUserProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	GetUsersByFilter(ctx context.Context, filter *dto.UserFilterRequest) []*models.User
	GetDashboard(ctx context.Context, user *models.User) (*dto.DashboardView, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo         *repositories.UserRepository
	favorRepo        *repositories.FavorRepository
	communityRepo    *repositories.CommunityRepository
	notificationRepo *repositories.NotificationRepository
	backend          *simulate.Backend
	views            *viewBuilder
	logger           zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo *repositories.UserRepository,
	favorRepo *repositories.FavorRepository,
	communityRepo *repositories.CommunityRepository,
	notificationRepo *repositories.NotificationRepository,
	authzService *auth.AuthorizationService,
	backend *simulate.Backend,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		userRepo:         userRepo,
		favorRepo:        favorRepo,
		communityRepo:    communityRepo,
		notificationRepo: notificationRepo,
		backend:          backend,
		views:            &viewBuilder{userRepo: userRepo, communityRepo: communityRepo, authzService: authzService},
		logger:           logger,
	}
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	return user, nil
}

// GetUserProfile gathers a user's favors, ratings and communities
func (s *userServiceImpl) GetUserProfile(ctx context.Context, id string, viewer *models.User) (*dto.ProfileView, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &dto.ProfileView{
		User:        user,
		Requested:   s.favorRepo.List(ctx, func(f *models.Favor) bool { return f.RequesterID == id }),
		Executed:    s.favorRepo.List(ctx, func(f *models.Favor) bool { return f.IsExecutor(id) }),
		Communities: s.communityRepo.GetByMember(ctx, id),
		IsOwn:       viewer != nil && viewer.ID == id,
		CanReport:   viewer != nil && viewer.ID != id,
	}
	if user.SponsorID != nil {
		if sponsor, err := s.userRepo.FindByID(ctx, *user.SponsorID); err == nil {
			view.Sponsor = sponsor
		}
	}
	view.Ratings = s.receivedRatings(ctx, id, view.Requested, view.Executed)
	return view, nil
}

// receivedRatings collects the ratings other people left for the user
func (s *userServiceImpl) receivedRatings(ctx context.Context, id string, requested, executed []*models.Favor) []dto.ReceivedRating {
	var ratings []dto.ReceivedRating
	add := func(f *models.Favor, fromID string, r *models.Rating) {
		if r == nil {
			return
		}
		from, _ := s.userRepo.FindByID(ctx, fromID)
		ratings = append(ratings, dto.ReceivedRating{
			FavorID:    f.ID,
			FavorTitle: f.Title,
			From:       from,
			Rating:     *r,
		})
	}

	for _, f := range executed {
		add(f, f.RequesterID, f.RequesterRating)
	}
	for _, f := range requested {
		for _, executorID := range f.Executors() {
			add(f, executorID, f.ExecutorRatings[executorID])
		}
	}

	slices.SortStableFunc(ratings, func(a, b dto.ReceivedRating) int {
		return b.Rating.RatedAt.Compare(a.Rating.RatedAt)
	})
	return ratings
}

// UpdateUserProfile updates the editable profile fields
func (s *userServiceImpl) UpdateUserProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	var updated *models.User
	err := s.backend.Do(ctx, "users.updateProfile", func() error {
		u, err := s.userRepo.Update(ctx, userID, func(u *models.User) error {
			u.DisplayName = strings.TrimSpace(req.DisplayName)
			u.Phone = strings.TrimSpace(req.Phone)
			u.Bio = strings.TrimSpace(req.Bio)
			return nil
		})
		updated = u
		return err
	})
	if err != nil {
		s.logger.Error().Err(err).Str("userID", userID).Msg("Failed to update profile")
		return nil, err
	}

	s.logger.Info().Str("userID", userID).Msg("Profile updated")
	return updated, nil
}

// GetUsersByFilter lists users matching the keyword, for the admin UI
func (s *userServiceImpl) GetUsersByFilter(ctx context.Context, filter *dto.UserFilterRequest) []*models.User {
	q := ""
	if filter != nil {
		q = filter.Q
	}
	users := s.userRepo.List(ctx)
	return slices.DeleteFunc(users, func(u *models.User) bool {
		return !helpers.MatchesKeyword(q, u.Name, u.DisplayName, u.Email)
	})
}

// GetDashboard loads the dashboard sections concurrently, each through the simulated backend
func (s *userServiceImpl) GetDashboard(ctx context.Context, user *models.User) (*dto.DashboardView, error) {
	if user == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	view := &dto.DashboardView{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.backend.Do(gctx, "dashboard.requested", func() error {
			favors := s.favorRepo.List(gctx, func(f *models.Favor) bool {
				return f.RequesterID == user.ID && !f.Status.IsTerminal()
			})
			view.Requested = s.views.favorViews(gctx, favors, user)
			return nil
		})
	})
	g.Go(func() error {
		return s.backend.Do(gctx, "dashboard.executing", func() error {
			favors := s.favorRepo.List(gctx, func(f *models.Favor) bool {
				return f.IsExecutor(user.ID) && !f.Status.IsTerminal()
			})
			view.Executing = s.views.favorViews(gctx, favors, user)
			return nil
		})
	})
	g.Go(func() error {
		return s.backend.Do(gctx, "dashboard.suggested", func() error {
			favors := s.favorRepo.List(gctx, func(f *models.Favor) bool {
				return f.CanAccept(user.ID) == nil
			})
			if len(favors) > suggestedFavors {
				favors = favors[:suggestedFavors]
			}
			view.Suggested = s.views.favorViews(gctx, favors, user)
			return nil
		})
	})
	g.Go(func() error {
		return s.backend.Do(gctx, "dashboard.notifications", func() error {
			list := s.notificationRepo.ListByUser(gctx, user.ID)
			view.UnreadCount = s.notificationRepo.CountUnread(gctx, user.ID)
			if len(list) > suggestedFavors {
				list = list[:suggestedFavors]
			}
			view.Notifications = list
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn().Err(err).Str("userID", user.ID).Msg("Dashboard load failed")
		return nil, err
	}
	return view, nil
}
