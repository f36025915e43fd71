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

// FavorService defines the interface for favor operations
type FavorService interface {
	ListFavors(ctx context.Context, filter *dto.FavorFilterRequest, page, size int, viewer *models.User) (*dto.FavorListResponse, error)
	GetFavor(ctx context.Context, id string, viewer *models.User) (*dto.FavorView, error)
	CreateFavor(ctx context.Context, req *dto.CreateFavorRequest, requester *models.User) (*models.Favor, error)
	AcceptFavor(ctx context.Context, id string, actor *models.User) (*models.Favor, error)
	CompleteFavor(ctx context.Context, id string, actor *models.User) (*models.Favor, error)
	CancelFavor(ctx context.Context, id string, actor *models.User) (*models.Favor, error)
	RateFavor(ctx context.Context, id string, actor *models.User, req *dto.RateFavorRequest) (*models.Favor, error)
	AdminCancelFavor(ctx context.Context, id string, admin *models.User) (*models.Favor, error)
}

// favorServiceImpl implements FavorService
type favorServiceImpl struct {
	favorRepo     *repositories.FavorRepository
	userRepo      *repositories.UserRepository
	communityRepo *repositories.CommunityRepository
	notifications NotificationService
	authzService  *auth.AuthorizationService
	backend       *simulate.Backend
	views         *viewBuilder
	now           Clock
	logger        zerolog.Logger
}

// NewFavorService creates a new FavorService
func NewFavorService(
	favorRepo *repositories.FavorRepository,
	userRepo *repositories.UserRepository,
	communityRepo *repositories.CommunityRepository,
	notifications NotificationService,
	authzService *auth.AuthorizationService,
	backend *simulate.Backend,
	logger zerolog.Logger,
) FavorService {
	return &favorServiceImpl{
		favorRepo:     favorRepo,
		userRepo:      userRepo,
		communityRepo: communityRepo,
		notifications: notifications,
		authzService:  authzService,
		backend:       backend,
		views:         &viewBuilder{userRepo: userRepo, communityRepo: communityRepo, authzService: authzService},
		now:           time.Now,
		logger:        logger,
	}
}

// ListFavors filters favors linearly and returns one page, newest first
func (s *favorServiceImpl) ListFavors(ctx context.Context, filter *dto.FavorFilterRequest, page, size int, viewer *models.User) (*dto.FavorListResponse, error) {
	if filter == nil {
		filter = &dto.FavorFilterRequest{}
	}
	s.logger.Debug().
		Interface("filter", filter).
		Int("page", page).
		Msg("Listing favors")

	matches := s.favorRepo.List(ctx, func(f *models.Favor) bool {
		return matchFavor(f, filter)
	})
	pageItems, info := helpers.Paginate(matches, page, size)

	return &dto.FavorListResponse{
		Favors:     s.views.favorViews(ctx, pageItems, viewer),
		Filter:     *filter,
		Pagination: info,
	}, nil
}

func matchFavor(f *models.Favor, filter *dto.FavorFilterRequest) bool {
	if filter.Type != "" && string(f.Type) != filter.Type {
		return false
	}
	if filter.Urgency != "" && string(f.Urgency) != filter.Urgency {
		return false
	}
	if filter.Status != "" && string(f.Status) != filter.Status {
		return false
	}
	if filter.Participation != "" && string(f.Participation) != filter.Participation {
		return false
	}
	if filter.CommunityID != "" && (f.CommunityID == nil || *f.CommunityID != filter.CommunityID) {
		return false
	}
	if filter.RequesterID != "" && f.RequesterID != filter.RequesterID {
		return false
	}
	if filter.ExecutorID != "" && !f.IsExecutor(filter.ExecutorID) {
		return false
	}
	return helpers.MatchesKeyword(filter.Q, f.Title, f.Description, f.Location)
}

// GetFavor returns a favor resolved for the viewer
func (s *favorServiceImpl) GetFavor(ctx context.Context, id string, viewer *models.User) (*dto.FavorView, error) {
	favor, err := s.favorRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Debug().Err(err).Str("favorID", id).Msg("Favor not found")
		return nil, err
	}
	view := s.views.favorView(ctx, favor, viewer)
	return &view, nil
}

// CreateFavor publishes a new open favor for the requester
func (s *favorServiceImpl) CreateFavor(ctx context.Context, req *dto.CreateFavorRequest, requester *models.User) (*models.Favor, error) {
	if requester == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	favor := &models.Favor{
		ID:            uuid.NewString(),
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Urgency:       models.Urgency(req.Urgency),
		Location:      strings.TrimSpace(req.Location),
		Type:          models.FavorType(req.Type),
		Participation: models.ParticipationType(req.Participation),
		Status:        models.FavorStatusOpen,
		RequesterID:   requester.ID,
		CreatedAt:     s.now(),
	}
	if favor.Type == models.FavorTypePaid {
		amount := req.Amount
		favor.Amount = &amount
	}
	if favor.IsCollective() {
		favor.Headcount = req.Headcount
	}

	if req.CommunityID != "" {
		community, err := s.communityRepo.GetByID(ctx, req.CommunityID)
		if err != nil {
			return nil, err
		}
		if !community.HasMember(requester.ID) {
			return nil, apperrors.NewCustomError(apperrors.ErrNotMember, "requester is not a community member").
				WithStatusMsg("Você precisa participar da comunidade para publicar nela.")
		}
		favor.CommunityID = &community.ID
	}

	err := s.backend.Do(ctx, "favors.create", func() error {
		if err := s.favorRepo.Create(ctx, favor); err != nil {
			return err
		}
		if _, err := s.userRepo.Update(ctx, requester.ID, func(u *models.User) error {
			u.FavorsRequested++
			return nil
		}); err != nil {
			if delErr := s.favorRepo.Delete(ctx, favor.ID); delErr != nil {
				s.logger.Error().Err(delErr).Str("favorID", favor.ID).Msg("Failed to roll back favor")
			}
			return err
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("requesterID", requester.ID).Msg("Failed to create favor")
		return nil, err
	}

	s.logger.Info().Str("favorID", favor.ID).Str("requesterID", requester.ID).Msg("Favor created")
	return favor, nil
}

// transition applies mutate to the stored favor inside the simulated call.
// A failed call or a rejected mutation leaves the favor untouched.
func (s *favorServiceImpl) transition(ctx context.Context, operation, id string, actor *models.User, mutate func(f *models.Favor, now time.Time) error) (*models.Favor, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	var updated *models.Favor
	err := s.backend.Do(ctx, operation, func() error {
		f, err := s.favorRepo.Update(ctx, id, func(f *models.Favor) error {
			return mutate(f, s.now())
		})
		if err != nil {
			return err
		}
		updated = f
		return nil
	})
	if err != nil {
		s.logger.Warn().Err(err).
			Str("operation", operation).
			Str("favorID", id).
			Str("actorID", actor.ID).
			Msg("Favor transition rejected")
		return nil, err
	}

	s.logger.Info().
		Str("operation", operation).
		Str("favorID", id).
		Str("actorID", actor.ID).
		Str("status", string(updated.Status)).
		Msg("Favor transition applied")
	return updated, nil
}

// AcceptFavor assigns the actor as executor
func (s *favorServiceImpl) AcceptFavor(ctx context.Context, id string, actor *models.User) (*models.Favor, error) {
	favor, err := s.transition(ctx, "favors.accept", id, actor, func(f *models.Favor, now time.Time) error {
		return f.Accept(actor.ID, now)
	})
	if err != nil {
		return nil, err
	}

	title := "Seu favor foi aceito"
	message := fmt.Sprintf("%s aceitou \"%s\".", actor.PublicName(), favor.Title)
	if favor.IsCollective() {
		title = "Novo participante"
		message = fmt.Sprintf("%s entrou em \"%s\" (%d de %d).", actor.PublicName(), favor.Title, len(favor.ExecutorIDs), favor.Headcount)
	}
	s.notifications.Notify(ctx, []string{favor.RequesterID}, models.NotificationFavorAccepted, title, message, favorLink(favor))
	return favor, nil
}

// CompleteFavor marks an accepted favor as done and credits its executors
func (s *favorServiceImpl) CompleteFavor(ctx context.Context, id string, actor *models.User) (*models.Favor, error) {
	favor, err := s.transition(ctx, "favors.complete", id, actor, func(f *models.Favor, now time.Time) error {
		return f.Complete(actor.ID, now)
	})
	if err != nil {
		return nil, err
	}

	for _, executorID := range favor.Executors() {
		if _, err := s.userRepo.Update(ctx, executorID, func(u *models.User) error {
			u.FavorsCompleted++
			return nil
		}); err != nil {
			s.logger.Warn().Err(err).Str("userID", executorID).Msg("Failed to update completed counter")
		}
	}

	s.notifications.Notify(ctx, without(participants(favor), actor.ID), models.NotificationFavorCompleted,
		"Favor concluído",
		fmt.Sprintf("\"%s\" foi concluído. Deixe sua avaliação!", favor.Title),
		favorLink(favor))
	return favor, nil
}

// CancelFavor cancels an open or accepted favor on behalf of its requester
func (s *favorServiceImpl) CancelFavor(ctx context.Context, id string, actor *models.User) (*models.Favor, error) {
	favor, err := s.transition(ctx, "favors.cancel", id, actor, func(f *models.Favor, now time.Time) error {
		return f.Cancel(actor.ID, now)
	})
	if err != nil {
		return nil, err
	}

	s.notifications.Notify(ctx, favor.Executors(), models.NotificationFavorCancelled,
		"Favor cancelado",
		fmt.Sprintf("%s cancelou \"%s\".", actor.PublicName(), favor.Title),
		favorLink(favor))
	return favor, nil
}

// RateFavor records the actor's rating of the other side
func (s *favorServiceImpl) RateFavor(ctx context.Context, id string, actor *models.User, req *dto.RateFavorRequest) (*models.Favor, error) {
	feedback := strings.TrimSpace(req.Feedback)
	favor, err := s.transition(ctx, "favors.rate", id, actor, func(f *models.Favor, now time.Time) error {
		return f.Rate(actor.ID, req.Score, feedback, now)
	})
	if err != nil {
		return nil, err
	}

	recipients := []string{favor.RequesterID}
	if favor.IsRequester(actor.ID) {
		recipients = favor.Executors()
	}
	s.notifications.Notify(ctx, recipients, models.NotificationFavorRated,
		"Você recebeu uma avaliação",
		fmt.Sprintf("%s avaliou \"%s\" com %d estrela(s).", actor.PublicName(), favor.Title, req.Score),
		favorLink(favor))
	return favor, nil
}

// AdminCancelFavor lets a moderator cancel any favor that is still in progress
func (s *favorServiceImpl) AdminCancelFavor(ctx context.Context, id string, admin *models.User) (*models.Favor, error) {
	if err := s.authzService.ValidateAdmin(ctx, userID(admin)); err != nil {
		return nil, err
	}

	favor, err := s.transition(ctx, "admin.favors.cancel", id, admin, func(f *models.Favor, now time.Time) error {
		return f.ForceCancel(now)
	})
	if err != nil {
		return nil, err
	}

	s.notifications.Notify(ctx, participants(favor), models.NotificationSystem,
		"Favor cancelado pela moderação",
		fmt.Sprintf("\"%s\" foi cancelado pela equipe de moderação.", favor.Title),
		favorLink(favor))
	return favor, nil
}

func favorLink(f *models.Favor) string {
	return "/favors/" + f.ID
}

func participants(f *models.Favor) []string {
	return append([]string{f.RequesterID}, f.Executors()...)
}

func without(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(v string) bool { return v == id })
}
