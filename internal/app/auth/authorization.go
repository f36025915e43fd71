package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/app/repositories"
	"github.com/yigit/conexao/internal/pkg/apperrors"
	"github.com/yigit/conexao/internal/pkg/logger"
)

// ErrNotAdmin is returned when a member reaches the moderation UI.
var ErrNotAdmin = fmt.Errorf("only administrators can perform this action: %w", apperrors.ErrPermissionDenied)

// AuthorizationService decides which actions the acting user may take
type AuthorizationService struct {
	userRepo *repositories.UserRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo *repositories.UserRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo: userRepo,
	}
}

// IsAdmin checks if the user has the admin role
func (s *AuthorizationService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	user, err := s.GetUserInfo(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// ValidateAdmin validates if the user is an administrator or returns an error
func (s *AuthorizationService) ValidateAdmin(ctx context.Context, userID string) error {
	isAdmin, err := s.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrNotAdmin
	}
	return nil
}

// GetUserInfo returns the acting user
func (s *AuthorizationService) GetUserInfo(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Warn().Str("userID", userID).Msg("Session points at an unknown user")
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to get user information: %w", err)
	}
	return user, nil
}

// FavorPermissions lists the lifecycle actions viewer may take on favor.
// A nil viewer gets no actions.
func (s *AuthorizationService) FavorPermissions(favor *models.Favor, viewer *models.User) dto.FavorPermissions {
	if favor == nil || viewer == nil {
		return dto.FavorPermissions{}
	}

	id := viewer.ID
	involved := favor.IsRequester(id) || favor.IsExecutor(id)
	return dto.FavorPermissions{
		CanAccept:   favor.CanAccept(id) == nil,
		CanComplete: favor.CanComplete(id) == nil,
		CanCancel:   favor.CanCancel(id) == nil,
		CanRate:     favor.CanRate(id) == nil,
		CanReport:   !favor.IsRequester(id),
		HasRated:    involved && favor.HasRated(id),
	}
}

// CommunityPermissions returns the viewer's membership and the join/leave actions open to them.
func (s *AuthorizationService) CommunityPermissions(community *models.Community, viewerID string) (isMember, canJoin, canLeave bool) {
	if community == nil || viewerID == "" {
		return false, false, false
	}
	isMember = community.HasMember(viewerID)
	canJoin = !isMember && community.Type == models.CommunityPublic
	canLeave = isMember && community.CreatorID != viewerID
	return isMember, canJoin, canLeave
}
