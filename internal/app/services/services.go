package services

import (
	"context"
	"time"

	"github.com/yigit/conexao/internal/app/auth"
	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/app/repositories"
)

// Services defined in this package:
// - AuthService: mock login, registration and session lookup
// - FavorService: favor listing, detail and lifecycle transitions
// - CommunityService: communities, membership
// - UserService: profiles, profile editing and the dashboard
// - NotificationService: in-app notifications
// - ReportService: the reporting workflow and its moderation
// - MissionService: partner missions and their goals
// - AdminService: moderation counters and fixture reset
//
// Every mutation runs through simulate.Backend so it is delayed and may fail
// before any state changes.

// Clock returns the current time; tests replace it.
type Clock func() time.Time

// viewBuilder resolves favors into views with their users and the viewer's permissions.
type viewBuilder struct {
	userRepo      *repositories.UserRepository
	communityRepo *repositories.CommunityRepository
	authzService  *auth.AuthorizationService
}

func (b *viewBuilder) favorView(ctx context.Context, favor *models.Favor, viewer *models.User) dto.FavorView {
	view := dto.FavorView{
		Favor:       favor,
		Executors:   b.userRepo.FindManyByIDs(ctx, favor.Executors()),
		Permissions: b.authzService.FavorPermissions(favor, viewer),
	}
	if requester, err := b.userRepo.FindByID(ctx, favor.RequesterID); err == nil {
		view.Requester = requester
	}
	if favor.CommunityID != nil {
		if community, err := b.communityRepo.GetByID(ctx, *favor.CommunityID); err == nil {
			view.Community = community
		}
	}
	return view
}

func (b *viewBuilder) favorViews(ctx context.Context, favors []*models.Favor, viewer *models.User) []dto.FavorView {
	views := make([]dto.FavorView, 0, len(favors))
	for _, f := range favors {
		views = append(views, b.favorView(ctx, f, viewer))
	}
	return views
}

func (b *viewBuilder) communityView(ctx context.Context, community *models.Community, viewerID string) dto.CommunityView {
	isMember, canJoin, canLeave := b.authzService.CommunityPermissions(community, viewerID)
	view := dto.CommunityView{
		Community: community,
		IsMember:  isMember,
		CanJoin:   canJoin,
		CanLeave:  canLeave,
	}
	if creator, err := b.userRepo.FindByID(ctx, community.CreatorID); err == nil {
		view.Creator = creator
	}
	return view
}

func userID(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.ID
}
