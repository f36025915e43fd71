package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/pkg/apperrors"
	"github.com/yigit/conexao/internal/seed"
)

func TestJoinCommunity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	before := env.unread(seed.UserEduarda)

	require.NoError(t, env.communities.JoinCommunity(ctx, "c-streamers", seed.UserFelipe))

	detail, err := env.communities.GetCommunityByID(ctx, "c-streamers", env.user(t, seed.UserFelipe))
	require.NoError(t, err)
	assert.True(t, detail.IsMember)
	assert.True(t, detail.CanLeave)
	assert.False(t, detail.CanJoin)
	assert.Len(t, detail.Members, 2)
	assert.Equal(t, before+1, env.unread(seed.UserEduarda), "the creator hears about new members")

	assert.ErrorIs(t, env.communities.JoinCommunity(ctx, "c-streamers", seed.UserFelipe), apperrors.ErrAlreadyMember)
}

func TestJoinPrivateCommunityIsRejected(t *testing.T) {
	env := newTestEnv(t)

	err := env.communities.JoinCommunity(context.Background(), "c-condominio", seed.UserAna)
	assert.ErrorIs(t, err, apperrors.ErrPrivateCommunity)
}

func TestLeaveCommunity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assert.ErrorIs(t, env.communities.LeaveCommunity(ctx, "c-vila-mariana", seed.UserAna), apperrors.ErrCreatorCannotLeave)
	assert.ErrorIs(t, env.communities.LeaveCommunity(ctx, "c-vila-mariana", seed.UserFelipe), apperrors.ErrNotMember)

	require.NoError(t, env.communities.LeaveCommunity(ctx, "c-vila-mariana", seed.UserDiego))
	for _, c := range env.communities.GetUserCommunities(ctx, seed.UserDiego) {
		assert.NotEqual(t, "c-vila-mariana", c.ID)
	}
}

func TestCreateCommunityMakesCreatorMember(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	community, err := env.communities.CreateCommunity(ctx, &dto.CreateCommunityRequest{
		Name:        "Ciclistas da Zona Sul",
		Description: "Ajuda mútua para quem pedala todo dia.",
		Type:        string(models.CommunityPublic),
	}, env.user(t, seed.UserBruno))
	require.NoError(t, err)

	assert.Equal(t, seed.UserBruno, community.CreatorID)
	assert.True(t, community.HasMember(seed.UserBruno))
	assert.Equal(t, 5, env.repos.CommunityRepository.Count(ctx))
}

func TestGetAllCommunitiesFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	list, err := env.communities.GetAllCommunities(ctx, &dto.CommunityFilterRequest{Type: "private"}, 1, 10, seed.UserAna)
	require.NoError(t, err)
	require.Len(t, list.Communities, 1)
	assert.Equal(t, "c-condominio", list.Communities[0].Community.ID)
	assert.False(t, list.Communities[0].CanJoin)

	list, err = env.communities.GetAllCommunities(ctx, &dto.CommunityFilterRequest{Q: "hortas"}, 1, 10, seed.UserFelipe)
	require.NoError(t, err)
	require.Len(t, list.Communities, 1)
	assert.True(t, list.Communities[0].CanJoin)
}

func TestCreateReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	req := &dto.CreateReportRequest{Reason: string(models.ReportReasonSpam), Comments: "  anúncio repetido "}

	report, err := env.reports.CreateReport(ctx, env.user(t, seed.UserDiego), models.ReportTargetFavor, "f-chuveiro", req)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusPending, report.Status)
	assert.Equal(t, "anúncio repetido", report.Comments)

	_, err = env.reports.CreateReport(ctx, env.user(t, seed.UserAna), models.ReportTargetFavor, "f-chuveiro", req)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest, "requesters cannot report their own favor")

	_, err = env.reports.CreateReport(ctx, env.user(t, seed.UserAna), models.ReportTargetUser, seed.UserAna, req)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = env.reports.CreateReport(ctx, env.user(t, seed.UserAna), models.ReportTargetUser, "ghost", req)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestReviewReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.user(t, seed.UserAdmin)

	_, err := env.reports.ReviewReport(ctx, "r-1", env.user(t, seed.UserAna), models.ReportStatusResolved)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	report, err := env.reports.ReviewReport(ctx, "r-1", admin, models.ReportStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusResolved, report.Status)

	_, err = env.reports.ReviewReport(ctx, "r-1", admin, models.ReportStatusIgnored)
	assert.ErrorIs(t, err, apperrors.ErrReportAlreadyClosed)

	assert.Empty(t, env.reports.ListReports(ctx, models.ReportStatusPending))
}

func TestListReportsDescribesTargets(t *testing.T) {
	env := newTestEnv(t)

	views := env.reports.ListReports(context.Background(), "")
	require.Len(t, views, 2)

	byID := map[string]dto.ReportView{}
	for _, v := range views {
		byID[v.Report.ID] = v
	}
	assert.Equal(t, "/favors/f-pet", byID["r-1"].TargetLink)
	assert.Equal(t, "/users/"+seed.UserFelipe, byID["r-2"].TargetLink)
	require.NotNil(t, byID["r-1"].Reporter)
	assert.Equal(t, seed.UserAna, byID["r-1"].Reporter.ID)
}
