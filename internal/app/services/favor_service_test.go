package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/pkg/apperrors"
	"github.com/yigit/conexao/internal/seed"
)

func validFavorRequest() *dto.CreateFavorRequest {
	return &dto.CreateFavorRequest{
		Title:         "Consertar bicicleta",
		Description:   "A corrente saiu e não consigo recolocar.",
		Urgency:       string(models.UrgencyLow),
		Location:      "Pinheiros",
		Type:          string(models.FavorTypeVolunteer),
		Participation: string(models.ParticipationIndividual),
	}
}

func TestCreateFavor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ana := env.user(t, seed.UserAna)

	svc := env.favors.(*favorServiceImpl)
	svc.now = func() time.Time { return fixedNow }

	req := validFavorRequest()
	req.Type = string(models.FavorTypePaid)
	req.Amount = 80
	req.CommunityID = "c-vila-mariana"

	favor, err := env.favors.CreateFavor(ctx, req, ana)
	require.NoError(t, err)

	assert.Equal(t, models.FavorStatusOpen, favor.Status)
	assert.Equal(t, seed.UserAna, favor.RequesterID)
	assert.Equal(t, fixedNow, favor.CreatedAt)
	require.NotNil(t, favor.Amount)
	assert.Equal(t, 80.0, *favor.Amount)
	require.NotNil(t, favor.CommunityID)
	assert.Equal(t, "c-vila-mariana", *favor.CommunityID)

	stored := env.favor(t, favor.ID)
	assert.Equal(t, favor.Title, stored.Title)
	assert.Equal(t, ana.FavorsRequested+1, env.user(t, seed.UserAna).FavorsRequested)
}

func TestCreateFavorRequiresCommunityMembership(t *testing.T) {
	env := newTestEnv(t)
	felipe := env.user(t, seed.UserFelipe)

	req := validFavorRequest()
	req.CommunityID = "c-vila-mariana"

	_, err := env.favors.CreateFavor(context.Background(), req, felipe)
	assert.ErrorIs(t, err, apperrors.ErrNotMember)
}

func TestCreateFavorRollsBackWhenRequesterIsUnknown(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	before := env.repos.FavorRepository.Count(ctx, nil)

	_, err := env.favors.CreateFavor(ctx, validFavorRequest(), &models.User{ID: "ghost"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Equal(t, before, env.repos.FavorRepository.Count(ctx, nil))
}

func TestCreateFavorVolunteerDropsAmount(t *testing.T) {
	env := newTestEnv(t)
	req := validFavorRequest()
	req.Amount = 30

	favor, err := env.favors.CreateFavor(context.Background(), req, env.user(t, seed.UserBruno))
	require.NoError(t, err)
	assert.Nil(t, favor.Amount)
	assert.Zero(t, favor.Headcount)
}

func TestAcceptFavorNotifiesRequester(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	before := env.unread(seed.UserAna)

	favor, err := env.favors.AcceptFavor(ctx, "f-chuveiro", env.user(t, seed.UserDiego))
	require.NoError(t, err)

	assert.Equal(t, models.FavorStatusAccepted, favor.Status)
	assert.Equal(t, seed.UserDiego, *favor.ExecutorID)
	assert.Equal(t, before+1, env.unread(seed.UserAna))
}

func TestAcceptFavorRejectsRequester(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.favors.AcceptFavor(context.Background(), "f-chuveiro", env.user(t, seed.UserAna))
	assert.ErrorIs(t, err, apperrors.ErrOwnFavor)
	assert.Equal(t, models.FavorStatusOpen, env.favor(t, "f-chuveiro").Status)
}

func TestAcceptCollectiveFavorUntilFull(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	favor, err := env.favors.AcceptFavor(ctx, "f-live", env.user(t, seed.UserAna))
	require.NoError(t, err)
	assert.Equal(t, models.FavorStatusOpen, favor.Status)
	assert.Equal(t, 1, favor.OpenSlots())

	favor, err = env.favors.AcceptFavor(ctx, "f-live", env.user(t, seed.UserBruno))
	require.NoError(t, err)
	assert.Equal(t, models.FavorStatusAccepted, favor.Status)
	assert.ElementsMatch(t, []string{seed.UserAna, seed.UserBruno}, favor.Executors())

	_, err = env.favors.AcceptFavor(ctx, "f-live", env.user(t, seed.UserDiego))
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestCompleteFavorCreditsExecutor(t *testing.T) {
	env := newTestEnv(t)
	ana := env.user(t, seed.UserAna)

	favor, err := env.favors.CompleteFavor(context.Background(), "f-reforco", env.user(t, seed.UserCarla))
	require.NoError(t, err)

	assert.Equal(t, models.FavorStatusCompleted, favor.Status)
	assert.Equal(t, ana.FavorsCompleted+1, env.user(t, seed.UserAna).FavorsCompleted)
}

func TestCancelFavor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.favors.CancelFavor(ctx, "f-pet", env.user(t, seed.UserBruno))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied, "only the requester cancels")

	favor, err := env.favors.CancelFavor(ctx, "f-pet", env.user(t, seed.UserFelipe))
	require.NoError(t, err)
	assert.Equal(t, models.FavorStatusCancelled, favor.Status)

	_, err = env.favors.CancelFavor(ctx, "f-computador", env.user(t, seed.UserInstitu))
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition, "completed favors cannot be cancelled")
}

func TestRateFavorOncePerSide(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	rate := &dto.RateFavorRequest{Score: 5, Feedback: "  Montou tudo certinho  "}

	favor, err := env.favors.RateFavor(ctx, "f-prateleira", env.user(t, seed.UserAna), rate)
	require.NoError(t, err)
	require.NotNil(t, favor.RequesterRating)
	assert.Equal(t, "Montou tudo certinho", favor.RequesterRating.Feedback)

	_, err = env.favors.RateFavor(ctx, "f-prateleira", env.user(t, seed.UserAna), rate)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRated)

	favor, err = env.favors.RateFavor(ctx, "f-prateleira", env.user(t, seed.UserBruno), &dto.RateFavorRequest{Score: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, favor.ExecutorRatings[seed.UserBruno].Score)
}

func TestRateFavorRequiresCompletion(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.favors.RateFavor(context.Background(), "f-reforco", env.user(t, seed.UserCarla), &dto.RateFavorRequest{Score: 5})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestSimulatedFailureLeavesFavorUntouched(t *testing.T) {
	env := newTestEnv(t)
	failing := newFailingEnv(t, env)
	ctx := context.Background()
	unread := env.unread(seed.UserAna)

	_, err := failing.favors.AcceptFavor(ctx, "f-chuveiro", env.user(t, seed.UserDiego))
	require.ErrorIs(t, err, apperrors.ErrSimulatedFailure)

	f := env.favor(t, "f-chuveiro")
	assert.Equal(t, models.FavorStatusOpen, f.Status)
	assert.Nil(t, f.ExecutorID)
	assert.Equal(t, unread, env.unread(seed.UserAna), "no notification for a failed action")

	_, err = failing.favors.CreateFavor(ctx, validFavorRequest(), env.user(t, seed.UserBruno))
	require.ErrorIs(t, err, apperrors.ErrSimulatedFailure)
	assert.Equal(t, 9, env.repos.FavorRepository.Count(ctx, nil))
}

func TestListFavorsFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	viewer := env.user(t, seed.UserDiego)

	tests := []struct {
		name   string
		filter dto.FavorFilterRequest
		want   []string
	}{
		{"paid", dto.FavorFilterRequest{Type: "paid"}, []string{"f-chuveiro", "f-pet", "f-prateleira"}},
		{"open collective", dto.FavorFilterRequest{Status: "open", Participation: "collective"}, []string{"f-mudanca", "f-live"}},
		{"community", dto.FavorFilterRequest{CommunityID: "c-vila-mariana"}, []string{"f-mudanca", "f-prateleira"}},
		{"keyword ignores accents", dto.FavorFilterRequest{Q: "MUDANCA"}, []string{"f-mudanca"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := env.favors.ListFavors(ctx, &tt.filter, 1, 50, viewer)
			require.NoError(t, err)

			var ids []string
			for _, v := range list.Favors {
				ids = append(ids, v.Favor.ID)
			}
			assert.ElementsMatch(t, tt.want, ids)
			assert.Equal(t, len(tt.want), list.Pagination.TotalItems)
		})
	}
}

func TestListFavorsPaginates(t *testing.T) {
	env := newTestEnv(t)

	list, err := env.favors.ListFavors(context.Background(), nil, 2, 4, nil)
	require.NoError(t, err)
	assert.Len(t, list.Favors, 4)
	assert.Equal(t, 3, list.Pagination.TotalPages)
	assert.Equal(t, 2, list.Pagination.CurrentPage)
}

func TestGetFavorPermissions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	view, err := env.favors.GetFavor(ctx, "f-chuveiro", env.user(t, seed.UserBruno))
	require.NoError(t, err)
	assert.True(t, view.Permissions.CanAccept)
	assert.False(t, view.Permissions.CanCancel)
	require.NotNil(t, view.Requester)
	assert.Equal(t, seed.UserAna, view.Requester.ID)

	view, err = env.favors.GetFavor(ctx, "f-chuveiro", env.user(t, seed.UserAna))
	require.NoError(t, err)
	assert.False(t, view.Permissions.CanAccept)
	assert.True(t, view.Permissions.CanCancel)
	assert.False(t, view.Permissions.CanReport)

	_, err = env.favors.GetFavor(ctx, "missing", nil)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAdminCancelFavor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.favors.AdminCancelFavor(ctx, "f-pet", env.user(t, seed.UserAna))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	before := env.unread(seed.UserBruno)
	favor, err := env.favors.AdminCancelFavor(ctx, "f-pet", env.user(t, seed.UserAdmin))
	require.NoError(t, err)
	assert.Equal(t, models.FavorStatusCancelled, favor.Status)
	assert.Equal(t, before+1, env.unread(seed.UserBruno))

	_, err = env.favors.AdminCancelFavor(ctx, "f-computador", env.user(t, seed.UserAdmin))
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}
