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
	"github.com/yigit/conexao/internal/pkg/auth"
	"github.com/yigit/conexao/internal/pkg/logger"
	"github.com/yigit/conexao/internal/pkg/simulate"
	"github.com/yigit/conexao/internal/seed"
)

func TestGetDashboard(t *testing.T) {
	env := newTestEnv(t)

	view, err := env.users.GetDashboard(context.Background(), env.user(t, seed.UserAna))
	require.NoError(t, err)

	ids := func(views []dto.FavorView) []string {
		var out []string
		for _, v := range views {
			out = append(out, v.Favor.ID)
		}
		return out
	}
	assert.Equal(t, []string{"f-chuveiro"}, ids(view.Requested))
	assert.Equal(t, []string{"f-reforco"}, ids(view.Executing))
	assert.ElementsMatch(t, []string{"f-mudanca", "f-live"}, ids(view.Suggested))
	assert.Len(t, view.Notifications, 2)
	assert.Equal(t, 1, view.UnreadCount)
}

func TestGetDashboardFailsWhenBackendFails(t *testing.T) {
	env := newTestEnv(t)
	failing := newFailingEnv(t, env)

	_, err := failing.users.GetDashboard(context.Background(), env.user(t, seed.UserAna))
	assert.ErrorIs(t, err, apperrors.ErrSimulatedFailure)

	_, err = env.users.GetDashboard(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestGetUserProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	profile, err := env.users.GetUserProfile(ctx, seed.UserAna, env.user(t, seed.UserBruno))
	require.NoError(t, err)
	assert.False(t, profile.IsOwn)
	assert.True(t, profile.CanReport)
	assert.Len(t, profile.Requested, 2)
	assert.Len(t, profile.Executed, 2)
	require.Len(t, profile.Ratings, 1)
	assert.Equal(t, "f-horta", profile.Ratings[0].FavorID)
	require.NotNil(t, profile.Ratings[0].From)
	assert.Equal(t, seed.UserInstitu, profile.Ratings[0].From.ID)

	own, err := env.users.GetUserProfile(ctx, seed.UserInstitu, env.user(t, seed.UserInstitu))
	require.NoError(t, err)
	assert.True(t, own.IsOwn)
	assert.False(t, own.CanReport)
	require.Len(t, own.Ratings, 1, "executor ratings count for the requester")
	assert.Equal(t, seed.UserAna, own.Ratings[0].From.ID)

	_, err = env.users.GetUserProfile(ctx, "ghost", nil)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateUserProfile(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.users.UpdateUserProfile(context.Background(), seed.UserBruno, &dto.UpdateProfileRequest{
		DisplayName: "  Bruninho ",
		Phone:       "(11) 98888-7777",
		Bio:         "Faço pequenos reparos.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bruninho", user.DisplayName)
	assert.Equal(t, "Bruninho", env.user(t, seed.UserBruno).DisplayName)

	_, err = env.users.UpdateUserProfile(context.Background(), "", &dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestGetUsersByFilter(t *testing.T) {
	env := newTestEnv(t)

	users := env.users.GetUsersByFilter(context.Background(), &dto.UserFilterRequest{Q: "maos"})
	require.Len(t, users, 1)
	assert.Equal(t, seed.UserInstitu, users[0].ID)

	assert.Len(t, env.users.GetUsersByFilter(context.Background(), nil), 8)
}

func TestNotificationMarkRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.notifications.MarkRead(ctx, "n-1", seed.UserAna)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	n, err := env.notifications.MarkRead(ctx, "n-1", seed.UserCarla)
	require.NoError(t, err)
	assert.True(t, n.Read)
	assert.Equal(t, 1, env.notifications.UnreadCount(ctx, seed.UserCarla))

	changed, err := env.notifications.MarkAllRead(ctx, seed.UserCarla)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Zero(t, env.notifications.UnreadCount(ctx, seed.UserCarla))
}

func TestNotifySkipsDuplicateAndBlankRecipients(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.notifications.Notify(ctx, []string{seed.UserDiego, "", seed.UserDiego}, models.NotificationSystem, "Olá", "Teste", "/")

	list, err := env.notifications.ListNotifications(ctx, seed.UserDiego)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "Olá", list[0].Title)
	assert.Equal(t, 1, env.notifications.UnreadCount(ctx, seed.UserDiego))
}

func TestToggleGoal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.user(t, seed.UserAdmin)

	_, err := env.missions.ToggleGoal(ctx, "m-doacoes", 0, env.user(t, seed.UserAna))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	m, err := env.missions.ToggleGoal(ctx, "m-doacoes", 0, admin)
	require.NoError(t, err)
	assert.True(t, m.Goals[0].Completed)
	assert.Equal(t, 50, m.PercentDone())

	_, err = env.missions.ToggleGoal(ctx, "m-doacoes", 5, admin)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestGetMissionsByNiche(t *testing.T) {
	env := newTestEnv(t)

	groups := env.missions.GetMissionsByNiche(context.Background())
	total := 0
	for _, g := range groups {
		assert.NotEmpty(t, g.Missions)
		total += len(g.Missions)
	}
	assert.Equal(t, 5, total)
}

func TestAdminStatsAndReset(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.user(t, seed.UserAdmin)

	_, err := env.admin.GetStats(ctx, env.user(t, seed.UserAna))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	stats, err := env.admin.GetStats(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, dto.AdminStats{
		Users:           8,
		Favors:          9,
		OpenFavors:      3,
		AcceptedFavors:  2,
		CompletedFavors: 3,
		CancelledFavors: 1,
		Communities:     4,
		PendingReports:  1,
		Missions:        5,
	}, *stats)

	_, err = env.favors.CancelFavor(ctx, "f-chuveiro", env.user(t, seed.UserAna))
	require.NoError(t, err)
	require.NoError(t, env.admin.ResetFixtures(ctx, admin))

	assert.Equal(t, models.FavorStatusOpen, env.favor(t, "f-chuveiro").Status)
}

func newTestAuthService(env *testEnv, ttl time.Duration) *AuthService {
	sessions := auth.NewSessionService(auth.SessionConfig{SecretKey: "test-secret", TTL: ttl, Issuer: "conexao-test"})
	return NewAuthService(env.repos.UserRepository, sessions, simulate.NewBackend(simulate.Config{}, logger.Nop()), logger.Nop())
}

func TestAuthLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAuthService(env, time.Hour)
	ctx := context.Background()

	user, token, err := svc.Login(ctx, &dto.LoginRequest{Email: "carla@conexao.org", Password: seed.DemoPassword})
	require.NoError(t, err)
	assert.Equal(t, seed.UserCarla, user.ID)

	current, err := svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, seed.UserCarla, current.ID)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "carla@conexao.org", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@conexao.org", Password: seed.DemoPassword})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthRegister(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAuthService(env, time.Hour)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Gabriela Nunes",
		Email:    " Gabi@Conexao.org ",
		Password: "senha-forte",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "gabi@conexao.org", user.Email)
	assert.Equal(t, "Gabriela", user.DisplayName)
	assert.Equal(t, models.RoleUser, user.Role)

	_, _, err = svc.Register(ctx, &dto.RegisterRequest{Name: "Outra Ana", Email: "ana@conexao.org", Password: "senha-forte"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthCurrentUserRejectsBadTokens(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	svc := newTestAuthService(env, time.Hour)
	_, err := svc.CurrentUser(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	_, err = svc.CurrentUser(ctx, "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	expired := newTestAuthService(env, -time.Minute)
	_, token, err := expired.Login(ctx, &dto.LoginRequest{Email: "ana@conexao.org", Password: seed.DemoPassword})
	require.NoError(t, err)
	_, err = expired.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}
