package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/conexao/internal/pkg/apperrors"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func openFavor() *Favor {
	return &Favor{
		ID:            "f-1",
		Title:         "Trocar lâmpada",
		Participation: ParticipationIndividual,
		Status:        FavorStatusOpen,
		RequesterID:   "req",
	}
}

func collectiveFavor(headcount int) *Favor {
	f := openFavor()
	f.Participation = ParticipationCollective
	f.Headcount = headcount
	return f
}

func TestFavorAcceptIndividual(t *testing.T) {
	f := openFavor()

	require.NoError(t, f.Accept("exec", testNow))

	assert.Equal(t, FavorStatusAccepted, f.Status)
	require.NotNil(t, f.ExecutorID)
	assert.Equal(t, "exec", *f.ExecutorID)
	assert.Equal(t, testNow, *f.AcceptedAt)
	assert.True(t, f.IsExecutor("exec"))
	assert.Zero(t, f.OpenSlots())
}

func TestFavorAcceptRejections(t *testing.T) {
	tests := []struct {
		name  string
		favor func() *Favor
		actor string
		want  error
	}{
		{
			name:  "requester cannot accept own favor",
			favor: openFavor,
			actor: "req",
			want:  apperrors.ErrOwnFavor,
		},
		{
			name: "already accepted",
			favor: func() *Favor {
				f := openFavor()
				f.Status = FavorStatusAccepted
				return f
			},
			actor: "exec",
			want:  apperrors.ErrInvalidTransition,
		},
		{
			name: "cancelled",
			favor: func() *Favor {
				f := openFavor()
				f.Status = FavorStatusCancelled
				return f
			},
			actor: "exec",
			want:  apperrors.ErrInvalidTransition,
		},
		{
			name: "joins a collective favor twice",
			favor: func() *Favor {
				f := collectiveFavor(3)
				f.ExecutorIDs = []string{"exec"}
				return f
			},
			actor: "exec",
			want:  apperrors.ErrAlreadyParticipant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.favor()
			before := f.Clone()

			err := f.Accept(tt.actor, testNow)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, f, "a rejected accept must not change the favor")
		})
	}
}

func TestFavorAcceptCollectiveFillsHeadcount(t *testing.T) {
	f := collectiveFavor(2)

	require.NoError(t, f.Accept("a", testNow))
	assert.Equal(t, FavorStatusOpen, f.Status)
	assert.Equal(t, 1, f.OpenSlots())
	assert.Nil(t, f.AcceptedAt)

	require.NoError(t, f.Accept("b", testNow))
	assert.Equal(t, FavorStatusAccepted, f.Status)
	assert.Equal(t, []string{"a", "b"}, f.Executors())
	assert.Zero(t, f.OpenSlots())

	assert.ErrorIs(t, f.Accept("c", testNow), apperrors.ErrInvalidTransition)
}

func TestFavorComplete(t *testing.T) {
	t.Run("requester completes", func(t *testing.T) {
		f := openFavor()
		require.NoError(t, f.Accept("exec", testNow))
		require.NoError(t, f.Complete("req", testNow.Add(time.Hour)))
		assert.Equal(t, FavorStatusCompleted, f.Status)
		assert.Equal(t, testNow.Add(time.Hour), *f.CompletedAt)
	})

	t.Run("executor completes", func(t *testing.T) {
		f := openFavor()
		require.NoError(t, f.Accept("exec", testNow))
		require.NoError(t, f.Complete("exec", testNow))
		assert.Equal(t, FavorStatusCompleted, f.Status)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		f := openFavor()
		require.NoError(t, f.Accept("exec", testNow))
		assert.ErrorIs(t, f.Complete("someone", testNow), apperrors.ErrPermissionDenied)
		assert.Equal(t, FavorStatusAccepted, f.Status)
	})

	t.Run("open favor cannot complete", func(t *testing.T) {
		f := openFavor()
		assert.ErrorIs(t, f.Complete("req", testNow), apperrors.ErrInvalidTransition)
	})
}

func TestFavorCancel(t *testing.T) {
	f := openFavor()
	assert.ErrorIs(t, f.Cancel("exec", testNow), apperrors.ErrPermissionDenied)

	require.NoError(t, f.Cancel("req", testNow))
	assert.Equal(t, FavorStatusCancelled, f.Status)
	assert.NotNil(t, f.CancelledAt)

	assert.ErrorIs(t, f.Cancel("req", testNow), apperrors.ErrInvalidTransition)
	assert.ErrorIs(t, f.Accept("exec", testNow), apperrors.ErrInvalidTransition)
}

func TestFavorForceCancel(t *testing.T) {
	f := openFavor()
	require.NoError(t, f.Accept("exec", testNow))
	require.NoError(t, f.ForceCancel(testNow))
	assert.Equal(t, FavorStatusCancelled, f.Status)

	done := openFavor()
	done.Status = FavorStatusCompleted
	assert.ErrorIs(t, done.ForceCancel(testNow), apperrors.ErrInvalidTransition)
}

func TestFavorRate(t *testing.T) {
	f := collectiveFavor(2)
	require.NoError(t, f.Accept("a", testNow))
	require.NoError(t, f.Accept("b", testNow))

	assert.ErrorIs(t, f.Rate("req", 5, "", testNow), apperrors.ErrInvalidTransition, "only completed favors can be rated")

	require.NoError(t, f.Complete("a", testNow))

	require.NoError(t, f.Rate("req", 5, "Excelente", testNow))
	require.NotNil(t, f.RequesterRating)
	assert.Equal(t, 5, f.RequesterRating.Score)
	assert.True(t, f.HasRated("req"))
	assert.ErrorIs(t, f.Rate("req", 4, "", testNow), apperrors.ErrAlreadyRated)

	require.NoError(t, f.Rate("a", 4, "", testNow))
	assert.True(t, f.HasRated("a"))
	assert.False(t, f.HasRated("b"))
	require.NoError(t, f.Rate("b", 3, "", testNow))
	assert.Len(t, f.ExecutorRatings, 2)

	assert.ErrorIs(t, f.Rate("stranger", 3, "", testNow), apperrors.ErrPermissionDenied)
}

func TestFavorRateScoreBounds(t *testing.T) {
	f := openFavor()
	require.NoError(t, f.Accept("exec", testNow))
	require.NoError(t, f.Complete("req", testNow))

	assert.ErrorIs(t, f.Rate("req", 0, "", testNow), apperrors.ErrInvalidRating)
	assert.ErrorIs(t, f.Rate("req", 6, "", testNow), apperrors.ErrInvalidRating)
	assert.Nil(t, f.RequesterRating)
}

func TestFavorCloneIsDeep(t *testing.T) {
	amount := 50.0
	f := collectiveFavor(3)
	f.Amount = &amount
	f.ExecutorIDs = []string{"a"}
	f.ExecutorRatings = map[string]*Rating{"a": {Score: 4}}

	cp := f.Clone()
	*cp.Amount = 10
	cp.ExecutorIDs[0] = "z"
	cp.ExecutorRatings["a"].Score = 1

	assert.Equal(t, 50.0, *f.Amount)
	assert.Equal(t, "a", f.ExecutorIDs[0])
	assert.Equal(t, 4, f.ExecutorRatings["a"].Score)
}

func TestMissionPercentDone(t *testing.T) {
	m := &Mission{Goals: []Goal{{Completed: true}, {}, {}, {Completed: true}}}
	assert.Equal(t, 50, m.PercentDone())
	assert.Zero(t, (&Mission{}).PercentDone())
}

func TestReportReview(t *testing.T) {
	r := &Report{Status: ReportStatusPending}

	assert.False(t, r.Review(ReportStatusPending, "adm", testNow))
	assert.True(t, r.Review(ReportStatusResolved, "adm", testNow))
	assert.Equal(t, ReportStatusResolved, r.Status)
	assert.Equal(t, "adm", *r.ReviewedBy)

	assert.False(t, r.Review(ReportStatusIgnored, "adm", testNow), "closed reports stay closed")
}
