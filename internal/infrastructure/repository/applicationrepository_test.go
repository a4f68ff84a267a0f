package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/recoveryapp"
	"weiyue/internal/domain/reason"
	"weiyue/internal/domain/review"
	"weiyue/internal/shared/logger"
)

func TestDefaultApplicationRepository(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	log := logger.NewDiscard()
	repo := NewDefaultApplicationRepository(database, log)

	seedCustomer(t, database, "C1", "华东建材集团")
	seedCustomer(t, database, "C2", "北方钢铁")
	seedUser(t, database, "USER00000001", "zhang", "张三")
	seedUser(t, database, "USER00000002", "li", "")

	dr, err := reason.NewReason(reason.KindDefault, "DR0001", "逾期", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, NewReasonRepository(database, log).Create(ctx, dr))

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mk := func(id, customerID string, at time.Time) *defaultapp.Application {
		app, err := defaultapp.NewApplication(id, customerID, "DR0001", defaultapp.SeverityHigh, "USER00000001", nil, nil, at)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, app))
		return app
	}
	mk("DEF0001", "C1", base)
	mk("DEF0002", "C1", base.Add(time.Hour))
	mk("DEF0003", "C1", base.Add(time.Hour))
	mk("DEF0004", "C2", base.Add(2*time.Hour))

	t.Run("latest for customer breaks ties by id", func(t *testing.T) {
		latest, err := repo.LatestForCustomer(ctx, "C1")
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "DEF0003", latest.ID())

		none, err := repo.LatestForCustomer(ctx, "C9")
		assert.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("save audit only on pending", func(t *testing.T) {
		app, err := repo.GetByID(ctx, "DEF0001")
		require.NoError(t, err)
		require.NoError(t, app.Audit(review.StatusApproved, "USER00000002", nil, base.Add(24*time.Hour)))

		n, err := repo.SaveAudit(ctx, app)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = repo.SaveAudit(ctx, app)
		require.NoError(t, err)
		assert.Zero(t, n)

		stored, err := repo.GetByID(ctx, "DEF0001")
		require.NoError(t, err)
		assert.Equal(t, review.StatusApproved, stored.Status())
		require.NotNil(t, stored.Review().AuditorID())
		assert.Equal(t, "USER00000002", *stored.Review().AuditorID())
	})

	t.Run("summary joins names", func(t *testing.T) {
		s, err := repo.GetSummary(ctx, "DEF0001")
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "华东建材集团", s.CustomerName)
		assert.Equal(t, "逾期", s.ReasonContent)
		assert.Equal(t, "张三", s.ApplicantName)
		assert.Equal(t, "li", s.AuditorName)

		missing, err := repo.GetSummary(ctx, "DEF9999")
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("list with filters", func(t *testing.T) {
		all, total, err := repo.List(ctx, defaultapp.Filter{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, all, 2)
		assert.Equal(t, "DEF0004", all[0].Application.ID())

		pending := review.StatusPending
		byName, total, err := repo.List(ctx, defaultapp.Filter{CustomerName: "建材", Status: &pending})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, byName, 2)

		byAuditor, total, err := repo.List(ctx, defaultapp.Filter{AuditorName: "li"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "DEF0001", byAuditor[0].Application.ID())

		from := base.Add(90 * time.Minute)
		recent, total, err := repo.List(ctx, defaultapp.Filter{AppliedFrom: &from})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "DEF0004", recent[0].Application.ID())
	})

	t.Run("approved audit times", func(t *testing.T) {
		times, err := repo.ApprovedAuditTimes(ctx)
		require.NoError(t, err)
		require.Len(t, times, 1)
		assert.True(t, times[0].Equal(base.Add(24*time.Hour)))
	})
}

func TestRecoveryApplicationRepository(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repo := NewRecoveryApplicationRepository(database, logger.NewDiscard())

	seedCustomer(t, database, "C1", "华东建材集团")
	seedUser(t, database, "USER00000001", "zhang", "张三")

	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	app, err := recoveryapp.NewApplication("REC0001", "C1", "DEF0001", "RR0001", "USER00000001", at)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, app))

	got, err := repo.GetByID(ctx, "REC0001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "DEF0001", got.OriginalDefaultAppID())
	assert.True(t, got.Status().IsPending())

	require.NoError(t, got.Audit(review.StatusRejected, "USER00000001", nil, at.Add(time.Hour)))
	n, err := repo.SaveAudit(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	rejected := review.StatusRejected
	list, total, err := repo.List(ctx, recoveryapp.Filter{Status: &rejected, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "华东建材集团", list[0].CustomerName)
	assert.Equal(t, "张三", list[0].AuditorName)
	assert.Equal(t, "", list[0].ReasonContent)

	missing, err := repo.GetByID(ctx, "REC0404")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
