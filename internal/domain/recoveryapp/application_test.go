package recoveryapp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weiyue/internal/domain/review"
)

func TestNewApplication(t *testing.T) {
	now := time.Now().UTC()
	app, err := NewApplication("REC0001", "C1", "DEF0001", "RR0001", "USER0001", now)
	require.NoError(t, err)
	assert.Equal(t, review.StatusPending, app.Status())
	assert.Equal(t, "DEF0001", app.OriginalDefaultAppID())
	assert.Equal(t, now, app.AppliedAt())

	_, err = NewApplication("REC0002", "C1", "", "RR0001", "USER0001", now)
	assert.Error(t, err)
	_, err = NewApplication("REC0002", "C1", "DEF0001", "", "USER0001", now)
	assert.Error(t, err)
}

func TestApplication_Audit(t *testing.T) {
	now := time.Now().UTC()
	app, err := NewApplication("REC0001", "C1", "DEF0001", "RR0001", "USER0001", now)
	require.NoError(t, err)

	err = app.Audit(review.Status("maybe"), "USER0002", nil, now)
	assert.ErrorIs(t, err, review.ErrInvalidDecision)
	assert.True(t, app.Status().IsPending())

	require.NoError(t, app.Audit(review.StatusApproved, "USER0002", nil, now))
	assert.True(t, app.ClearsCustomer())

	assert.ErrorIs(t, app.Audit(review.StatusApproved, "USER0002", nil, now), review.ErrAlreadyAudited)
}
