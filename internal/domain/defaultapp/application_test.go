package defaultapp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weiyue/internal/domain/review"
)

func newPending(t *testing.T) *Application {
	t.Helper()
	remarks := "连续三期未还款"
	app, err := NewApplication("DEF0001", "C1", "DR0001", SeverityHigh, "USER0001", &remarks, nil, time.Now().UTC())
	require.NoError(t, err)
	return app
}

func TestNewApplication(t *testing.T) {
	app := newPending(t)
	assert.Equal(t, review.StatusPending, app.Status())
	assert.Nil(t, app.Review().AuditorID())
	assert.Nil(t, app.AttachmentRef())
	assert.False(t, app.DefaultsCustomer())

	tests := []struct {
		name        string
		customerID  string
		reasonID    string
		severity    Severity
		applicantID string
	}{
		{"missing customer", "", "DR0001", SeverityLow, "U"},
		{"missing reason", "C1", "", SeverityLow, "U"},
		{"missing applicant", "C1", "DR0001", SeverityLow, ""},
		{"bad severity", "C1", "DR0001", Severity("critical"), "U"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewApplication("DEF0002", tt.customerID, tt.reasonID, tt.severity, tt.applicantID, nil, nil, time.Now())
			assert.Error(t, err)
		})
	}
}

func TestApplication_Audit(t *testing.T) {
	at := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	t.Run("approve", func(t *testing.T) {
		app := newPending(t)
		require.NoError(t, app.Audit(review.StatusApproved, "USER0002", nil, at))
		assert.Equal(t, review.StatusApproved, app.Status())
		assert.True(t, app.DefaultsCustomer())
	})

	t.Run("reject", func(t *testing.T) {
		app := newPending(t)
		require.NoError(t, app.Audit(review.StatusRejected, "USER0002", nil, at))
		assert.False(t, app.DefaultsCustomer())
	})

	t.Run("second audit refused", func(t *testing.T) {
		app := newPending(t)
		require.NoError(t, app.Audit(review.StatusApproved, "USER0002", nil, at))
		err := app.Audit(review.StatusRejected, "USER0003", nil, at)
		assert.ErrorIs(t, err, review.ErrAlreadyAudited)
		assert.Equal(t, review.StatusApproved, app.Status())
	})
}

func TestNewSeverity(t *testing.T) {
	for _, s := range []string{"high", "medium", "low"} {
		sv, err := NewSeverity(s)
		require.NoError(t, err)
		assert.Equal(t, s, sv.String())
	}
	_, err := NewSeverity("HIGH")
	assert.Error(t, err)
	_, err = NewSeverity("")
	assert.Error(t, err)
}
