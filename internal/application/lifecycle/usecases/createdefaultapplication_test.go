package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weiyue/internal/domain/customer"
	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/reason"
	"weiyue/internal/domain/review"
	"weiyue/internal/domain/sequence"
	"weiyue/internal/domain/user"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
)

type createDefaultFixture struct {
	apps      *mockDefaultAppRepository
	customers *mockCustomerRepository
	reasons   *mockReasonRepository
	users     *mockUserRepository
	sequencer *mockSequencer
	runner    *passThroughRunner
	recorder  *mockRecorder
}

func newCreateDefaultFixture() *createDefaultFixture {
	return &createDefaultFixture{
		apps: &mockDefaultAppRepository{},
		customers: &mockCustomerRepository{
			GetByIDFunc: func(_ context.Context, id string) (*customer.Customer, error) {
				return testCustomer(id), nil
			},
		},
		reasons: &mockReasonRepository{
			GetByIDFunc: func(_ context.Context, kind reason.Kind, id string) (*reason.Reason, error) {
				return testReason(kind, id), nil
			},
		},
		users: &mockUserRepository{
			GetByIDFunc: func(_ context.Context, id string) (*user.User, error) {
				return testUser(id, ""), nil
			},
		},
		sequencer: &mockSequencer{},
		runner:    &passThroughRunner{},
		recorder:  &mockRecorder{},
	}
}

func (f *createDefaultFixture) useCase() *CreateDefaultApplicationUseCase {
	uc := NewCreateDefaultApplicationUseCase(f.apps, f.customers, f.reasons, f.users,
		f.sequencer, f.runner, f.recorder, logger.NewDiscard())
	uc.now = fixedClock
	return uc
}

func validCreateDefaultCommand() CreateDefaultApplicationCommand {
	remarks := "连续三期未还款"
	return CreateDefaultApplicationCommand{
		CustomerID:  "C1",
		ReasonID:    "DR0001",
		Severity:    "high",
		ApplicantID: "USER1",
		Remarks:     &remarks,
	}
}

func TestCreateDefaultApplicationUseCase_Execute_Success(t *testing.T) {
	f := newCreateDefaultFixture()
	var saved *defaultapp.Application
	f.apps.CreateFunc = func(_ context.Context, a *defaultapp.Application) error {
		saved = a
		return nil
	}

	result, err := f.useCase().Execute(context.Background(), validCreateDefaultCommand())

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "DEF0001", result.AppID)
	assert.Equal(t, review.StatusPending.String(), result.AuditStatus)
	assert.Equal(t, "high", result.SeverityLevel)
	assert.Equal(t, fixedNow, result.ApplyTime)
	assert.Nil(t, result.AuditorID)
	assert.Equal(t, []string{kindDefault}, f.recorder.created)
	assert.Equal(t, 1, f.runner.runs)
}

func TestCreateDefaultApplicationUseCase_Execute_MissingReferences(t *testing.T) {
	tests := []struct {
		name    string
		arrange func(f *createDefaultFixture)
		wantMsg string
	}{
		{
			name: "customer missing",
			arrange: func(f *createDefaultFixture) {
				f.customers.GetByIDFunc = func(context.Context, string) (*customer.Customer, error) { return nil, nil }
			},
			wantMsg: "customer not found",
		},
		{
			name: "reason missing",
			arrange: func(f *createDefaultFixture) {
				f.reasons.GetByIDFunc = func(context.Context, reason.Kind, string) (*reason.Reason, error) { return nil, nil }
			},
			wantMsg: "default reason not found",
		},
		{
			name: "applicant missing",
			arrange: func(f *createDefaultFixture) {
				f.users.GetByIDFunc = func(context.Context, string) (*user.User, error) { return nil, nil }
			},
			wantMsg: "applicant not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCreateDefaultFixture()
			tt.arrange(f)
			created := false
			f.apps.CreateFunc = func(context.Context, *defaultapp.Application) error {
				created = true
				return nil
			}

			result, err := f.useCase().Execute(context.Background(), validCreateDefaultCommand())

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsNotFoundError(err))
			assert.Equal(t, tt.wantMsg, errors.GetAppError(err).Message)
			assert.False(t, created)
			assert.Zero(t, f.sequencer.calls)
			assert.Empty(t, f.recorder.created)
		})
	}
}

func TestCreateDefaultApplicationUseCase_Execute_ChecksInOrder(t *testing.T) {
	f := newCreateDefaultFixture()
	f.customers.GetByIDFunc = func(context.Context, string) (*customer.Customer, error) { return nil, nil }
	reasonLooked := false
	f.reasons.GetByIDFunc = func(context.Context, reason.Kind, string) (*reason.Reason, error) {
		reasonLooked = true
		return nil, nil
	}

	_, err := f.useCase().Execute(context.Background(), validCreateDefaultCommand())

	require.Error(t, err)
	assert.False(t, reasonLooked)
}

func TestCreateDefaultApplicationUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cmd *CreateDefaultApplicationCommand)
	}{
		{name: "invalid severity", mutate: func(cmd *CreateDefaultApplicationCommand) { cmd.Severity = "critical" }},
		{name: "missing customer", mutate: func(cmd *CreateDefaultApplicationCommand) { cmd.CustomerID = " " }},
		{name: "missing reason", mutate: func(cmd *CreateDefaultApplicationCommand) { cmd.ReasonID = "" }},
		{name: "missing applicant", mutate: func(cmd *CreateDefaultApplicationCommand) { cmd.ApplicantID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCreateDefaultFixture()
			cmd := validCreateDefaultCommand()
			tt.mutate(&cmd)

			_, err := f.useCase().Execute(context.Background(), cmd)

			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Zero(t, f.runner.runs)
		})
	}
}

func TestCreateDefaultApplicationUseCase_Execute_SequencerFailure(t *testing.T) {
	f := newCreateDefaultFixture()
	f.sequencer.NextFunc = func(context.Context, sequence.Kind) (string, error) {
		return "", stderrors.New("connection refused")
	}
	created := false
	f.apps.CreateFunc = func(context.Context, *defaultapp.Application) error {
		created = true
		return nil
	}

	_, err := f.useCase().Execute(context.Background(), validCreateDefaultCommand())

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
	assert.False(t, created)
}

func TestCreateDefaultApplicationUseCase_Execute_RetriesDuplicateID(t *testing.T) {
	f := newCreateDefaultFixture()
	attempts := 0
	f.apps.CreateFunc = func(_ context.Context, a *defaultapp.Application) error {
		attempts++
		if attempts == 1 {
			return stderrors.New("failed to create default application: Error 1062: Duplicate entry 'DEF0001' for key 'PRIMARY'")
		}
		return nil
	}

	result, err := f.useCase().Execute(context.Background(), validCreateDefaultCommand())

	require.NoError(t, err)
	assert.Equal(t, "DEF0002", result.AppID)
	assert.Equal(t, 2, f.runner.runs)
}

func TestCreateDefaultApplicationUseCase_Execute_GivesUpAfterRetries(t *testing.T) {
	f := newCreateDefaultFixture()
	f.apps.CreateFunc = func(context.Context, *defaultapp.Application) error {
		return stderrors.New("UNIQUE constraint failed: t_default_application.app_id")
	}

	_, err := f.useCase().Execute(context.Background(), validCreateDefaultCommand())

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, maxMintAttempts, f.runner.runs)
}
