package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"weiyue/internal/domain/customer"
	"weiyue/internal/domain/reason"
	"weiyue/internal/domain/review"
	"weiyue/internal/domain/user"
	"weiyue/internal/infrastructure/auth"
	"weiyue/internal/infrastructure/persistence/models"
	"weiyue/internal/infrastructure/repository"
	gormsequencer "weiyue/internal/infrastructure/sequence"
	"weiyue/internal/shared/db"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
)

type lifecycle struct {
	database       *gorm.DB
	customers      *repository.CustomerRepository
	createDefault  *CreateDefaultApplicationUseCase
	auditDefault   *AuditDefaultApplicationUseCase
	createRecovery *CreateRecoveryApplicationUseCase
	auditRecovery  *AuditRecoveryApplicationUseCase
}

func newLifecycle(t *testing.T) *lifecycle {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(models.All()...))

	log := logger.NewDiscard()
	customers := repository.NewCustomerRepository(database, log)
	users := repository.NewUserRepository(database, log)
	reasons := repository.NewReasonRepository(database, log)
	defaultApps := repository.NewDefaultApplicationRepository(database, log)
	recoveryApps := repository.NewRecoveryApplicationRepository(database, log)
	sequencer := gormsequencer.NewGormSequencer(database)
	gateway := db.NewGateway(database)
	recorder := &mockRecorder{}
	stats := &mockInvalidator{}

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, customers.Upsert(ctx, customer.NewCustomer("C1", "华东建材集团", "BBB", "制造业", "华东", now)))

	hasher := auth.NewMD5PasswordHasher()
	for _, u := range []struct{ id, name string }{{"USER0001", "applicant"}, {"USER0002", "auditor"}} {
		usr, err := user.NewUser(u.id, u.name, "secret", user.Profile{RealName: u.name}, hasher, now)
		require.NoError(t, err)
		require.NoError(t, users.Create(ctx, usr))
	}

	dr, err := reason.NewReason(reason.KindDefault, "DR0001", "逾期90天以上", now)
	require.NoError(t, err)
	require.NoError(t, reasons.Create(ctx, dr))
	rr, err := reason.NewReason(reason.KindRecovery, "RR0001", "欠款已结清", now)
	require.NoError(t, err)
	require.NoError(t, reasons.Create(ctx, rr))

	return &lifecycle{
		database:  database,
		customers: customers,
		createDefault: NewCreateDefaultApplicationUseCase(defaultApps, customers, reasons, users,
			sequencer, gateway, recorder, log),
		auditDefault: NewAuditDefaultApplicationUseCase(defaultApps, customers, users, gateway,
			stats, nil, recorder, log),
		createRecovery: NewCreateRecoveryApplicationUseCase(recoveryApps, defaultApps, customers, reasons, users,
			sequencer, gateway, recorder, log),
		auditRecovery: NewAuditRecoveryApplicationUseCase(recoveryApps, customers, users, gateway,
			stats, nil, recorder, log),
	}
}

func (l *lifecycle) isDefaulted(t *testing.T) bool {
	t.Helper()
	c, err := l.customers.GetByID(context.Background(), "C1")
	require.NoError(t, err)
	require.NotNil(t, c)
	return c.IsDefaulted()
}

func TestLifecycle_DefaultThenRecovery(t *testing.T) {
	l := newLifecycle(t)
	ctx := context.Background()

	assert.False(t, l.isDefaulted(t))

	a1, err := l.createDefault.Execute(ctx, CreateDefaultApplicationCommand{
		CustomerID:  "C1",
		ReasonID:    "DR0001",
		Severity:    "high",
		ApplicantID: "USER0001",
	})
	require.NoError(t, err)
	assert.Equal(t, "DEF0001", a1.AppID)
	assert.Equal(t, review.StatusPending.String(), a1.AuditStatus)

	audited, err := l.auditDefault.Execute(ctx, AuditCommand{AppID: a1.AppID, AuditorID: "USER0002", Decision: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", audited.AuditStatus)
	assert.Equal(t, "华东建材集团", audited.CustomerName)
	assert.Equal(t, "auditor", audited.AuditorName)
	assert.True(t, l.isDefaulted(t))

	r1, err := l.createRecovery.Execute(ctx, CreateRecoveryApplicationCommand{
		CustomerID:  "C1",
		ReasonID:    "RR0001",
		ApplicantID: "USER0001",
	})
	require.NoError(t, err)
	assert.Equal(t, "REC0001", r1.RecoveryAppID)
	assert.Equal(t, a1.AppID, r1.OriginalDefaultAppID)

	_, err = l.auditRecovery.Execute(ctx, AuditCommand{AppID: r1.RecoveryAppID, AuditorID: "USER0002", Decision: "approved"})
	require.NoError(t, err)
	assert.False(t, l.isDefaulted(t))

	// Terminal applications cannot be audited again.
	_, err = l.auditDefault.Execute(ctx, AuditCommand{AppID: a1.AppID, AuditorID: "USER0002", Decision: "approved"})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.False(t, l.isDefaulted(t))
}

func TestLifecycle_RejectedDefaultLeavesCustomer(t *testing.T) {
	l := newLifecycle(t)
	ctx := context.Background()

	a1, err := l.createDefault.Execute(ctx, CreateDefaultApplicationCommand{
		CustomerID: "C1", ReasonID: "DR0001", Severity: "low", ApplicantID: "USER0001",
	})
	require.NoError(t, err)

	_, err = l.auditDefault.Execute(ctx, AuditCommand{AppID: a1.AppID, AuditorID: "USER0002", Decision: "rejected"})
	require.NoError(t, err)
	assert.False(t, l.isDefaulted(t))
}

func TestLifecycle_FailedCreateWritesNothing(t *testing.T) {
	l := newLifecycle(t)
	ctx := context.Background()

	for _, cmd := range []CreateDefaultApplicationCommand{
		{CustomerID: "C404", ReasonID: "DR0001", Severity: "high", ApplicantID: "USER0001"},
		{CustomerID: "C1", ReasonID: "DR0404", Severity: "high", ApplicantID: "USER0001"},
		{CustomerID: "C1", ReasonID: "DR0001", Severity: "high", ApplicantID: "USER0404"},
	} {
		_, err := l.createDefault.Execute(ctx, cmd)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	}

	var count int64
	require.NoError(t, l.database.Model(&models.DefaultApplicationModel{}).Count(&count).Error)
	assert.Zero(t, count)

	// No originating default application exists yet.
	_, err := l.createRecovery.Execute(ctx, CreateRecoveryApplicationCommand{
		CustomerID: "C1", ReasonID: "RR0001", ApplicantID: "USER0001",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestLifecycle_AuditRollsBackWhenCustomerMissing(t *testing.T) {
	l := newLifecycle(t)
	ctx := context.Background()

	a1, err := l.createDefault.Execute(ctx, CreateDefaultApplicationCommand{
		CustomerID: "C1", ReasonID: "DR0001", Severity: "medium", ApplicantID: "USER0001",
	})
	require.NoError(t, err)
	require.NoError(t, l.database.Where("customer_id = ?", "C1").Delete(&models.CustomerModel{}).Error)

	_, err = l.auditDefault.Execute(ctx, AuditCommand{AppID: a1.AppID, AuditorID: "USER0002", Decision: "approved"})
	require.Error(t, err)

	var model models.DefaultApplicationModel
	require.NoError(t, l.database.First(&model, "app_id = ?", a1.AppID).Error)
	assert.Equal(t, "pending", model.AuditStatus)
	assert.Nil(t, model.AuditorID)
}

func TestLifecycle_SequentialIDs(t *testing.T) {
	l := newLifecycle(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		a, err := l.createDefault.Execute(ctx, CreateDefaultApplicationCommand{
			CustomerID: "C1", ReasonID: "DR0001", Severity: "high", ApplicantID: "USER0001",
		})
		require.NoError(t, err)
		ids = append(ids, a.AppID)
	}
	assert.Equal(t, []string{"DEF0001", "DEF0002", "DEF0003"}, ids)
}
