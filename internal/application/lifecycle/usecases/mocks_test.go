package usecases

import (
	"context"
	"time"

	"weiyue/internal/domain/customer"
	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/reason"
	"weiyue/internal/domain/recoveryapp"
	"weiyue/internal/domain/review"
	"weiyue/internal/domain/sequence"
	"weiyue/internal/domain/user"
)

type mockDefaultAppRepository struct {
	CreateFunc             func(ctx context.Context, a *defaultapp.Application) error
	GetByIDFunc            func(ctx context.Context, id string) (*defaultapp.Application, error)
	GetSummaryFunc         func(ctx context.Context, id string) (*defaultapp.Summary, error)
	LatestForCustomerFunc  func(ctx context.Context, customerID string) (*defaultapp.Application, error)
	SaveAuditFunc          func(ctx context.Context, a *defaultapp.Application) (int64, error)
	ListFunc               func(ctx context.Context, filter defaultapp.Filter) ([]*defaultapp.Summary, int64, error)
	ApprovedAuditTimesFunc func(ctx context.Context) ([]time.Time, error)
}

func (m *mockDefaultAppRepository) Create(ctx context.Context, a *defaultapp.Application) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockDefaultAppRepository) GetByID(ctx context.Context, id string) (*defaultapp.Application, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDefaultAppRepository) GetSummary(ctx context.Context, id string) (*defaultapp.Summary, error) {
	if m.GetSummaryFunc != nil {
		return m.GetSummaryFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDefaultAppRepository) LatestForCustomer(ctx context.Context, customerID string) (*defaultapp.Application, error) {
	if m.LatestForCustomerFunc != nil {
		return m.LatestForCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockDefaultAppRepository) SaveAudit(ctx context.Context, a *defaultapp.Application) (int64, error) {
	if m.SaveAuditFunc != nil {
		return m.SaveAuditFunc(ctx, a)
	}
	return 1, nil
}

func (m *mockDefaultAppRepository) List(ctx context.Context, filter defaultapp.Filter) ([]*defaultapp.Summary, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockDefaultAppRepository) ApprovedAuditTimes(ctx context.Context) ([]time.Time, error) {
	if m.ApprovedAuditTimesFunc != nil {
		return m.ApprovedAuditTimesFunc(ctx)
	}
	return nil, nil
}

type mockRecoveryAppRepository struct {
	CreateFunc     func(ctx context.Context, a *recoveryapp.Application) error
	GetByIDFunc    func(ctx context.Context, id string) (*recoveryapp.Application, error)
	GetSummaryFunc func(ctx context.Context, id string) (*recoveryapp.Summary, error)
	SaveAuditFunc  func(ctx context.Context, a *recoveryapp.Application) (int64, error)
	ListFunc       func(ctx context.Context, filter recoveryapp.Filter) ([]*recoveryapp.Summary, int64, error)
}

func (m *mockRecoveryAppRepository) Create(ctx context.Context, a *recoveryapp.Application) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockRecoveryAppRepository) GetByID(ctx context.Context, id string) (*recoveryapp.Application, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRecoveryAppRepository) GetSummary(ctx context.Context, id string) (*recoveryapp.Summary, error) {
	if m.GetSummaryFunc != nil {
		return m.GetSummaryFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRecoveryAppRepository) SaveAudit(ctx context.Context, a *recoveryapp.Application) (int64, error) {
	if m.SaveAuditFunc != nil {
		return m.SaveAuditFunc(ctx, a)
	}
	return 1, nil
}

func (m *mockRecoveryAppRepository) List(ctx context.Context, filter recoveryapp.Filter) ([]*recoveryapp.Summary, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockCustomerRepository struct {
	GetByIDFunc       func(ctx context.Context, id string) (*customer.Customer, error)
	ListFunc          func(ctx context.Context, filter customer.Filter) ([]*customer.Customer, int64, error)
	ListDefaultedFunc func(ctx context.Context) ([]*customer.Customer, error)
	SetDefaultedFunc  func(ctx context.Context, id string, defaulted bool, at time.Time) (int64, error)
	UpsertFunc        func(ctx context.Context, c *customer.Customer) error
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCustomerRepository) List(ctx context.Context, filter customer.Filter) ([]*customer.Customer, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockCustomerRepository) ListDefaulted(ctx context.Context) ([]*customer.Customer, error) {
	if m.ListDefaultedFunc != nil {
		return m.ListDefaultedFunc(ctx)
	}
	return nil, nil
}

func (m *mockCustomerRepository) SetDefaulted(ctx context.Context, id string, defaulted bool, at time.Time) (int64, error) {
	if m.SetDefaultedFunc != nil {
		return m.SetDefaultedFunc(ctx, id, defaulted, at)
	}
	return 1, nil
}

func (m *mockCustomerRepository) Upsert(ctx context.Context, c *customer.Customer) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, c)
	}
	return nil
}

type mockReasonRepository struct {
	GetByIDFunc func(ctx context.Context, kind reason.Kind, id string) (*reason.Reason, error)
}

func (m *mockReasonRepository) ListEnabled(context.Context, reason.Kind) ([]*reason.Reason, error) {
	return nil, nil
}

func (m *mockReasonRepository) ListAll(context.Context, reason.Kind) ([]*reason.Reason, error) {
	return nil, nil
}

func (m *mockReasonRepository) GetByID(ctx context.Context, kind reason.Kind, id string) (*reason.Reason, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, kind, id)
	}
	return nil, nil
}

func (m *mockReasonRepository) Create(context.Context, *reason.Reason) error {
	return nil
}

func (m *mockReasonRepository) Update(context.Context, reason.Kind, string, reason.Patch, time.Time) (int64, error) {
	return 1, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*user.User, error)
}

func (m *mockUserRepository) Create(context.Context, *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(context.Context, string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) Upsert(context.Context, *user.User) error { return nil }

type mockSequencer struct {
	NextFunc func(ctx context.Context, kind sequence.Kind) (string, error)
	calls    int
}

func (m *mockSequencer) Next(ctx context.Context, kind sequence.Kind) (string, error) {
	m.calls++
	if m.NextFunc != nil {
		return m.NextFunc(ctx, kind)
	}
	return sequence.Format(kind.Prefix, int64(m.calls)), nil
}

// passThroughRunner runs fn directly and counts units of work.
type passThroughRunner struct {
	runs int
}

func (r *passThroughRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	r.runs++
	return fn(ctx)
}

type mockRecorder struct {
	created []string
	audited []string
}

func (m *mockRecorder) ApplicationCreated(kind string) {
	m.created = append(m.created, kind)
}

func (m *mockRecorder) ApplicationAudited(kind, decision string) {
	m.audited = append(m.audited, kind+":"+decision)
}

type mockInvalidator struct {
	calls int
	err   error
}

func (m *mockInvalidator) Invalidate(context.Context) error {
	m.calls++
	return m.err
}

type mockNotifier struct {
	notices chan review.Notice
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{notices: make(chan review.Notice, 4)}
}

func (m *mockNotifier) NotifyAudit(_ context.Context, n review.Notice) error {
	m.notices <- n
	return nil
}

func testCustomer(id string) *customer.Customer {
	return customer.NewCustomer(id, "客户"+id, "BBB", "制造业", "华东", fixedNow)
}

func testUser(id, email string) *user.User {
	return user.ReconstructUser(id, "user"+id, "hash", user.Profile{RealName: "用户" + id, Email: email}, fixedNow, fixedNow)
}

func testReason(kind reason.Kind, id string) *reason.Reason {
	return reason.ReconstructReason(kind, id, "原因", true, fixedNow, fixedNow)
}

var fixedNow = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }
