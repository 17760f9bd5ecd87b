package drafts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	draftRepo "github.com/m04kA/SLN-BookingFlow/internal/infra/storage/draft"
	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
	"github.com/m04kA/SLN-BookingFlow/internal/service/drafts/models"
	"github.com/m04kA/SLN-BookingFlow/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// memDraftRepo keeps drafts in a map; Update stores a copy so mutation
// through the serializable path is observable.
type memDraftRepo struct {
	drafts map[string]*domain.BookingDraft
}

func newMemDraftRepo() *memDraftRepo {
	return &memDraftRepo{drafts: make(map[string]*domain.BookingDraft)}
}

func (r *memDraftRepo) Create(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	copied := *d
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	r.drafts[d.ID] = &copied
	return &copied, nil
}

func (r *memDraftRepo) GetByID(ctx context.Context, id string) (*domain.BookingDraft, error) {
	d, ok := r.drafts[id]
	if !ok {
		return nil, draftRepo.ErrDraftNotFound
	}
	copied := *d
	return &copied, nil
}

func (r *memDraftRepo) Update(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	if _, ok := r.drafts[d.ID]; !ok {
		return nil, draftRepo.ErrDraftNotFound
	}
	copied := *d
	copied.UpdatedAt = time.Now()
	r.drafts[d.ID] = &copied
	return &copied, nil
}

func (r *memDraftRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.drafts[id]; !ok {
		return draftRepo.ErrDraftNotFound
	}
	delete(r.drafts, id)
	return nil
}

func (r *memDraftRepo) DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	var deleted int64
	for id, d := range r.drafts {
		if d.UpdatedAt.Before(olderThan) {
			delete(r.drafts, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeSalonClient struct {
	employees    []salonapi.Employee
	categories   []salonapi.ServiceCategory
	employeesErr error
	servicesErr  error
}

func (c *fakeSalonClient) GetEmployees(ctx context.Context, branchID int64) ([]salonapi.Employee, error) {
	if c.employeesErr != nil {
		return nil, c.employeesErr
	}
	return c.employees, nil
}

func (c *fakeSalonClient) GetEmployeeServices(ctx context.Context, branchID int64) ([]salonapi.ServiceCategory, error) {
	if c.servicesErr != nil {
		return nil, c.servicesErr
	}
	return c.categories, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeInvalidator struct {
	invalidated []string
}

func (i *fakeInvalidator) Invalidate(flowID string) {
	i.invalidated = append(i.invalidated, flowID)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func defaultSalonClient() *fakeSalonClient {
	return &fakeSalonClient{
		employees: []salonapi.Employee{
			{ID: 5, FullName: "Anna K."},
			{ID: 6, FullName: "Olga P."},
		},
		categories: []salonapi.ServiceCategory{
			{
				Category: salonapi.Category{Name: "Hair"},
				Services: []salonapi.Service{
					{ID: 10, Name: "Haircut", DurationMin: 30, Price: ptr.Ptr(25.0)},
					{ID: 11, Name: "Coloring", DurationMin: 45},
				},
			},
		},
	}
}

type testEnv struct {
	svc   *Service
	repo  *memDraftRepo
	salon *fakeSalonClient
	inv   *fakeInvalidator
	today time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo := newMemDraftRepo()
	salon := defaultSalonClient()
	inv := &fakeInvalidator{}
	today := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	svc := NewService(repo, salon, passthroughTxManager{}, inv, time.July, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: today}

	return &testEnv{svc: svc, repo: repo, salon: salon, inv: inv, today: today}
}

func (e *testEnv) createDraft(t *testing.T) string {
	t.Helper()
	resp, err := e.svc.Create(context.Background(), nil)
	require.NoError(t, err)
	return resp.ID
}

func (e *testEnv) selectThrough(t *testing.T, draftID string, step string) {
	t.Helper()
	ctx := context.Background()

	_, err := e.svc.SelectBranch(ctx, draftID, domain.Branch{ID: 1, Name: "Central"})
	require.NoError(t, err)
	if step == "branch" {
		return
	}

	_, err = e.svc.SelectStaff(ctx, draftID, 5)
	require.NoError(t, err)
	if step == "staff" {
		return
	}

	_, err = e.svc.ToggleService(ctx, draftID, 10)
	require.NoError(t, err)
	if step == "services" {
		return
	}

	_, err = e.svc.SelectDate(ctx, draftID, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	if step == "date" {
		return
	}

	_, err = e.svc.SelectTime(ctx, draftID, "10:00")
	require.NoError(t, err)
}

func TestService_CreateAndGet(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.svc.Create(context.Background(), ptr.Ptr(int64(42)))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	require.NotNil(t, created.UserID)
	assert.Equal(t, int64(42), *created.UserID)
	assert.False(t, created.IsComplete)

	got, err := env.svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestService_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestService_FullSelectionChain(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)
	env.selectThrough(t, id, "time")

	resp, err := env.svc.Get(context.Background(), id)
	require.NoError(t, err)

	assert.True(t, resp.IsComplete)
	require.NotNil(t, resp.Branch)
	assert.Equal(t, "Central", resp.Branch.Name)
	require.NotNil(t, resp.Staff)
	assert.Equal(t, "Anna K.", resp.Staff.FullName)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, 30, resp.Services[0].DurationMinutes)
	assert.Equal(t, "2025-06-20", resp.Date)
	assert.Equal(t, "10:00", resp.Time)
}

func TestService_SelectBranch_ResetsDownstream(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)
	env.selectThrough(t, id, "time")

	resp, err := env.svc.SelectBranch(context.Background(), id, domain.Branch{ID: 2, Name: "North"})
	require.NoError(t, err)

	assert.Nil(t, resp.Staff)
	assert.Empty(t, resp.Services)
	assert.Empty(t, resp.Date)
	assert.Empty(t, resp.Time)
}

func TestService_SelectStaff(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)

	_, err := env.svc.SelectStaff(context.Background(), id, 5)
	assert.ErrorIs(t, err, ErrBranchNotSelected)

	env.selectThrough(t, id, "branch")

	_, err = env.svc.SelectStaff(context.Background(), id, 99)
	assert.ErrorIs(t, err, ErrStaffNotFound)

	resp, err := env.svc.SelectStaff(context.Background(), id, 5)
	require.NoError(t, err)
	assert.Equal(t, "Anna K.", resp.Staff.FullName)
}

func TestService_ToggleService(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)
	env.selectThrough(t, id, "staff")

	resp, err := env.svc.ToggleService(context.Background(), id, 10)
	require.NoError(t, err)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Haircut", resp.Services[0].Name)

	// toggling the same service again removes it
	resp, err = env.svc.ToggleService(context.Background(), id, 10)
	require.NoError(t, err)
	assert.Empty(t, resp.Services)

	_, err = env.svc.ToggleService(context.Background(), id, 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_ToggleService_ResetsDateAndTime(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)
	env.selectThrough(t, id, "time")

	resp, err := env.svc.ToggleService(context.Background(), id, 11)
	require.NoError(t, err)

	assert.Empty(t, resp.Date, "service change invalidates the chosen date")
	assert.Empty(t, resp.Time)
}

func TestService_ToggleService_RequiresStaff(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)
	env.selectThrough(t, id, "branch")

	_, err := env.svc.ToggleService(context.Background(), id, 10)

	assert.ErrorIs(t, err, ErrStaffNotSelected)
}

func TestService_SelectDate(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)
	env.selectThrough(t, id, "services")

	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{"past date", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), ErrDateNotSelectable},
		{"beyond horizon", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), ErrDateNotSelectable},
		{"next year", time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC), ErrDateNotSelectable},
		{"today", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), nil},
		{"horizon month", time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.SelectDate(context.Background(), id, tt.date)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_SelectDate_RequiresServices(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)
	env.selectThrough(t, id, "staff")

	_, err := env.svc.SelectDate(context.Background(), id, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, ErrNoServicesSelected)
}

func TestService_SelectTime(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)
	env.selectThrough(t, id, "services")

	_, err := env.svc.SelectTime(context.Background(), id, "10:00")
	assert.ErrorIs(t, err, ErrDateNotSelected)

	env.selectThrough(t, id, "date")

	_, err = env.svc.SelectTime(context.Background(), id, "25:99")
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err := env.svc.SelectTime(context.Background(), id, "10:00")
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.Time)
	assert.True(t, resp.IsComplete)
}

func TestService_SetExtras(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)

	resp, err := env.svc.SetExtras(context.Background(), id, models.Extras{
		CouponCode: ptr.Ptr("SUMMER10"),
		UseCredit:  ptr.Ptr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CouponCode)
	assert.Equal(t, "SUMMER10", *resp.CouponCode)
	assert.True(t, resp.UseCredit)

	// nil fields leave previous values untouched
	resp, err = env.svc.SetExtras(context.Background(), id, models.Extras{
		ReferralCode: ptr.Ptr("FRIEND"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CouponCode)
	assert.Equal(t, "SUMMER10", *resp.CouponCode)
	require.NotNil(t, resp.ReferralCode)
	assert.Equal(t, "FRIEND", *resp.ReferralCode)
}

func TestService_Delete(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)

	err := env.svc.Delete(context.Background(), id)
	require.NoError(t, err)

	// resolver state is dropped with the draft
	assert.Equal(t, []string{id}, env.inv.invalidated)

	err = env.svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestService_CleanupExpired(t *testing.T) {
	env := newTestEnv(t)

	stale := &domain.BookingDraft{ID: "stale"}
	env.repo.drafts["stale"] = stale
	stale.UpdatedAt = env.today.Add(-48 * time.Hour)

	fresh := env.createDraft(t)

	deleted, err := env.svc.CleanupExpired(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = env.svc.Get(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrDraftNotFound)
	_, err = env.svc.Get(context.Background(), fresh)
	assert.NoError(t, err)
}

func TestService_SalonUnavailable(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)
	env.selectThrough(t, id, "branch")

	env.salon.employeesErr = salonapi.ErrUnavailable

	_, err := env.svc.SelectStaff(context.Background(), id, 5)

	assert.ErrorIs(t, err, ErrSalonUnavailable)
}

func TestService_TooManyServices(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)
	env.selectThrough(t, id, "staff")

	// widen the catalog past the per-draft limit
	var svcs []salonapi.Service
	for i := int64(1); i <= int64(domain.MaxServicesPerDraft)+1; i++ {
		svcs = append(svcs, salonapi.Service{ID: 100 + i, Name: "svc", DurationMin: 15})
	}
	env.salon.categories = []salonapi.ServiceCategory{{Category: salonapi.Category{Name: "Bulk"}, Services: svcs}}

	for i := int64(1); i <= int64(domain.MaxServicesPerDraft); i++ {
		_, err := env.svc.ToggleService(context.Background(), id, 100+i)
		require.NoError(t, err)
	}

	_, err := env.svc.ToggleService(context.Background(), id, 100+int64(domain.MaxServicesPerDraft)+1)

	assert.ErrorIs(t, err, ErrTooManyServices)
}

func TestService_InvalidInput(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)

	_, err := env.svc.SelectBranch(context.Background(), id, domain.Branch{ID: 0, Name: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.svc.SelectBranch(context.Background(), id, domain.Branch{ID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.svc.SelectStaff(context.Background(), id, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.svc.ToggleService(context.Background(), id, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_StaleUpdateLost(t *testing.T) {
	env := newTestEnv(t)
	id := env.createDraft(t)
	env.selectThrough(t, id, "branch")

	// repo returns an error from Update: surfaced as internal
	delete(env.repo.drafts, id)
	_, err := env.svc.SelectBranch(context.Background(), id, domain.Branch{ID: 3, Name: "South"})

	assert.ErrorIs(t, err, ErrDraftNotFound)
}
