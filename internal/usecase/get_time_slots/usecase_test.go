package get_time_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	draftRepo "github.com/m04kA/SLN-BookingFlow/internal/infra/storage/draft"
	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
	"github.com/m04kA/SLN-BookingFlow/internal/service/availability"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeDraftRepo struct {
	draft  *domain.BookingDraft
	getErr error
}

func (r *fakeDraftRepo) GetByID(ctx context.Context, id string) (*domain.BookingDraft, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.draft, nil
}

type fakeResolver struct {
	snapshot *availability.Snapshot
	err      error
	lastReq  availability.Request
}

func (r *fakeResolver) Resolve(ctx context.Context, req availability.Request) (*availability.Snapshot, error) {
	r.lastReq = req
	if r.err != nil {
		return nil, r.err
	}
	return r.snapshot, nil
}

func draftWithDate() *domain.BookingDraft {
	d := &domain.BookingDraft{ID: "draft-1"}
	d.SelectBranch(domain.Branch{ID: 1, Name: "Central"})
	d.SelectStaff(domain.Staff{ID: 5, FullName: "Anna K."})
	d.ToggleService(domain.Service{ID: 10, DurationMinutes: 30})
	d.ToggleService(domain.Service{ID: 11, DurationMinutes: 45})
	d.SelectDate(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	return d
}

func TestExecute_BuildsBuckets(t *testing.T) {
	draft := draftWithDate()
	draft.SelectTime("08:15")

	resolver := &fakeResolver{snapshot: &availability.Snapshot{
		Date: "2025-06-15",
		Occupancy: domain.OccupancyMap{
			"08:00": 0,
			"12:00": 0,
			"14:30": 2,
		},
	}}
	uc := NewUseCase(&fakeDraftRepo{draft: draft}, resolver, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DraftID: "draft-1"})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-15", resp.Date)
	require.Len(t, resp.Buckets, 3)
	assert.Equal(t, "Morning", resp.Buckets[0].Title)
	assert.Equal(t, "Afternoon", resp.Buckets[1].Title)
	assert.Equal(t, "Evening", resp.Buckets[2].Title)
	for _, b := range resp.Buckets {
		assert.Len(t, b.Slots, 16)
	}

	morning := resp.Buckets[0].Slots
	assert.Equal(t, "08:00 AM", morning[0].Display)
	assert.Equal(t, "08:00", string(morning[0].Time))
	assert.False(t, morning[0].Available, "explicit zero capacity blocks the slot")
	assert.False(t, morning[0].Selected)

	assert.True(t, morning[1].Available, "missing key means available")
	assert.True(t, morning[1].Selected, "slot matching the draft time is marked selected")

	afternoon := resp.Buckets[1].Slots
	assert.False(t, afternoon[0].Available) // 12:00 PM blocked
	assert.True(t, afternoon[10].Available) // 02:30 PM has capacity

	// resolver is keyed by the flow and fed the draft selections
	assert.Equal(t, "draft-1", resolver.lastReq.FlowID)
	assert.Equal(t, int64(1), resolver.lastReq.BranchID)
	assert.Equal(t, int64(5), resolver.lastReq.StaffID)
	assert.Equal(t, []int64{10, 11}, resolver.lastReq.ServiceIDs)
	assert.Equal(t, "2025-06-15", resolver.lastReq.Date)
}

func TestExecute_NoTimeSelected(t *testing.T) {
	resolver := &fakeResolver{snapshot: &availability.Snapshot{
		Date:      "2025-06-15",
		Occupancy: domain.OccupancyMap{},
	}}
	uc := NewUseCase(&fakeDraftRepo{draft: draftWithDate()}, resolver, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DraftID: "draft-1"})
	require.NoError(t, err)

	for _, b := range resp.Buckets {
		for _, s := range b.Slots {
			assert.False(t, s.Selected)
		}
	}
}

func TestExecute_Prerequisites(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *domain.BookingDraft)
		wantErr error
	}{
		{"no branch", func(d *domain.BookingDraft) { d.Branch = nil }, ErrBranchNotSelected},
		{"no staff", func(d *domain.BookingDraft) { d.Staff = nil }, ErrStaffNotSelected},
		{"no services", func(d *domain.BookingDraft) { d.Services = nil }, ErrNoServicesSelected},
		{"no date", func(d *domain.BookingDraft) { d.Date = time.Time{} }, ErrDateNotSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := draftWithDate()
			tt.mutate(draft)
			uc := NewUseCase(&fakeDraftRepo{draft: draft}, &fakeResolver{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{DraftID: "draft-1"})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_DraftNotFound(t *testing.T) {
	uc := NewUseCase(&fakeDraftRepo{getErr: draftRepo.ErrDraftNotFound}, &fakeResolver{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: "missing"})

	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestExecute_ResolverErrors(t *testing.T) {
	tests := []struct {
		name       string
		resolveErr error
		wantErr    error
	}{
		{"superseded", availability.ErrSuperseded, ErrStaleRequest},
		{"unavailable", salonapi.ErrUnavailable, ErrSalonUnavailable},
		{"unexpected", errors.New("boom"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeDraftRepo{draft: draftWithDate()}, &fakeResolver{err: tt.resolveErr}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{DraftID: "draft-1"})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_MissingDraftID(t *testing.T) {
	uc := NewUseCase(&fakeDraftRepo{}, &fakeResolver{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
