package draft

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	"github.com/m04kA/SLN-BookingFlow/pkg/ptr"
)

type fakeResult struct {
	affected int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, nil }

// fakeExecutor captures the query and bound arguments of ExecContext calls.
type fakeExecutor struct {
	query    string
	args     []interface{}
	affected int64
	execErr  error
}

func (e *fakeExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.query = query
	e.args = args
	if e.execErr != nil {
		return nil, e.execErr
	}
	return fakeResult{affected: e.affected}, nil
}

func (e *fakeExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (e *fakeExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type fakeRow struct {
	scan func(dest ...interface{}) error
}

func (r *fakeRow) Scan(dest ...interface{}) error { return r.scan(dest...) }

func TestEncodeServices_EmptySelection(t *testing.T) {
	// Both a fresh draft and a reset selection must encode to a jsonb
	// array literal: the services column is NOT NULL and rejects a nil datum.
	tests := []struct {
		name     string
		services []domain.Service
	}{
		{"nil slice", nil},
		{"empty slice", []domain.Service{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeServices(tt.services)

			require.NoError(t, err)
			assert.Equal(t, []byte("[]"), got)
		})
	}
}

func TestEncodeServices_RoundTrip(t *testing.T) {
	services := []domain.Service{
		{ID: 10, Name: "Haircut", DurationMinutes: 30, Price: ptr.Ptr(25.0)},
		{ID: 11, Name: "Coloring", DurationMinutes: 45},
	}

	data, err := encodeServices(services)
	require.NoError(t, err)

	var decoded []domain.Service
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, services, decoded)
}

func TestScanDraft_FreshDraft(t *testing.T) {
	repo := NewRepository(&fakeExecutor{})
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	row := &fakeRow{scan: func(dest ...interface{}) error {
		*(dest[0].(*string)) = "draft-1"
		*(dest[1].(**int64)) = nil
		*(dest[6].(*[]byte)) = []byte("[]")
		*(dest[13].(*sql.NullTime)) = sql.NullTime{Time: now, Valid: true}
		*(dest[14].(*sql.NullTime)) = sql.NullTime{Time: now, Valid: true}
		return nil
	}}

	draft, err := repo.scanDraft(row)

	require.NoError(t, err)
	assert.Equal(t, "draft-1", draft.ID)
	assert.Nil(t, draft.UserID)
	assert.Nil(t, draft.Branch)
	assert.Nil(t, draft.Staff)
	assert.Empty(t, draft.Services)
	assert.True(t, draft.Date.IsZero())
	assert.True(t, draft.Time.IsZero())
	assert.Equal(t, now, draft.CreatedAt)
}

func TestScanDraft_FullSelection(t *testing.T) {
	repo := NewRepository(&fakeExecutor{})
	userID := int64(42)
	bookingDate := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	servicesJSON, err := encodeServices([]domain.Service{
		{ID: 10, Name: "Haircut", DurationMinutes: 30},
	})
	require.NoError(t, err)

	row := &fakeRow{scan: func(dest ...interface{}) error {
		*(dest[0].(*string)) = "draft-1"
		*(dest[1].(**int64)) = &userID
		*(dest[2].(*sql.NullInt64)) = sql.NullInt64{Int64: 1, Valid: true}
		*(dest[3].(*sql.NullString)) = sql.NullString{String: "Downtown", Valid: true}
		*(dest[4].(*sql.NullInt64)) = sql.NullInt64{Int64: 5, Valid: true}
		*(dest[5].(*sql.NullString)) = sql.NullString{String: "Anna K.", Valid: true}
		*(dest[6].(*[]byte)) = servicesJSON
		*(dest[7].(*sql.NullTime)) = sql.NullTime{Time: bookingDate, Valid: true}
		return dest[8].(sql.Scanner).Scan("10:00:00")
	}}

	draft, err := repo.scanDraft(row)

	require.NoError(t, err)
	require.NotNil(t, draft.Branch)
	assert.Equal(t, domain.Branch{ID: 1, Name: "Downtown"}, *draft.Branch)
	require.NotNil(t, draft.Staff)
	assert.Equal(t, domain.Staff{ID: 5, FullName: "Anna K."}, *draft.Staff)
	require.Len(t, draft.Services, 1)
	assert.Equal(t, int64(10), draft.Services[0].ID)
	assert.Equal(t, bookingDate, draft.Date)
	assert.Equal(t, "10:00", draft.Time.String())
	require.NotNil(t, draft.UserID)
	assert.Equal(t, int64(42), *draft.UserID)
}

func TestScanDraft_NotFound(t *testing.T) {
	repo := NewRepository(&fakeExecutor{})

	row := &fakeRow{scan: func(dest ...interface{}) error {
		return sql.ErrNoRows
	}}

	_, err := repo.scanDraft(row)

	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDelete(t *testing.T) {
	executor := &fakeExecutor{affected: 1}
	repo := NewRepository(executor)

	err := repo.Delete(context.Background(), "draft-1")

	require.NoError(t, err)
	assert.Contains(t, executor.query, "DELETE FROM booking_drafts")
	assert.Equal(t, []interface{}{"draft-1"}, executor.args)
}

func TestDelete_NotFound(t *testing.T) {
	repo := NewRepository(&fakeExecutor{affected: 0})

	err := repo.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDeleteExpired(t *testing.T) {
	executor := &fakeExecutor{affected: 3}
	repo := NewRepository(executor)
	cutoff := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	removed, err := repo.DeleteExpired(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.Contains(t, executor.query, "DELETE FROM booking_drafts")
	assert.Equal(t, []interface{}{cutoff}, executor.args)
}
