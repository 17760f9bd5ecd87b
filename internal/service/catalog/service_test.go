package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSalonClient struct {
	employees  []salonapi.Employee
	categories []salonapi.ServiceCategory
	err        error
}

func (c *fakeSalonClient) GetEmployees(ctx context.Context, branchID int64) ([]salonapi.Employee, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.employees, nil
}

func (c *fakeSalonClient) GetEmployeeServices(ctx context.Context, branchID int64) ([]salonapi.ServiceCategory, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.categories, nil
}

func TestListStaff(t *testing.T) {
	client := &fakeSalonClient{employees: []salonapi.Employee{
		{ID: 5, FullName: "Anna K."},
	}}
	svc := NewService(client, nopLogger{})

	employees, err := svc.ListStaff(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Anna K.", employees[0].FullName)
}

func TestListServices(t *testing.T) {
	client := &fakeSalonClient{categories: []salonapi.ServiceCategory{
		{Category: salonapi.Category{Name: "Hair"}},
	}}
	svc := NewService(client, nopLogger{})

	categories, err := svc.ListServices(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Hair", categories[0].Category.Name)
}

func TestListStaff_InvalidBranch(t *testing.T) {
	svc := NewService(&fakeSalonClient{}, nopLogger{})

	_, err := svc.ListStaff(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		wantErr   error
	}{
		{"unavailable", salonapi.ErrUnavailable, ErrSalonUnavailable},
		{"rejected", salonapi.ErrRejected, ErrBranchRejected},
		{"unexpected", errors.New("boom"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeSalonClient{err: tt.clientErr}, nopLogger{})

			_, err := svc.ListStaff(context.Background(), 1)
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = svc.ListServices(context.Background(), 1)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
