package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SLN-BookingFlow/pkg/types"
)

var (
	// ErrDraftIncomplete is returned when service lines are requested for a
	// draft that is missing a required selection. The API layer gates
	// confirmation on IsComplete, so hitting this is a programming defect.
	ErrDraftIncomplete = errors.New("booking draft is incomplete")

	// ErrInvalidServiceDuration is returned when a selected service carries
	// a negative duration
	ErrInvalidServiceDuration = errors.New("service duration must be non-negative")
)

// Branch is a salon location selected into a draft.
type Branch struct {
	ID   int64
	Name string
}

// Staff is an employee of a branch selected into a draft.
type Staff struct {
	ID       int64
	FullName string
}

// Service is a bookable treatment selected into a draft.
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           *float64
}

// BookingDraft accumulates the multi-step selection carried across the
// booking screens: branch, staff, services, date, time, plus optional
// coupon/referral/credit fields. Selections form a chain; changing an
// earlier step resets everything downstream of it. The draft is owned by a
// single flow instance and discarded after successful submission.
type BookingDraft struct {
	ID     string
	UserID *int64

	Branch   *Branch
	Staff    *Staff
	Services []Service
	Date     time.Time
	Time     types.TimeString

	CouponID     *int64
	CouponCode   *string
	ReferralCode *string
	UseCredit    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SelectBranch sets the branch and resets every downstream selection.
func (d *BookingDraft) SelectBranch(b Branch) {
	d.Branch = &b
	d.Staff = nil
	d.Services = nil
	d.Date = time.Time{}
	d.Time = ""
}

// SelectStaff sets the staff member and resets services, date and time.
func (d *BookingDraft) SelectStaff(s Staff) {
	d.Staff = &s
	d.Services = nil
	d.Date = time.Time{}
	d.Time = ""
}

// ToggleService adds the service if absent or removes it if present.
// Toggling twice restores the original state. Order of first selection is
// preserved.
func (d *BookingDraft) ToggleService(svc Service) {
	for i, existing := range d.Services {
		if existing.ID == svc.ID {
			d.Services = append(d.Services[:i], d.Services[i+1:]...)
			return
		}
	}
	d.Services = append(d.Services, svc)
}

// HasService reports whether a service with the given id is selected.
func (d *BookingDraft) HasService(id int64) bool {
	for _, svc := range d.Services {
		if svc.ID == id {
			return true
		}
	}
	return false
}

// SelectDate sets the date and always clears the selected time: previously
// fetched availability no longer applies to the new date.
func (d *BookingDraft) SelectDate(date time.Time) {
	d.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	d.Time = ""
}

// SelectTime sets the 24h start time.
func (d *BookingDraft) SelectTime(t types.TimeString) {
	d.Time = t
}

// IsComplete reports whether every field required for submission is set:
// branch, staff, at least one service, date and time.
func (d *BookingDraft) IsComplete() bool {
	return d.Branch != nil &&
		d.Staff != nil &&
		len(d.Services) > 0 &&
		!d.Date.IsZero() &&
		!d.Time.IsZero()
}

// StartDateTime combines the selected date and time into a single moment.
func (d *BookingDraft) StartDateTime() (time.Time, error) {
	if d.Date.IsZero() || d.Time.IsZero() {
		return time.Time{}, ErrDraftIncomplete
	}

	minutes, err := d.Time.TotalMinutes()
	if err != nil {
		return time.Time{}, err
	}

	return d.Date.Add(time.Duration(minutes) * time.Minute), nil
}

// ServiceBookingLine is one service entry of the submission payload. Start
// times chain sequentially: each service starts where the previous one
// ends.
type ServiceBookingLine struct {
	ServiceID       int64
	EmployeeID      int64
	BranchID        int64
	StartDateTime   time.Time
	DurationMinutes int
}

// ComputeServiceLines derives per-service booking lines from the draft.
// The first line starts at the selected date+time; line i starts at the
// end of line i-1. Input service order is preserved, never sorted.
func (d *BookingDraft) ComputeServiceLines() ([]ServiceBookingLine, error) {
	if !d.IsComplete() {
		return nil, ErrDraftIncomplete
	}

	start, err := d.StartDateTime()
	if err != nil {
		return nil, err
	}

	lines := make([]ServiceBookingLine, 0, len(d.Services))
	current := start

	for _, svc := range d.Services {
		if svc.DurationMinutes < 0 {
			return nil, ErrInvalidServiceDuration
		}

		lines = append(lines, ServiceBookingLine{
			ServiceID:       svc.ID,
			EmployeeID:      d.Staff.ID,
			BranchID:        d.Branch.ID,
			StartDateTime:   current,
			DurationMinutes: svc.DurationMinutes,
		})

		current = current.Add(time.Duration(svc.DurationMinutes) * time.Minute)
	}

	return lines, nil
}

// TotalDurationMinutes sums the durations of all selected services.
func (d *BookingDraft) TotalDurationMinutes() int {
	total := 0
	for _, svc := range d.Services {
		total += svc.DurationMinutes
	}
	return total
}
