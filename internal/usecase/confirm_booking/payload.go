package confirm_booking

import (
	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
)

// statusPending статус нового бронирования в API салона
const statusPending = "pending"

// buildPayload собирает тело запроса /save-booking из черновика.
// Времена услуг выстраиваются цепочкой: каждая следующая услуга начинается
// там, где закончилась предыдущая. Порядок услуг сохраняется как выбран
func buildPayload(draft *domain.BookingDraft, note string) (*salonapi.BookingPayload, error) {
	lines, err := draft.ComputeServiceLines()
	if err != nil {
		return nil, err
	}

	serviceIDs := make([]int64, 0, len(draft.Services))
	for _, svc := range draft.Services {
		serviceIDs = append(serviceIDs, svc.ID)
	}

	serviceLines := make([]salonapi.ServiceLine, 0, len(lines))
	for _, line := range lines {
		serviceLines = append(serviceLines, salonapi.ServiceLine{
			ServiceID:     line.ServiceID,
			EmployeeID:    line.EmployeeID,
			BranchID:      line.BranchID,
			StartDateTime: line.StartDateTime.Format(domain.DateTimeFormat),
			DurationMin:   line.DurationMinutes,
		})
	}

	start, err := draft.StartDateTime()
	if err != nil {
		return nil, err
	}

	payload := &salonapi.BookingPayload{
		ID:            nil,
		Note:          note,
		StartDateTime: start.Format(domain.DateTimeFormat),
		EmployeeID:    draft.Staff.ID,
		BranchID:      draft.Branch.ID,
		Status:        statusPending,
		ServicesID:    serviceIDs,
		CouponID:      draft.CouponID,
		UseCredit:     draft.UseCredit,
		Services:      serviceLines,
	}

	if draft.CouponCode != nil {
		payload.CouponCode = *draft.CouponCode
	}
	if draft.ReferralCode != nil {
		payload.ReferralCode = *draft.ReferralCode
	}

	return payload, nil
}
