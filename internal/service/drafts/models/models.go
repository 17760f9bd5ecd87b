package models

import (
	"time"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
)

// Request модели

// Extras опциональные поля черновика: купон, реферальный код, оплата баллами
// nil-поле означает "не менять"
type Extras struct {
	CouponID     *int64  `json:"couponId,omitempty"`
	CouponCode   *string `json:"couponCode,omitempty"`
	ReferralCode *string `json:"referralCode,omitempty"`
	UseCredit    *bool   `json:"useCredit,omitempty"`
}

// Response модели

// BranchResponse выбранный филиал
type BranchResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StaffResponse выбранный мастер
type StaffResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

// ServiceResponse выбранная услуга
type ServiceResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
}

// DraftResponse состояние черновика бронирования
type DraftResponse struct {
	ID           string            `json:"id"`
	UserID       *int64            `json:"userId,omitempty"`
	Branch       *BranchResponse   `json:"branch,omitempty"`
	Staff        *StaffResponse    `json:"staff,omitempty"`
	Services     []ServiceResponse `json:"services"`
	Date         string            `json:"date,omitempty"` // "2025-10-15"
	Time         string            `json:"time,omitempty"` // "10:00"
	CouponCode   *string           `json:"couponCode,omitempty"`
	ReferralCode *string           `json:"referralCode,omitempty"`
	UseCredit    bool              `json:"useCredit"`
	IsComplete   bool              `json:"isComplete"`
	CreatedAt    string            `json:"createdAt"`
	UpdatedAt    string            `json:"updatedAt"`
}

// FromDomainDraft конвертирует domain черновик в response модель
func FromDomainDraft(d *domain.BookingDraft) *DraftResponse {
	resp := &DraftResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		Services:     make([]ServiceResponse, 0, len(d.Services)),
		Time:         d.Time.String(),
		CouponCode:   d.CouponCode,
		ReferralCode: d.ReferralCode,
		UseCredit:    d.UseCredit,
		IsComplete:   d.IsComplete(),
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    d.UpdatedAt.Format(time.RFC3339),
	}

	if d.Branch != nil {
		resp.Branch = &BranchResponse{ID: d.Branch.ID, Name: d.Branch.Name}
	}
	if d.Staff != nil {
		resp.Staff = &StaffResponse{ID: d.Staff.ID, FullName: d.Staff.FullName}
	}
	for _, svc := range d.Services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		})
	}
	if !d.Date.IsZero() {
		resp.Date = d.Date.Format(domain.DateFormat)
	}

	return resp
}
