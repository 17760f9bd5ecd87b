package salonapi

import "encoding/json"

// envelope общая форма ответа API салона
type envelope struct {
	Status  bool            `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Employee сотрудник филиала из /employee-list
type Employee struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name"`
	Description  string `json:"description"`
	ProfileImage string `json:"profile_image"`
}

// ServiceCategory категория услуг из /employee-service-list
type ServiceCategory struct {
	Category Category  `json:"category"`
	Services []Service `json:"services"`
}

// Category название категории услуг
type Category struct {
	Name string `json:"name"`
}

// Service услуга салона
type Service struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	ServiceImage string   `json:"service_image"`
	DurationMin  int      `json:"duration_min"`
	Price        *float64 `json:"price,omitempty"`
}

// ServiceLine строка услуги в payload бронирования
// Время начала каждой следующей услуги — конец предыдущей
type ServiceLine struct {
	ServiceID     int64  `json:"service_id"`
	EmployeeID    int64  `json:"employee_id"`
	BranchID      int64  `json:"branch_id"`
	StartDateTime string `json:"start_date_time"` // "YYYY-MM-DD HH:MM:SS"
	DurationMin   int    `json:"duration_min"`
}

// BookingPayload тело запроса /save-booking и /save-booking-guest
// Для зарегистрированного пользователя заполняется UserID, гостевые поля пустые
// Для гостя UserID = nil, обязательны GuestName и GuestPhone
type BookingPayload struct {
	ID            *int64        `json:"id"` // всегда null при создании
	Note          string        `json:"note"`
	StartDateTime string        `json:"start_date_time"`
	EmployeeID    int64         `json:"employee_id"`
	BranchID      int64         `json:"branch_id"`
	UserID        *int64        `json:"user_id"`
	Status        string        `json:"status"` // всегда "pending"
	ServicesID    []int64       `json:"services_id"`
	CouponID      *int64        `json:"coupon_id"`
	CouponCode    string        `json:"coupon_code"`
	ReferralCode  string        `json:"referral_code"`
	GuestName     string        `json:"guest_name"`
	GuestPhone    string        `json:"guest_phone"`
	UseCredit     bool          `json:"use_credit"`
	Services      []ServiceLine `json:"services"`
}

// savedBooking форма data в ответе /save-booking
type savedBooking struct {
	ID int64 `json:"id"`
}
