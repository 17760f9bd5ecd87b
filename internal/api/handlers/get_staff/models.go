package get_staff

import (
	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
)

// StaffListResponse HTTP response model
type StaffListResponse struct {
	Staff []StaffMember `json:"staff"`
}

// StaffMember мастер филиала
type StaffMember struct {
	ID           int64  `json:"id"`
	FullName     string `json:"fullName"`
	Description  string `json:"description,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// FromEmployees конвертирует ответ API салона в HTTP response
func FromEmployees(employees []salonapi.Employee) *StaffListResponse {
	staff := make([]StaffMember, len(employees))
	for i, e := range employees {
		staff[i] = StaffMember{
			ID:           e.ID,
			FullName:     e.FullName,
			Description:  e.Description,
			ProfileImage: e.ProfileImage,
		}
	}
	return &StaffListResponse{Staff: staff}
}
