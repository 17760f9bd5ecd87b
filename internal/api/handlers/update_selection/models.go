package update_selection

import "github.com/m04kA/SLN-BookingFlow/internal/service/drafts/models"

// BranchSelection выбираемый филиал
type BranchSelection struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UpdateSelectionRequest HTTP request model
// Все поля опциональны и применяются в порядке цепочки выбора:
// филиал, мастер, услуга, дата, время. Выбор более раннего шага
// сбрасывает все последующие
type UpdateSelectionRequest struct {
	Branch          *BranchSelection `json:"branch,omitempty"`
	StaffID         *int64           `json:"staffId,omitempty"`
	ToggleServiceID *int64           `json:"toggleServiceId,omitempty"`
	Date            *string          `json:"date,omitempty"` // "2025-10-15"
	Time            *string          `json:"time,omitempty"` // "10:00"
	Extras          *models.Extras   `json:"extras,omitempty"`
}

// isEmpty сообщает, что запрос не содержит ни одного изменения
func (r *UpdateSelectionRequest) isEmpty() bool {
	return r.Branch == nil &&
		r.StaffID == nil &&
		r.ToggleServiceID == nil &&
		r.Date == nil &&
		r.Time == nil &&
		r.Extras == nil
}
