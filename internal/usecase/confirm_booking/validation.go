package confirm_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DraftID == "" {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must not exceed %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	if req.GuestName != nil && len(*req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guest name must not exceed %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if req.GuestPhone != nil && len(*req.GuestPhone) > domain.MaxGuestPhoneLength {
		return fmt.Errorf("%w: guest phone must not exceed %d characters", ErrInvalidInput, domain.MaxGuestPhoneLength)
	}

	return nil
}

// hasGuestInfo сообщает, что запрос содержит гостевые поля
// Достаточно одного заполненного поля: дальше валидация потребует оба
func hasGuestInfo(req *Request) bool {
	return req.GuestName != nil || req.GuestPhone != nil
}

// validateGuestInfo проверяет, что имя и телефон гостя заполнены
func validateGuestInfo(req *Request) (name, phone string, err error) {
	if req.GuestName != nil {
		name = strings.TrimSpace(*req.GuestName)
	}
	if req.GuestPhone != nil {
		phone = strings.TrimSpace(*req.GuestPhone)
	}

	if name == "" || phone == "" {
		return "", "", ErrGuestInfoRequired
	}

	return name, phone, nil
}
