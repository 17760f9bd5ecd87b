package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
)

// Service сервис для работы с созданными бронированиями
// Состояние бронирований живет на стороне салона, сервис только проксирует операции
type Service struct {
	salonClient SalonAPIClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(salonClient SalonAPIClient, logger Logger) *Service {
	return &Service{
		salonClient: salonClient,
		logger:      logger,
	}
}

// Cancel отменяет бронирование на стороне салона
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	if bookingID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	if err := s.salonClient.CancelBooking(ctx, bookingID); err != nil {
		switch {
		case errors.Is(err, salonapi.ErrUnavailable):
			s.logger.Error("Cancel: salon api unavailable for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: %v", ErrSalonUnavailable, err)
		case errors.Is(err, salonapi.ErrRejected):
			s.logger.Warn("Cancel: salon api rejected cancel for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: %v", ErrCancelRejected, err)
		default:
			s.logger.Error("Cancel: salon api error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}
