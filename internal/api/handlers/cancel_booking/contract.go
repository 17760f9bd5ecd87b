package cancel_booking

import (
	"context"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingID int64) error
}

type SessionGate interface {
	Resolve(ctx context.Context, token string) (*domain.UserSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
