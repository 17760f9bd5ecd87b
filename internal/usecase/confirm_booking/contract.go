package confirm_booking

import (
	"context"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
	"github.com/m04kA/SLN-BookingFlow/internal/service/session"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BookingDraft, error)
	Delete(ctx context.Context, id string) error
}

// SalonAPIClient интерфейс клиента API салона
type SalonAPIClient interface {
	SaveBooking(ctx context.Context, payload *salonapi.BookingPayload) (int64, error)
	SaveBookingGuest(ctx context.Context, payload *salonapi.BookingPayload) (int64, error)
}

// SessionGate интерфейс шлюза сессии
type SessionGate interface {
	Resolve(ctx context.Context, token string) (*domain.UserSession, error)
	DecideNextStep(isAuthenticated bool) session.NextStep
}

// FlowInvalidator интерфейс сброса состояния резолвера занятости
type FlowInvalidator interface {
	Invalidate(flowID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
