package get_time_slots

import (
	"context"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	"github.com/m04kA/SLN-BookingFlow/internal/service/availability"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BookingDraft, error)
}

// AvailabilityResolver интерфейс резолвера занятости
// Реализация гарантирует last-request-wins: ответ на вытесненный запрос
// никогда не попадает в результат
type AvailabilityResolver interface {
	Resolve(ctx context.Context, req availability.Request) (*availability.Snapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
