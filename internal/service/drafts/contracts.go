package drafts

import (
	"context"
	"time"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	Create(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error)
	GetByID(ctx context.Context, id string) (*domain.BookingDraft, error)
	Update(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error)
}

// SalonAPIClient интерфейс клиента API салона
// Выбор мастера и услуг валидируется против актуальных данных салона
type SalonAPIClient interface {
	GetEmployees(ctx context.Context, branchID int64) ([]salonapi.Employee, error)
	GetEmployeeServices(ctx context.Context, branchID int64) ([]salonapi.ServiceCategory, error)
}

// TransactionManager интерфейс для управления транзакциями
// Шаги выбора выполняются как read-modify-write в сериализуемой транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// FlowInvalidator сброс состояния resolver'а занятости при выходе из флоу
type FlowInvalidator interface {
	Invalidate(flowID string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
