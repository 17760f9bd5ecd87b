package availability

import (
	"context"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
)

// SalonAPIClient интерфейс клиента API салона
type SalonAPIClient interface {
	GetAvailability(ctx context.Context, branchID, staffID int64, serviceIDs []int64, date string) (domain.OccupancyMap, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
