package catalog

import (
	"context"

	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
)

// SalonAPIClient интерфейс клиента API салона
type SalonAPIClient interface {
	GetEmployees(ctx context.Context, branchID int64) ([]salonapi.Employee, error)
	GetEmployeeServices(ctx context.Context, branchID int64) ([]salonapi.ServiceCategory, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
