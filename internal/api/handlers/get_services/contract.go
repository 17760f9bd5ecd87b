package get_services

import (
	"context"

	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
)

type CatalogService interface {
	ListServices(ctx context.Context, branchID int64) ([]salonapi.ServiceCategory, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
