package get_staff

import (
	"context"

	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
)

type CatalogService interface {
	ListStaff(ctx context.Context, branchID int64) ([]salonapi.Employee, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
