package update_selection

import (
	"context"
	"time"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	"github.com/m04kA/SLN-BookingFlow/internal/service/drafts/models"
	"github.com/m04kA/SLN-BookingFlow/pkg/types"
)

type DraftService interface {
	SelectBranch(ctx context.Context, draftID string, branch domain.Branch) (*models.DraftResponse, error)
	SelectStaff(ctx context.Context, draftID string, staffID int64) (*models.DraftResponse, error)
	ToggleService(ctx context.Context, draftID string, serviceID int64) (*models.DraftResponse, error)
	SelectDate(ctx context.Context, draftID string, date time.Time) (*models.DraftResponse, error)
	SelectTime(ctx context.Context, draftID string, slot types.TimeString) (*models.DraftResponse, error)
	SetExtras(ctx context.Context, draftID string, extras models.Extras) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
