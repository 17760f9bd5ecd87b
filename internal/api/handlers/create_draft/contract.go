package create_draft

import (
	"context"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	"github.com/m04kA/SLN-BookingFlow/internal/service/drafts/models"
)

type DraftService interface {
	Create(ctx context.Context, userID *int64) (*models.DraftResponse, error)
}

type SessionGate interface {
	Resolve(ctx context.Context, token string) (*domain.UserSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
