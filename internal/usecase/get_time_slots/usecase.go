package get_time_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	draftRepo "github.com/m04kA/SLN-BookingFlow/internal/infra/storage/draft"
	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
	"github.com/m04kA/SLN-BookingFlow/internal/service/availability"
)

// UseCase use case для получения слотов времени на выбранную дату
// Каталог слотов фиксированный (48 слотов с шагом 15 минут), занятость
// накладывается на него из снимка резолвера
type UseCase struct {
	draftRepo DraftRepository
	resolver  AvailabilityResolver
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(draftRepo DraftRepository, resolver AvailabilityResolver, logger Logger) *UseCase {
	return &UseCase{
		draftRepo: draftRepo,
		resolver:  resolver,
		logger:    logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.DraftID == "" {
		return nil, fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	draft, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("GetTimeSlots: draft id=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("GetTimeSlots: failed to get draft id=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	// Слоты запрашиваются только когда пройдены все предыдущие шаги флоу
	if err := validatePrerequisites(draft); err != nil {
		uc.logger.Warn("GetTimeSlots: draft id=%s prerequisites failed: %v", req.DraftID, err)
		return nil, err
	}

	serviceIDs := make([]int64, 0, len(draft.Services))
	for _, svc := range draft.Services {
		serviceIDs = append(serviceIDs, svc.ID)
	}

	date := draft.Date.Format(domain.DateFormat)

	snapshot, err := uc.resolver.Resolve(ctx, availability.Request{
		FlowID:     draft.ID,
		BranchID:   draft.Branch.ID,
		StaffID:    draft.Staff.ID,
		ServiceIDs: serviceIDs,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrSuperseded):
			uc.logger.Info("GetTimeSlots: draft id=%s request superseded", req.DraftID)
			return nil, ErrStaleRequest
		case errors.Is(err, salonapi.ErrUnavailable):
			uc.logger.Error("GetTimeSlots: salon api unavailable for draft id=%s: %v", req.DraftID, err)
			return nil, fmt.Errorf("%w: %v", ErrSalonUnavailable, err)
		default:
			uc.logger.Error("GetTimeSlots: failed to resolve availability for draft id=%s: %v", req.DraftID, err)
			return nil, fmt.Errorf("%w: failed to resolve availability: %v", ErrInternal, err)
		}
	}

	buckets, err := buildBuckets(snapshot.Occupancy, draft.Time)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to build buckets for draft id=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to build buckets: %v", ErrInternal, err)
	}

	uc.logger.Info("GetTimeSlots: draft=%s, date=%s, buckets=%d", req.DraftID, snapshot.Date, len(buckets))

	return &Response{
		Date:    snapshot.Date,
		Buckets: buckets,
	}, nil
}

// validatePrerequisites проверяет, что в черновике выбраны филиал, мастер,
// услуги и дата
func validatePrerequisites(draft *domain.BookingDraft) error {
	if draft.Branch == nil {
		return ErrBranchNotSelected
	}
	if draft.Staff == nil {
		return ErrStaffNotSelected
	}
	if len(draft.Services) == 0 {
		return ErrNoServicesSelected
	}
	if draft.Date.IsZero() {
		return ErrDateNotSelected
	}
	return nil
}
