package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	draftRepo "github.com/m04kA/SLN-BookingFlow/internal/infra/storage/draft"
	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
)

// UseCase use case для отправки бронирования в API салона
// Повторных попыток нет: при любой ошибке отправки черновик сохраняется,
// пользователь решает сам, пробовать ли снова. Черновик удаляется только
// после подтверждённого успеха
type UseCase struct {
	draftRepo   DraftRepository
	salonClient SalonAPIClient
	sessionGate SessionGate
	invalidator FlowInvalidator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	salonClient SalonAPIClient,
	sessionGate SessionGate,
	invalidator FlowInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:   draftRepo,
		salonClient: salonClient,
		sessionGate: sessionGate,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Execute выполняет use case отправки бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	draft, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("ConfirmBooking: draft id=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get draft id=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	if !draft.IsComplete() {
		uc.logger.Warn("ConfirmBooking: draft id=%s is incomplete", req.DraftID)
		return nil, ErrDraftIncomplete
	}

	sess, err := uc.sessionGate.Resolve(ctx, req.Token)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to resolve session for draft id=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to resolve session: %v", ErrInternal, err)
	}

	authenticated := sess != nil

	// Неавторизованный пользователь без гостевых данных останавливается
	// на выборе "гость или вход". Черновик остаётся нетронутым: после
	// входа флоу возобновляется с того же места
	if !authenticated && !hasGuestInfo(req) {
		uc.logger.Info("ConfirmBooking: draft id=%s requires guest info or sign-in", req.DraftID)
		return &Response{NextStep: uc.sessionGate.DecideNextStep(false)}, nil
	}

	note := ""
	if req.Note != nil {
		note = *req.Note
	}

	payload, err := buildPayload(draft, note)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to build payload for draft id=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to build payload: %v", ErrInternal, err)
	}

	var bookingID int64

	if authenticated {
		payload.UserID = &sess.UserID
		bookingID, err = uc.salonClient.SaveBooking(ctx, payload)
	} else {
		name, phone, gerr := validateGuestInfo(req)
		if gerr != nil {
			uc.logger.Warn("ConfirmBooking: draft id=%s guest info invalid: %v", req.DraftID, gerr)
			return nil, gerr
		}
		payload.GuestName = name
		payload.GuestPhone = phone
		bookingID, err = uc.salonClient.SaveBookingGuest(ctx, payload)
	}

	if err != nil {
		// Черновик не удаляется: данные пользователя не должны пропасть
		// из-за неудачной отправки
		switch {
		case errors.Is(err, salonapi.ErrUnavailable):
			uc.logger.Error("ConfirmBooking: salon api unavailable for draft id=%s: %v", req.DraftID, err)
			return nil, fmt.Errorf("%w: %v", ErrSalonUnavailable, err)
		case errors.Is(err, salonapi.ErrRejected):
			uc.logger.Warn("ConfirmBooking: salon rejected booking for draft id=%s: %v", req.DraftID, err)
			return nil, fmt.Errorf("%w: %v", ErrSubmitRejected, err)
		default:
			uc.logger.Error("ConfirmBooking: failed to save booking for draft id=%s: %v", req.DraftID, err)
			return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
		}
	}

	// Успех: флоу завершён, черновик и состояние резолвера больше не нужны
	if derr := uc.draftRepo.Delete(ctx, req.DraftID); derr != nil {
		uc.logger.Warn("ConfirmBooking: failed to delete draft id=%s after submit: %v", req.DraftID, derr)
	}
	uc.invalidator.Invalidate(req.DraftID)

	uc.logger.Info("ConfirmBooking: draft id=%s submitted, booking id=%d, guest=%t",
		req.DraftID, bookingID, !authenticated)

	return &Response{
		NextStep:  uc.sessionGate.DecideNextStep(true),
		BookingID: &bookingID,
	}, nil
}
