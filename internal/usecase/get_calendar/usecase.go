package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	draftRepo "github.com/m04kA/SLN-BookingFlow/internal/infra/storage/draft"
)

// UseCase use case для получения календарной сетки месяца
// Сетка всегда начинается с воскресенья, дни соседних месяцев дополняют
// недельные ряды. Прошедшие дни и дни за горизонтом навигации не выбираемы
type UseCase struct {
	draftRepo    DraftRepository
	horizonMonth time.Month
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(draftRepo DraftRepository, horizonMonth time.Month, logger Logger) *UseCase {
	return &UseCase{
		draftRepo:    draftRepo,
		horizonMonth: horizonMonth,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// Проверяем, что черновик существует: календарь без флоу не показывается
	draft, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("GetCalendar: draft id=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("GetCalendar: failed to get draft id=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	today := uc.timeProvider.Now()

	year := req.Year
	month := time.Month(req.Month)

	// Без явного месяца открываем месяц выбранной даты черновика,
	// а если дата ещё не выбрана — текущий месяц
	if req.Year == 0 || req.Month == 0 {
		if !draft.Date.IsZero() {
			year = draft.Date.Year()
			month = draft.Date.Month()
		} else {
			year = today.Year()
			month = today.Month()
		}
	}

	grid := domain.MonthGrid(year, month)

	days := make([]Day, 0, len(grid))
	for _, cell := range grid {
		days = append(days, Day{
			Day:            cell.Day,
			Month:          cell.Month,
			Year:           cell.Year,
			IsCurrentMonth: cell.IsCurrentMonth,
			IsToday: cell.Day == today.Day() &&
				cell.Month == today.Month() &&
				cell.Year == today.Year(),
			IsSelectable: domain.IsSelectable(cell, today, uc.horizonMonth),
		})
	}

	uc.logger.Info("GetCalendar: draft=%s, month=%d-%02d, days=%d", req.DraftID, year, month, len(days))

	return &Response{
		Year:      year,
		Month:     month,
		Days:      days,
		CanGoPrev: domain.CanGoPrevMonth(year, month, today),
		CanGoNext: domain.CanGoNextMonth(year, month, today, uc.horizonMonth),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DraftID == "" {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	// Год и месяц задаются только парой
	if (req.Year == 0) != (req.Month == 0) {
		return fmt.Errorf("%w: year and month must be provided together", ErrInvalidInput)
	}

	if req.Month != 0 && (req.Month < 1 || req.Month > 12) {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	if req.Year != 0 && (req.Year < 2000 || req.Year > 2100) {
		return fmt.Errorf("%w: year is out of range", ErrInvalidInput)
	}

	return nil
}
