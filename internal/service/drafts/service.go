package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	draftRepo "github.com/m04kA/SLN-BookingFlow/internal/infra/storage/draft"
	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
	"github.com/m04kA/SLN-BookingFlow/internal/service/drafts/models"
	"github.com/m04kA/SLN-BookingFlow/pkg/types"
)

// Service сервис жизненного цикла черновика бронирования
// Шаги выбора образуют цепочку branch -> staff -> services -> date -> time:
// изменение раннего шага сбрасывает всё, что выбрано после него
type Service struct {
	draftRepo    DraftRepository
	salonClient  SalonAPIClient
	txManager    TransactionManager
	invalidator  FlowInvalidator
	timeProvider TimeProvider
	horizonMonth time.Month
	logger       Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(
	draftRepo DraftRepository,
	salonClient SalonAPIClient,
	txManager TransactionManager,
	invalidator FlowInvalidator,
	horizonMonth time.Month,
	logger Logger,
) *Service {
	return &Service{
		draftRepo:    draftRepo,
		salonClient:  salonClient,
		txManager:    txManager,
		invalidator:  invalidator,
		timeProvider: &RealTimeProvider{},
		horizonMonth: horizonMonth,
		logger:       logger,
	}
}

// Create начинает новый флоу бронирования
// userID привязывается, если запрос пришёл с валидной сессией
func (s *Service) Create(ctx context.Context, userID *int64) (*models.DraftResponse, error) {
	d := &domain.BookingDraft{
		ID:     uuid.New().String(),
		UserID: userID,
	}

	created, err := s.draftRepo.Create(ctx, d)
	if err != nil {
		s.logger.Error("Create: failed to create draft: %v", err)
		return nil, fmt.Errorf("%w: failed to create draft: %v", ErrInternal, err)
	}

	s.logger.Info("Create: draft created id=%s, user=%v", created.ID, userID)
	return models.FromDomainDraft(created), nil
}

// Get возвращает текущее состояние черновика
func (s *Service) Get(ctx context.Context, id string) (*models.DraftResponse, error) {
	d, err := s.getDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainDraft(d), nil
}

// Delete удаляет черновик при выходе из флоу
// Состояние resolver'а занятости сбрасывается: после ухода с экрана
// даты/времени ни один фоновый запрос не должен обновлять данные флоу
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.draftRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return ErrDraftNotFound
		}
		s.logger.Error("Delete: failed to delete draft id=%s: %v", id, err)
		return fmt.Errorf("%w: failed to delete draft: %v", ErrInternal, err)
	}

	s.invalidator.Invalidate(id)
	s.logger.Info("Delete: draft deleted id=%s", id)
	return nil
}

// CleanupExpired удаляет брошенные черновики старше ttl
func (s *Service) CleanupExpired(ctx context.Context, ttl time.Duration) (int64, error) {
	deleted, err := s.draftRepo.DeleteExpired(ctx, s.timeProvider.Now().Add(-ttl))
	if err != nil {
		s.logger.Error("CleanupExpired: %v", err)
		return 0, fmt.Errorf("%w: failed to cleanup drafts: %v", ErrInternal, err)
	}
	if deleted > 0 {
		s.logger.Info("CleanupExpired: removed %d abandoned drafts", deleted)
	}
	return deleted, nil
}

// SelectBranch выбирает филиал и сбрасывает мастера, услуги, дату и время
func (s *Service) SelectBranch(ctx context.Context, draftID string, branch domain.Branch) (*models.DraftResponse, error) {
	if branch.ID <= 0 {
		return nil, fmt.Errorf("%w: branch id must be positive", ErrInvalidInput)
	}
	if branch.Name == "" {
		return nil, fmt.Errorf("%w: branch name is required", ErrInvalidInput)
	}

	return s.mutate(ctx, draftID, func(d *domain.BookingDraft) error {
		d.SelectBranch(branch)
		return nil
	})
}

// SelectStaff выбирает мастера, проверяя его наличие в филиале через API салона
func (s *Service) SelectStaff(ctx context.Context, draftID string, staffID int64) (*models.DraftResponse, error) {
	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staff id must be positive", ErrInvalidInput)
	}

	d, err := s.getDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if d.Branch == nil {
		return nil, ErrBranchNotSelected
	}

	employees, err := s.salonClient.GetEmployees(ctx, d.Branch.ID)
	if err != nil {
		return nil, s.salonError("SelectStaff", err)
	}

	var staff *domain.Staff
	for _, e := range employees {
		if e.ID == staffID {
			staff = &domain.Staff{ID: e.ID, FullName: e.FullName}
			break
		}
	}
	if staff == nil {
		s.logger.Warn("SelectStaff: staff id=%d not found in branch id=%d", staffID, d.Branch.ID)
		return nil, ErrStaffNotFound
	}

	return s.mutate(ctx, draftID, func(d *domain.BookingDraft) error {
		if d.Branch == nil {
			return ErrBranchNotSelected
		}
		d.SelectStaff(*staff)
		return nil
	})
}

// ToggleService добавляет услугу или убирает её при повторном выборе
// Данные услуги (длительность, цена) берутся из API салона, не от клиента
func (s *Service) ToggleService(ctx context.Context, draftID string, serviceID int64) (*models.DraftResponse, error) {
	if serviceID <= 0 {
		return nil, fmt.Errorf("%w: service id must be positive", ErrInvalidInput)
	}

	d, err := s.getDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if d.Branch == nil {
		return nil, ErrBranchNotSelected
	}
	if d.Staff == nil {
		return nil, ErrStaffNotSelected
	}

	svc, err := s.findService(ctx, d.Branch.ID, serviceID)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, draftID, func(d *domain.BookingDraft) error {
		if d.Staff == nil {
			return ErrStaffNotSelected
		}
		if !d.HasService(serviceID) && len(d.Services) >= domain.MaxServicesPerDraft {
			return ErrTooManyServices
		}
		d.ToggleService(*svc)
		// Выбор услуг меняет тариф занятости: дата и время сбрасываются
		d.Date = time.Time{}
		d.Time = ""
		return nil
	})
}

// SelectDate выбирает дату и всегда сбрасывает выбранное время:
// занятость для новой даты ещё не известна
func (s *Service) SelectDate(ctx context.Context, draftID string, date time.Time) (*models.DraftResponse, error) {
	today := s.timeProvider.Now()
	day := domain.CalendarDay{
		Day:            date.Day(),
		Month:          date.Month(),
		Year:           date.Year(),
		IsCurrentMonth: true,
	}
	if !domain.IsSelectable(day, today, s.horizonMonth) {
		s.logger.Warn("SelectDate: date %s is not selectable (today=%s, horizon=%s)",
			date.Format(domain.DateFormat), today.Format(domain.DateFormat), s.horizonMonth)
		return nil, ErrDateNotSelectable
	}

	return s.mutate(ctx, draftID, func(d *domain.BookingDraft) error {
		if len(d.Services) == 0 {
			return ErrNoServicesSelected
		}
		d.SelectDate(date)
		return nil
	})
}

// SelectTime выбирает время начала (24-часовой формат "HH:MM")
func (s *Service) SelectTime(ctx context.Context, draftID string, slot types.TimeString) (*models.DraftResponse, error) {
	if err := slot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.mutate(ctx, draftID, func(d *domain.BookingDraft) error {
		if d.Date.IsZero() {
			return ErrDateNotSelected
		}
		d.SelectTime(slot)
		return nil
	})
}

// SetExtras устанавливает опциональные поля: купон, реферальный код, баллы
func (s *Service) SetExtras(ctx context.Context, draftID string, extras models.Extras) (*models.DraftResponse, error) {
	return s.mutate(ctx, draftID, func(d *domain.BookingDraft) error {
		if extras.CouponID != nil {
			d.CouponID = extras.CouponID
		}
		if extras.CouponCode != nil {
			d.CouponCode = extras.CouponCode
		}
		if extras.ReferralCode != nil {
			d.ReferralCode = extras.ReferralCode
		}
		if extras.UseCredit != nil {
			d.UseCredit = *extras.UseCredit
		}
		return nil
	})
}

// mutate выполняет read-modify-write черновика в сериализуемой транзакции
func (s *Service) mutate(ctx context.Context, draftID string, fn func(d *domain.BookingDraft) error) (*models.DraftResponse, error) {
	var result *domain.BookingDraft

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		d, err := s.draftRepo.GetByID(txCtx, draftID)
		if err != nil {
			if errors.Is(err, draftRepo.ErrDraftNotFound) {
				return ErrDraftNotFound
			}
			return fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
		}

		if err := fn(d); err != nil {
			return err
		}

		updated, err := s.draftRepo.Update(txCtx, d)
		if err != nil {
			return fmt.Errorf("%w: failed to update draft: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return models.FromDomainDraft(result), nil
}

func (s *Service) getDraft(ctx context.Context, id string) (*domain.BookingDraft, error) {
	d, err := s.draftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		s.logger.Error("getDraft: failed to get draft id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}
	return d, nil
}

func (s *Service) findService(ctx context.Context, branchID, serviceID int64) (*domain.Service, error) {
	categories, err := s.salonClient.GetEmployeeServices(ctx, branchID)
	if err != nil {
		return nil, s.salonError("findService", err)
	}

	for _, cat := range categories {
		for _, svc := range cat.Services {
			if svc.ID == serviceID {
				return &domain.Service{
					ID:              svc.ID,
					Name:            svc.Name,
					DurationMinutes: svc.DurationMin,
					Price:           svc.Price,
				}, nil
			}
		}
	}

	s.logger.Warn("findService: service id=%d not found in branch id=%d", serviceID, branchID)
	return nil, ErrServiceNotFound
}

func (s *Service) salonError(op string, err error) error {
	if errors.Is(err, salonapi.ErrUnavailable) {
		s.logger.Error("%s: salon api unavailable: %v", op, err)
		return fmt.Errorf("%w: %v", ErrSalonUnavailable, err)
	}
	s.logger.Error("%s: salon api error: %v", op, err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
