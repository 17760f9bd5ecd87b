package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
)

// Service отдает справочники салона: мастеров и услуги филиала
// Данные не кэшируются: экраны выбора всегда видят актуальное состояние
type Service struct {
	salonClient SalonAPIClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(salonClient SalonAPIClient, logger Logger) *Service {
	return &Service{
		salonClient: salonClient,
		logger:      logger,
	}
}

// ListStaff возвращает мастеров филиала
func (s *Service) ListStaff(ctx context.Context, branchID int64) ([]salonapi.Employee, error) {
	if branchID <= 0 {
		return nil, fmt.Errorf("%w: branch id must be positive", ErrInvalidInput)
	}

	employees, err := s.salonClient.GetEmployees(ctx, branchID)
	if err != nil {
		return nil, s.mapError("ListStaff", branchID, err)
	}

	s.logger.Info("ListStaff: fetched %d employees for branch=%d", len(employees), branchID)
	return employees, nil
}

// ListServices возвращает категории услуг филиала
func (s *Service) ListServices(ctx context.Context, branchID int64) ([]salonapi.ServiceCategory, error) {
	if branchID <= 0 {
		return nil, fmt.Errorf("%w: branch id must be positive", ErrInvalidInput)
	}

	categories, err := s.salonClient.GetEmployeeServices(ctx, branchID)
	if err != nil {
		return nil, s.mapError("ListServices", branchID, err)
	}

	s.logger.Info("ListServices: fetched %d categories for branch=%d", len(categories), branchID)
	return categories, nil
}

func (s *Service) mapError(op string, branchID int64, err error) error {
	switch {
	case errors.Is(err, salonapi.ErrUnavailable):
		s.logger.Error("%s: salon api unavailable for branch=%d: %v", op, branchID, err)
		return fmt.Errorf("%w: %v", ErrSalonUnavailable, err)
	case errors.Is(err, salonapi.ErrRejected):
		s.logger.Warn("%s: rejected for branch=%d: %v", op, branchID, err)
		return fmt.Errorf("%w: %v", ErrBranchRejected, err)
	default:
		s.logger.Error("%s: salon api error for branch=%d: %v", op, branchID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
