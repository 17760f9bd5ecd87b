package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	sessionRepo "github.com/m04kA/SLN-BookingFlow/internal/infra/storage/session"
)

// NextStep решение шлюза сессии на шаге подтверждения даты/времени
type NextStep string

const (
	// StepProceed пользователь авторизован, можно отправлять бронирование
	StepProceed NextStep = "proceed"

	// StepGuestOrSignIn пользователь не авторизован: показываем выбор
	// "продолжить как гость" или "войти". После входа флоу возобновляется
	// с тем же черновиком
	StepGuestOrSignIn NextStep = "guest_or_signin"
)

// Service шлюз сессии: решает, пускать ли флоу дальше без авторизации
type Service struct {
	sessionRepo  SessionRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр шлюза сессии
func NewService(sessionRepo SessionRepository, logger Logger) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Resolve возвращает сессию по bearer токену
// Пустой токен, неизвестный токен или истёкшая сессия — это не ошибка,
// а неавторизованный пользователь: возвращается (nil, nil)
func (s *Service) Resolve(ctx context.Context, token string) (*domain.UserSession, error) {
	if token == "" {
		return nil, nil
	}

	sess, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, nil
		}
		s.logger.Error("Resolve: failed to get session: %v", err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	if sess.IsExpired(s.timeProvider.Now()) {
		s.logger.Info("Resolve: session expired for user=%d", sess.UserID)
		return nil, nil
	}

	return sess, nil
}

// Logout завершает сессию по bearer токену
// Повторный logout и неизвестный токен не считаются ошибкой
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil
		}
		s.logger.Error("Logout: failed to delete session: %v", err)
		return fmt.Errorf("%w: failed to delete session: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: session terminated")
	return nil
}

// DecideNextStep чистое решение шага подтверждения:
// авторизован — продолжаем, нет — выбор гость/вход
func (s *Service) DecideNextStep(isAuthenticated bool) NextStep {
	if isAuthenticated {
		return StepProceed
	}
	return StepGuestOrSignIn
}
