package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	"github.com/m04kA/SLN-BookingFlow/pkg/dbmetrics"
	"github.com/m04kA/SLN-BookingFlow/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнителя запросов (см. dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий пользовательских сессий (bearer token -> user)
// Сессии создаются внешним сервисом авторизации, здесь они только читаются
// для решения guest-or-signin и пишутся при logout
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByToken получает сессию по bearer токену
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.UserSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"token",
		"user_id",
		"full_name",
		"phone",
		"country",
		"created_at",
		"expires_at",
	).
		From("user_sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s         domain.UserSession
		createdAt sql.NullTime
		expiresAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.Token,
		&s.UserID,
		&s.FullName,
		&s.Phone,
		&s.Country,
		&createdAt,
		&expiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan session: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.ExpiresAt = expiresAt.Time

	return &s, nil
}

// Delete удаляет сессию (logout)
func (r *Repository) Delete(ctx context.Context, token string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("user_sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}
