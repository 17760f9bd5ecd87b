package draft

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	"github.com/m04kA/SLN-BookingFlow/pkg/dbmetrics"
	"github.com/m04kA/SLN-BookingFlow/pkg/psqlbuilder"
)

// Repository репозиторий черновиков бронирования
// Черновик хранится в БД, чтобы флоу переживал уход на авторизацию
// и возвращение в приложение: потеря черновика на этом пути — дефект
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var draftColumns = []string{
	"id",
	"user_id",
	"branch_id",
	"branch_name",
	"staff_id",
	"staff_name",
	"services",
	"booking_date",
	"start_time",
	"coupon_id",
	"coupon_code",
	"referral_code",
	"use_credit",
	"created_at",
	"updated_at",
}

// Create сохраняет новый черновик
func (r *Repository) Create(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	servicesJSON, err := encodeServices(d.Services)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("booking_drafts").
		Columns(
			"id",
			"user_id",
			"branch_id",
			"branch_name",
			"staff_id",
			"staff_name",
			"services",
			"booking_date",
			"start_time",
			"coupon_id",
			"coupon_code",
			"referral_code",
			"use_credit",
		).
		Values(
			d.ID,
			d.UserID,
			branchID(d),
			branchName(d),
			staffID(d),
			staffName(d),
			servicesJSON,
			nullableDate(d.Date),
			d.Time,
			d.CouponID,
			d.CouponCode,
			d.ReferralCode,
			d.UseCredit,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// GetByID получает черновик по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(draftColumns...).
		From("booking_drafts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanDraft(executor.QueryRowContext(ctx, query, args...))
}

// Update перезаписывает все поля выбора черновика
// Вызывается внутри сериализуемой транзакции drafts-сервиса (read-modify-write)
func (r *Repository) Update(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	servicesJSON, err := encodeServices(d.Services)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Update("booking_drafts").
		Set("user_id", d.UserID).
		Set("branch_id", branchID(d)).
		Set("branch_name", branchName(d)).
		Set("staff_id", staffID(d)).
		Set("staff_name", staffName(d)).
		Set("services", servicesJSON).
		Set("booking_date", nullableDate(d.Date)).
		Set("start_time", d.Time).
		Set("coupon_id", d.CouponID).
		Set("coupon_code", d.CouponCode).
		Set("referral_code", d.ReferralCode).
		Set("use_credit", d.UseCredit).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": d.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	d.UpdatedAt = updatedAt.Time
	return d, nil
}

// Delete удаляет черновик (после успешной отправки или выхода из флоу)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_drafts").
		Where(squirrel.Eq{"id": id}).
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
		return ErrDraftNotFound
	}

	return nil
}

// DeleteExpired удаляет черновики, не обновлявшиеся с указанного момента
// Используется фоновой очисткой брошенных флоу
func (r *Repository) DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_drafts").
		Where(squirrel.Lt{"updated_at": olderThan}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanDraft(row rowScanner) (*domain.BookingDraft, error) {
	var (
		d            domain.BookingDraft
		branchIDVal  sql.NullInt64
		branchName   sql.NullString
		staffIDVal   sql.NullInt64
		staffName    sql.NullString
		servicesJSON []byte
		bookingDate  sql.NullTime
		couponCode   sql.NullString
		referralCode sql.NullString
		createdAt    sql.NullTime
		updatedAt    sql.NullTime
	)

	err := row.Scan(
		&d.ID,
		&d.UserID,
		&branchIDVal,
		&branchName,
		&staffIDVal,
		&staffName,
		&servicesJSON,
		&bookingDate,
		&d.Time,
		&d.CouponID,
		&couponCode,
		&referralCode,
		&d.UseCredit,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan draft: %v", ErrScanRow, err)
	}

	if branchIDVal.Valid {
		d.Branch = &domain.Branch{ID: branchIDVal.Int64, Name: branchName.String}
	}
	if staffIDVal.Valid {
		d.Staff = &domain.Staff{ID: staffIDVal.Int64, FullName: staffName.String}
	}
	if len(servicesJSON) > 0 {
		if err := json.Unmarshal(servicesJSON, &d.Services); err != nil {
			return nil, fmt.Errorf("%w: decode services: %v", ErrScanRow, err)
		}
	}
	if bookingDate.Valid {
		d.Date = bookingDate.Time
	}
	if couponCode.Valid {
		d.CouponCode = &couponCode.String
	}
	if referralCode.Valid {
		d.ReferralCode = &referralCode.String
	}
	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}

func encodeServices(services []domain.Service) ([]byte, error) {
	// Колонка services объявлена как jsonb NOT NULL: пустой выбор
	// кодируем как пустой массив, nil туда записать нельзя
	if len(services) == 0 {
		return []byte("[]"), nil
	}
	data, err := json.Marshal(services)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeServices, err)
	}
	return data, nil
}

func nullableDate(date time.Time) interface{} {
	if date.IsZero() {
		return nil
	}
	return date
}

func branchID(d *domain.BookingDraft) interface{} {
	if d.Branch == nil {
		return nil
	}
	return d.Branch.ID
}

func branchName(d *domain.BookingDraft) interface{} {
	if d.Branch == nil {
		return nil
	}
	return d.Branch.Name
}

func staffID(d *domain.BookingDraft) interface{} {
	if d.Staff == nil {
		return nil
	}
	return d.Staff.ID
}

func staffName(d *domain.BookingDraft) interface{} {
	if d.Staff == nil {
		return nil
	}
	return d.Staff.FullName
}
