package draft

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	"github.com/m04kA/SMC-MentorBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-MentorBooking/pkg/psqlbuilder"
)

// Repository репозиторий черновиков бронирования в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает черновик менти.
// Внутри пишущей транзакции строка блокируется (FOR UPDATE), чтобы параллельные запросы одного менти шли последовательно.
// В транзакции только для чтения строка читается без блокировки.
func (r *Repository) Get(ctx context.Context, menteeID string) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"mentee_id": menteeID})

	if dbmetrics.IsInTransaction(ctx) && !dbmetrics.IsReadOnly(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var row draftRow
	err = executor.QueryRowContext(ctx, query, args...).Scan(row.scanTargets()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("%w: Get - scan row: %v", ErrScanRow, err)
	}

	return row.toDomain()
}

// Save создает или полностью перезаписывает черновик менти.
// created_at сохраняется при перезаписи, updated_at выставляет БД.
func (r *Repository) Save(ctx context.Context, draft *domain.BookingDraft) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	row, err := toRow(draft)
	if err != nil {
		return err
	}

	updatable := columns[1 : len(columns)-2] // без mentee_id, created_at, updated_at
	set := make([]string, 0, len(updatable)+1)
	for _, c := range updatable {
		set = append(set, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
	}
	set = append(set, "updated_at = now()")

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(columns[:len(columns)-2]...).
		Values(
			row.MenteeID,
			jsonParam(row.Mentor),
			string(row.Availability),
			row.SelectedDate,
			row.SelectedTime,
			row.Topic,
			row.Notes,
			row.Timezone,
			row.DurationMinutes,
			row.TotalPrice,
			row.Step,
			row.DateWindowDays,
			row.SessionID,
			row.Error,
			row.IdempotencyKey,
		).
		Suffix("ON CONFLICT (mentee_id) DO UPDATE SET " + strings.Join(set, ", ") + " RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	draft.CreatedAt = createdAt.Time
	draft.UpdatedAt = updatedAt.Time

	return nil
}

// Delete удаляет черновик менти
func (r *Repository) Delete(ctx context.Context, menteeID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"mentee_id": menteeID}).
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

// DeleteExpired удаляет черновики, не обновлявшиеся с момента before. Возвращает количество удаленных.
func (r *Repository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Lt{"updated_at": before}).
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

// jsonParam lib/pq передает []byte как bytea, поэтому JSONB уходит строкой
func jsonParam(raw []byte) interface{} {
	if raw == nil {
		return nil
	}
	return string(raw)
}
