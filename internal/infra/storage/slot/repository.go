package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/dbmetrics"
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/psqlbuilder"
)

// Repository is the weekly schedule store. It owns the weekly_slots table and
// is mutated only through the allocator service.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new slot repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSlot reads one slot by its (date, service, period) triple.
// Inside a transaction the row is locked with FOR UPDATE, so the allocator's
// re-validation and conditional write see a stable state.
func (r *Repository) GetSlot(ctx context.Context, key domain.SlotKey) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"slot_date",
		"service_id",
		"period",
		"booked",
		"updated_at",
	).
		From("weekly_slots").
		Where(squirrel.Eq{
			"slot_date":  key.Date,
			"service_id": key.ServiceID,
			"period":     key.Period,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlot - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.Date,
		&s.ServiceID,
		&s.Period,
		&s.Booked,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlot - scan slot: %v", ErrScanRow, err)
	}

	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// EnsureDay idempotently initializes all slots of one date as unbooked.
// Existing rows are left untouched.
func (r *Repository) EnsureDay(ctx context.Context, date time.Time, serviceIDs []int64) error {
	if len(serviceIDs) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("weekly_slots").
		Columns("slot_date", "service_id", "period", "booked")

	for _, serviceID := range serviceIDs {
		for _, period := range domain.Periods {
			insertBuilder = insertBuilder.Values(date, serviceID, period, false)
		}
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (slot_date, service_id, period) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: EnsureDay - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: EnsureDay - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// MarkBooked atomically flips one unbooked slot to booked. The WHERE clause on
// the booked flag makes this a compare-and-swap: of two concurrent callers
// exactly one update matches a row, the other gets ErrSlotTaken.
func (r *Repository) MarkBooked(ctx context.Context, key domain.SlotKey) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("weekly_slots").
		Set("booked", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"slot_date":  key.Date,
			"service_id": key.ServiceID,
			"period":     key.Period,
			"booked":     false,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotTaken
	}

	return nil
}

// Release sets a slot back to unbooked. Releasing an already free slot matches
// zero rows and is not an error, which makes release safe to retry.
func (r *Repository) Release(ctx context.Context, key domain.SlotKey) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("weekly_slots").
		Set("booked", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"slot_date":  key.Date,
			"service_id": key.ServiceID,
			"period":     key.Period,
			"booked":     true,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// GetRange reads all slots with slot_date in [from, to] ordered for grid assembly
func (r *Repository) GetRange(ctx context.Context, from, to time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"slot_date",
		"service_id",
		"period",
		"booked",
		"updated_at",
	).
		From("weekly_slots").
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.LtOrEq{"slot_date": to}).
		OrderBy("slot_date ASC, service_id ASC, period ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var s domain.Slot
		var updatedAt sql.NullTime

		if err := rows.Scan(&s.Date, &s.ServiceID, &s.Period, &s.Booked, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetRange - scan row: %v", ErrScanRow, err)
		}

		s.UpdatedAt = updatedAt.Time
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRange - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
