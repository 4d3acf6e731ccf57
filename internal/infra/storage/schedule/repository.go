package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/dbmetrics"
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/psqlbuilder"
)

// pgUniqueViolation is the postgres error code for unique constraint violations
const pgUniqueViolation = "23505"

var scheduleColumns = []string{
	"id",
	"request_id",
	"service_id",
	"hearing_date",
	"period",
	"mediation_level",
	"reason",
	"status",
	"is_rescheduled",
	"predecessor_id",
	"outcome",
	"idempotency_key",
	"service_name",
	"created_at",
	"updated_at",
}

// Repository persists summon schedule records
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new schedule repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new schedule record and fills in its ID and timestamps
func (r *Repository) Create(ctx context.Context, s *domain.SummonSchedule) (*domain.SummonSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("summon_schedules").
		Columns(
			"request_id",
			"service_id",
			"hearing_date",
			"period",
			"mediation_level",
			"reason",
			"status",
			"is_rescheduled",
			"predecessor_id",
			"idempotency_key",
			"service_name",
		).
		Values(
			s.RequestID,
			s.ServiceID,
			s.HearingDate,
			s.Period,
			s.MediationLevel,
			s.Reason,
			s.Status,
			s.IsRescheduled,
			s.PredecessorID,
			s.IdempotencyKey,
			s.ServiceName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID reads one schedule record by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SummonSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("summon_schedules").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := r.scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetActiveByRequestID reads the active (slot-holding) schedule of a request,
// if any. Inside a transaction the row is locked with FOR UPDATE so the
// one-active-hearing-per-case rule cannot race with a concurrent booking.
func (r *Repository) GetActiveByRequestID(ctx context.Context, requestID int64) (*domain.SummonSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("summon_schedules").
		Where(squirrel.Eq{
			"request_id": requestID,
			"status":     domain.ScheduleStatusActive,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByRequestID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := r.scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByRequestID - scan schedule: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetByRequestID reads the full schedule history of a request, newest first.
// Superseded and void records are included, history is never hidden.
func (r *Repository) GetByRequestID(ctx context.Context, requestID int64) ([]*domain.SummonSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("summon_schedules").
		Where(squirrel.Eq{"request_id": requestID}).
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequestID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequestID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.SummonSchedule, 0)
	for rows.Next() {
		s, err := r.scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByRequestID - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByRequestID - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// MarkSuperseded marks an active schedule as replaced by a newer record
func (r *Repository) MarkSuperseded(ctx context.Context, id int64) error {
	return r.setStatus(ctx, "MarkSuperseded", id, domain.ScheduleStatusSuperseded, nil)
}

// MarkTerminal marks an active schedule as closed with the given outcome
func (r *Repository) MarkTerminal(ctx context.Context, id int64, outcome domain.HearingOutcome) error {
	return r.setStatus(ctx, "MarkTerminal", id, domain.ScheduleStatusClosed, &outcome)
}

// Void marks a schedule created by a failed saga. The record stays for audit.
func (r *Repository) Void(ctx context.Context, id int64) error {
	return r.setStatus(ctx, "Void", id, domain.ScheduleStatusVoid, nil)
}

func (r *Repository) setStatus(ctx context.Context, op string, id int64, status domain.ScheduleStatus, outcome *domain.HearingOutcome) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("summon_schedules").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if outcome != nil {
		updateBuilder = updateBuilder.Set("outcome", *outcome)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSchedule(row rowScanner) (*domain.SummonSchedule, error) {
	var s domain.SummonSchedule
	var predecessorID sql.NullInt64
	var outcome sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.RequestID,
		&s.ServiceID,
		&s.HearingDate,
		&s.Period,
		&s.MediationLevel,
		&s.Reason,
		&s.Status,
		&s.IsRescheduled,
		&predecessorID,
		&outcome,
		&s.IdempotencyKey,
		&s.ServiceName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if predecessorID.Valid {
		s.PredecessorID = &predecessorID.Int64
	}
	if outcome.Valid {
		o := domain.HearingOutcome(outcome.String)
		s.Outcome = &o
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
