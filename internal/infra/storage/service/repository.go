package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/dbmetrics"
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/psqlbuilder"
)

// Reuse the dbmetrics executor interface for database access
type DBExecutor = dbmetrics.DBExecutor

// Repository reads the bookable services reference data
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new service repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID reads one service by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"name",
		"active",
		"created_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Code,
		&svc.Name,
		&svc.Active,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	svc.CreatedAt = createdAt.Time

	return &svc, nil
}

// GetActive reads all active services ordered by ID
func (r *Repository) GetActive(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"name",
		"active",
		"created_at",
	).
		From("services").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		var createdAt sql.NullTime

		if err := rows.Scan(&svc.ID, &svc.Code, &svc.Name, &svc.Active, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetActive - scan row: %v", ErrScanRow, err)
		}

		svc.CreatedAt = createdAt.Time
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActive - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
