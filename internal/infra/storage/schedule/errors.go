package schedule

import "errors"

var (
	// ErrScheduleNotFound is returned when the schedule record does not exist
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrDuplicateKey is returned when a schedule with the same idempotency key exists
	ErrDuplicateKey = errors.New("schedule.repository: duplicate idempotency key")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
