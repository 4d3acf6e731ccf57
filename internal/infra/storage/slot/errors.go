package slot

import "errors"

var (
	// ErrSlotNotFound is returned when the (date, service, period) triple has no row.
	// An absent slot is treated as unavailable, never as implicitly bookable.
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotTaken is returned when the conditional reserve matched no unbooked row
	ErrSlotTaken = errors.New("slot.repository: slot already booked")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
