package close_hearing

import "errors"

var (
	// ErrScheduleNotFound is returned when the schedule does not exist
	ErrScheduleNotFound = errors.New("close_hearing: schedule not found")

	// ErrNotActive is returned when the schedule is superseded or already terminal
	ErrNotActive = errors.New("close_hearing: schedule is not active")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("close_hearing: invalid input data")

	// ErrInternal is returned on internal errors
	ErrInternal = errors.New("close_hearing: internal error")
)
