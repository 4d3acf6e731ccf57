package reschedule_hearing

import "errors"

var (
	// ErrScheduleNotFound is returned when the old schedule does not exist
	ErrScheduleNotFound = errors.New("reschedule_hearing: schedule not found")

	// ErrNotActive is returned when the old schedule is superseded or terminal
	ErrNotActive = errors.New("reschedule_hearing: schedule is not active")

	// ErrServiceNotFound is returned when the new hearing track does not exist
	ErrServiceNotFound = errors.New("reschedule_hearing: service not found")

	// ErrSlotTaken is returned when the new slot is unavailable
	ErrSlotTaken = errors.New("reschedule_hearing: slot is not available")

	// ErrDateInPast is returned when the new hearing date is in the past
	ErrDateInPast = errors.New("reschedule_hearing: hearing date is in the past")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("reschedule_hearing: invalid input data")

	// ErrSchedulingFailed is returned when the handover failed after the new slot
	// was reserved and compensation ran. The old schedule is untouched.
	ErrSchedulingFailed = errors.New("reschedule_hearing: reschedule failed")

	// ErrInternal is returned on internal errors before any state changed
	ErrInternal = errors.New("reschedule_hearing: internal error")
)
