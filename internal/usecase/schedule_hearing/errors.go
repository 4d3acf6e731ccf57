package schedule_hearing

import "errors"

var (
	// ErrRequestNotFound is returned when the summon request does not exist
	ErrRequestNotFound = errors.New("schedule_hearing: summon request not found")

	// ErrRequestClosed is returned when the request is already resolved or closed
	ErrRequestClosed = errors.New("schedule_hearing: summon request is no longer schedulable")

	// ErrServiceNotFound is returned when the hearing track does not exist or is inactive
	ErrServiceNotFound = errors.New("schedule_hearing: service not found")

	// ErrSlotTaken is returned when the requested slot is unavailable
	ErrSlotTaken = errors.New("schedule_hearing: slot is not available")

	// ErrAlreadyScheduled is returned when the request already holds an active hearing
	ErrAlreadyScheduled = errors.New("schedule_hearing: request already has an active hearing")

	// ErrDateInPast is returned when the hearing date is in the past
	ErrDateInPast = errors.New("schedule_hearing: hearing date is in the past")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("schedule_hearing: invalid input data")

	// ErrSchedulingFailed is returned when a saga step failed after the slot was
	// reserved and compensation ran. The caller sees no partial state.
	ErrSchedulingFailed = errors.New("schedule_hearing: scheduling failed")

	// ErrInternal is returned on internal errors before any state changed
	ErrInternal = errors.New("schedule_hearing: internal error")
)
