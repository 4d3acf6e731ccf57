package allocator

import "errors"

// Conflict errors are expected, caller-correctable outcomes. Callers branch on
// them with errors.Is, they are never wrapped into opaque internal errors.
var (
	// ErrSlotTaken is returned when the slot is booked or unknown to the store
	ErrSlotTaken = errors.New("allocator: slot is not available")

	// ErrAlreadyScheduled is returned when the request already holds an active hearing
	ErrAlreadyScheduled = errors.New("allocator: request already has an active hearing")

	// ErrDateInPast is returned when the hearing date is before the current date
	ErrDateInPast = errors.New("allocator: hearing date is in the past")

	// ErrInvalidInput is returned on malformed reserve parameters
	ErrInvalidInput = errors.New("allocator: invalid input data")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("allocator: internal error")
)
