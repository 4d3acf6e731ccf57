package hearings

import "errors"

var (
	// ErrScheduleNotFound is returned when the hearing schedule is not found
	ErrScheduleNotFound = errors.New("hearing schedule not found")

	// ErrRequestNotFound is returned when the summon request is not found
	ErrRequestNotFound = errors.New("summon request not found")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("hearings service: internal error")
)
