package get_weekly_availability

import "errors"

var (
	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("get_weekly_availability: invalid input data")

	// ErrInternal is returned on internal errors
	ErrInternal = errors.New("get_weekly_availability: internal error")
)
