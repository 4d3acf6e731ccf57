package caseservice

import "errors"

var (
	// ErrRequestNotFound is returned when the summon request does not exist
	ErrRequestNotFound = errors.New("caseservice client: request not found")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("caseservice client: internal error")

	// ErrInvalidResponse is returned when the case service responds unexpectedly
	ErrInvalidResponse = errors.New("caseservice client: invalid response")
)
