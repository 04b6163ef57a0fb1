package internaltypes

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	// ErrRequestFailed covers non-2xx responses and transport failures.
	ErrRequestFailed = errors.New("request failed")

	// ErrValidationBlocked means a required field is missing, so the step does not advance.
	ErrValidationBlocked = errors.New("required fields missing")

	ErrIllegalTransition = errors.New("illegal step transition")
)
