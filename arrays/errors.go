package arrays

import "errors"

var (
	// ErrInvalidArgument indicates that the input slice is nil or empty
	// where at least one element is required (e.g., FindMax).
	ErrInvalidArgument = errors.New("arrays: invalid argument: array is nil or empty")
)
