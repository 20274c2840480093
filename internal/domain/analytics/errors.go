package analytics

import "errors"

var (
	// ErrMalformedRecord marks a task or leave entry missing a field that
	// cannot be defaulted. Such records are skipped with a warning, never
	// fatal to the calculation.
	ErrMalformedRecord = errors.New("record is missing a required field")
)
