package domain

import "errors"

// Repository sentinel errors. Implementations wrap them, callers use errors.Is.
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("unique constraint violated")
)
