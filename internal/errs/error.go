package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrNoTableAvailable: no table in inventory satisfies the request.
	ErrNoTableAvailable = errors.New("no table available for the requested date and time")

	// ErrTableTaken: the uniqueness guard rejected the insert; the allocator
	// may retry selection against a fresh snapshot.
	ErrTableTaken = errors.New("table already reserved for this slot")

	// ErrConflict: a concurrent request won the race and the bounded retry
	// also failed.
	ErrConflict = errors.New("reservation conflicts with a concurrent booking")

	// ErrStoreTimeout: the backing store missed its deadline.
	ErrStoreTimeout = errors.New("reservation store timed out")
)

// ValidationError reports the first failing field of a booking request.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
