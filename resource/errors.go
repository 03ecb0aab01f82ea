package resource

import (
	"errors"
	"fmt"
)

// ErrExceedsLimit is returned when a reservation does not fit under the configured limit.
var ErrExceedsLimit = errors.New("resource: request exceeds limit")

// LimitError reports a rejected reservation.
type LimitError struct {
	Requested int64
	// InUse is the memory already reserved when the request was made.
	InUse int64
	Limit int64
}

func (e *LimitError) Error() string {
	if e.InUse > 0 {
		return fmt.Sprintf("resource: requested %d bytes with %d in use, limit is %d", e.Requested, e.InUse, e.Limit)
	}
	return fmt.Sprintf("resource: requested %d bytes, limit is %d", e.Requested, e.Limit)
}

func (e *LimitError) Unwrap() error {
	return ErrExceedsLimit
}
