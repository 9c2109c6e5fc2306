package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("holiday already exists for this date")
	// ErrLookupFailed wraps calendar provider failures. It is propagated to
	// the caller instead of silently substituting an empty holiday list;
	// any fallback policy lives with the caller.
	ErrLookupFailed       = errors.New("holiday lookup failed")
	ErrInvalidRequestData = errors.New("invalid request data")
)
