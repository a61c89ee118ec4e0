package attendance

import "errors"

var (
	// ErrDayLocked means attendance for the date was already committed.
	// Locking is per day, not per employee: one saved record freezes the
	// whole date.
	ErrDayLocked = errors.New("attendance for this date is already saved and locked")

	ErrNothingToSave = errors.New("no attendance entries to save")
)
