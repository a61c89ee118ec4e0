package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for saved attendance records
type AttendanceRepository interface {
	// ListByDate retrieves every record saved for a calendar date
	ListByDate(ctx context.Context, date time.Time) ([]AttendanceRecord, error)

	// ListByMonth retrieves every record whose date falls in the given month
	ListByMonth(ctx context.Context, month int, year int) ([]AttendanceRecord, error)

	// ExistsForDate reports whether any record exists for the date. This is
	// the day-lock probe.
	ExistsForDate(ctx context.Context, date time.Time) (bool, error)

	// SaveDay commits records for one date. The implementation must make
	// "first writer wins" atomic: inside one transaction it serializes
	// writers on the date, re-checks the lock and only then upserts. A
	// second writer gets ErrDayLocked and leaves stored rows untouched.
	SaveDay(ctx context.Context, date time.Time, records []AttendanceRecord) error
}
