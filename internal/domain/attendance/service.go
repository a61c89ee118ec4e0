package attendance

import (
	"context"
	"time"
)

// AttendanceService defines daily attendance operations
type AttendanceService interface {
	// DailyView reconciles the roster, approved leaves and saved records
	// into the per-employee sheet for one date, plus the day lock state
	DailyView(ctx context.Context, date time.Time) (DailyViewResponse, error)

	// MarkDay commits a status map for one date; fails with ErrDayLocked
	// when the date already has records
	MarkDay(ctx context.Context, req MarkDayRequest) (MarkDayResponse, error)
}
