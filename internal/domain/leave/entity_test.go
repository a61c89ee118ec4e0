package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeaveRequest_ActiveOn(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	approved := LeaveRequest{Status: StatusApproved, StartDate: start, EndDate: end}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"day before start", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), false},
		{"start boundary", start, true},
		{"middle", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), true},
		{"end boundary", end, true},
		{"day after end", time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, approved.ActiveOn(tc.date))
		})
	}
}

func TestLeaveRequest_ActiveOn_OnlyApprovedCounts(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	for _, status := range []Status{StatusPending, StatusRejected} {
		l := LeaveRequest{Status: status, StartDate: date, EndDate: date}
		assert.False(t, l.ActiveOn(date), "status %s must not keep an employee on leave", status)
	}
}

func TestLeaveRequest_ActiveOn_ComparesCalendarDays(t *testing.T) {
	t.Parallel()

	// Timestamps inside the boundary days must not shrink the range
	l := LeaveRequest{
		Status:    StatusApproved,
		StartDate: time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 12, 0, 15, 0, 0, time.UTC),
	}

	assert.True(t, l.ActiveOn(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)))
	assert.True(t, l.ActiveOn(time.Date(2026, 3, 12, 22, 0, 0, 0, time.UTC)))
	assert.False(t, l.ActiveOn(time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)))
}

func TestLeaveRequest_ActiveOn_EndBeforeStartNeverActive(t *testing.T) {
	t.Parallel()

	l := LeaveRequest{
		Status:    StatusApproved,
		StartDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	for d := 9; d <= 13; d++ {
		assert.False(t, l.ActiveOn(time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)))
	}
}
