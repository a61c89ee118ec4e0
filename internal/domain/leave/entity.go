package leave

import "time"

type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveType   string
	Reason      *string
	StartDate   time.Time
	EndDate     time.Time
	Status      Status
	AppliedAt   time.Time
	ProcessedBy *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName   *string
	EmployeeCode   *string
	DepartmentName *string
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ActiveOn reports whether this request keeps the employee on leave for the
// given calendar day: only Approved requests count, and the comparison is on
// calendar dates, not instants. A request with end before start is never
// active.
func (l LeaveRequest) ActiveOn(date time.Time) bool {
	if l.Status != StatusApproved {
		return false
	}
	d := toCalendarDay(date)
	start := toCalendarDay(l.StartDate)
	end := toCalendarDay(l.EndDate)
	if end.Before(start) {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

func toCalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
