package attendance

import "time"

// AttendanceRecord is one saved status per (employee, date). The repository
// upserts on that pair, so at most one row ever exists for it.
type AttendanceRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     string
	MarkedBy   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Attendance statuses as stored and rendered
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusHalfDay = "Half Day"
	StatusLate    = "Late"
	StatusOnLeave = "On Leave"
)

// MarkableStatuses are the values an admin may assign by hand. "On Leave" is
// excluded: it is always derived from an approved leave request, never typed.
var MarkableStatuses = []string{StatusPresent, StatusAbsent, StatusHalfDay, StatusLate}
