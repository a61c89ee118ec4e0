package attendance

import (
	"time"

	"github.com/ems-suite/ems-backend-go/internal/domain/attendance"
	"github.com/ems-suite/ems-backend-go/internal/domain/employee"
	"github.com/ems-suite/ems-backend-go/internal/domain/leave"
	"github.com/google/uuid"
)

// Reconcile merges the active roster, approved leave requests and the day's
// saved records into per-employee rows, in roster order. An active leave
// wins over everything else for that employee; a saved record only prefills
// the row, it never overrides leave.
func Reconcile(date time.Time, roster []employee.Employee, leaves []leave.LeaveRequest, records []attendance.AttendanceRecord) []attendance.EmployeeDayView {
	onLeave := leaveSet(date, leaves)

	saved := make(map[string]string, len(records))
	for _, rec := range records {
		saved[rec.EmployeeID] = rec.Status
	}

	views := make([]attendance.EmployeeDayView, 0, len(roster))
	for _, e := range roster {
		view := attendance.EmployeeDayView{
			EmployeeID:     e.ID,
			EmployeeCode:   e.EmployeeCode,
			Name:           e.FullName,
			DepartmentName: derefOr(e.DepartmentName, "Unassigned"),
			SectionName:    derefOr(e.SectionName, ""),
		}
		if onLeave[e.ID] {
			status := attendance.StatusOnLeave
			view.LeaveStatus = &status
		}
		if status, ok := saved[e.ID]; ok {
			view.SavedStatus = &status
		}
		views = append(views, view)
	}

	return views
}

// CommitRows turns a submitted status map into records ready to save,
// walking the roster so output order is stable. Entries for employees on
// approved leave for the date, or absent from the roster, are dropped.
func CommitRows(date time.Time, statuses map[string]string, roster []employee.Employee, leaves []leave.LeaveRequest, markedBy string) []attendance.AttendanceRecord {
	onLeave := leaveSet(date, leaves)

	var records []attendance.AttendanceRecord
	for _, e := range roster {
		status, ok := statuses[e.ID]
		if !ok || onLeave[e.ID] {
			continue
		}
		records = append(records, attendance.AttendanceRecord{
			ID:         uuid.NewString(),
			EmployeeID: e.ID,
			Date:       date,
			Status:     status,
			MarkedBy:   &markedBy,
		})
	}

	return records
}

func leaveSet(date time.Time, leaves []leave.LeaveRequest) map[string]bool {
	set := make(map[string]bool, len(leaves))
	for _, l := range leaves {
		if l.ActiveOn(date) {
			set[l.EmployeeID] = true
		}
	}
	return set
}

func derefOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
