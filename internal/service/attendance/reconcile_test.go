package attendance

import (
	"testing"
	"time"

	"github.com/ems-suite/ems-backend-go/internal/domain/attendance"
	"github.com/ems-suite/ems-backend-go/internal/domain/employee"
	"github.com/ems-suite/ems-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testRoster() []employee.Employee {
	return []employee.Employee{
		{ID: "emp-1", EmployeeCode: "EMP-001", FullName: "Alice Chen", DepartmentName: strPtr("Engineering"), SectionName: strPtr("Backend")},
		{ID: "emp-2", EmployeeCode: "EMP-002", FullName: "Bob Singh", DepartmentName: strPtr("Engineering")},
		{ID: "emp-3", EmployeeCode: "EMP-003", FullName: "Carol Jones"},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReconcile_LeaveWinsOverSavedRecord(t *testing.T) {
	t.Parallel()
	date := day(2026, time.March, 10)

	leaves := []leave.LeaveRequest{
		{EmployeeID: "emp-1", Status: leave.StatusApproved, StartDate: day(2026, time.March, 9), EndDate: day(2026, time.March, 11)},
	}
	records := []attendance.AttendanceRecord{
		{EmployeeID: "emp-1", Date: date, Status: attendance.StatusPresent},
		{EmployeeID: "emp-2", Date: date, Status: attendance.StatusLate},
	}

	views := Reconcile(date, testRoster(), leaves, records)
	require.Len(t, views, 3)

	require.NotNil(t, views[0].LeaveStatus)
	assert.Equal(t, attendance.StatusOnLeave, *views[0].LeaveStatus)
	// The saved record still prefills the row even while leave takes
	// precedence for display.
	require.NotNil(t, views[0].SavedStatus)
	assert.Equal(t, attendance.StatusPresent, *views[0].SavedStatus)

	require.NotNil(t, views[1].SavedStatus)
	assert.Equal(t, attendance.StatusLate, *views[1].SavedStatus)
	assert.Nil(t, views[1].LeaveStatus)

	assert.Nil(t, views[2].LeaveStatus)
	assert.Nil(t, views[2].SavedStatus)
}

func TestReconcile_PendingLeaveDoesNotCount(t *testing.T) {
	t.Parallel()
	date := day(2026, time.March, 10)

	leaves := []leave.LeaveRequest{
		{EmployeeID: "emp-1", Status: leave.StatusPending, StartDate: date, EndDate: date},
		{EmployeeID: "emp-2", Status: leave.StatusRejected, StartDate: date, EndDate: date},
	}

	views := Reconcile(date, testRoster(), leaves, nil)
	for _, v := range views {
		assert.Nil(t, v.LeaveStatus, "employee %s should not be on leave", v.EmployeeID)
	}
}

func TestReconcile_RosterOrderAndFallbacks(t *testing.T) {
	t.Parallel()
	views := Reconcile(day(2026, time.March, 10), testRoster(), nil, nil)

	require.Len(t, views, 3)
	assert.Equal(t, "emp-1", views[0].EmployeeID)
	assert.Equal(t, "Backend", views[0].SectionName)
	assert.Equal(t, "Engineering", views[1].DepartmentName)
	assert.Equal(t, "", views[1].SectionName)
	assert.Equal(t, "Unassigned", views[2].DepartmentName)
}

func TestReconcile_EmptyInputs(t *testing.T) {
	t.Parallel()
	views := Reconcile(day(2026, time.March, 10), nil, nil, nil)
	assert.Empty(t, views)
}

func TestCommitRows_DropsOnLeaveAndUnknownEmployees(t *testing.T) {
	t.Parallel()
	date := day(2026, time.March, 10)

	leaves := []leave.LeaveRequest{
		{EmployeeID: "emp-2", Status: leave.StatusApproved, StartDate: date, EndDate: date},
	}
	statuses := map[string]string{
		"emp-1":   attendance.StatusPresent,
		"emp-2":   attendance.StatusAbsent, // on leave, dropped
		"emp-3":   attendance.StatusHalfDay,
		"ghost-9": attendance.StatusPresent, // not in roster, dropped
	}

	records := CommitRows(date, statuses, testRoster(), leaves, "admin-1")

	require.Len(t, records, 2)
	assert.Equal(t, "emp-1", records[0].EmployeeID)
	assert.Equal(t, attendance.StatusPresent, records[0].Status)
	assert.Equal(t, "emp-3", records[1].EmployeeID)
	assert.Equal(t, attendance.StatusHalfDay, records[1].Status)

	for _, rec := range records {
		assert.NotEmpty(t, rec.ID)
		assert.True(t, rec.Date.Equal(date))
		require.NotNil(t, rec.MarkedBy)
		assert.Equal(t, "admin-1", *rec.MarkedBy)
	}
}

func TestCommitRows_PartialSubmission(t *testing.T) {
	t.Parallel()
	date := day(2026, time.March, 10)

	records := CommitRows(date, map[string]string{"emp-2": attendance.StatusLate}, testRoster(), nil, "admin-1")

	require.Len(t, records, 1)
	assert.Equal(t, "emp-2", records[0].EmployeeID)
}

func TestCommitRows_AllOnLeave(t *testing.T) {
	t.Parallel()
	date := day(2026, time.March, 10)

	var leaves []leave.LeaveRequest
	for _, e := range testRoster() {
		leaves = append(leaves, leave.LeaveRequest{
			EmployeeID: e.ID, Status: leave.StatusApproved, StartDate: date, EndDate: date,
		})
	}
	statuses := map[string]string{
		"emp-1": attendance.StatusPresent,
		"emp-2": attendance.StatusPresent,
		"emp-3": attendance.StatusPresent,
	}

	records := CommitRows(date, statuses, testRoster(), leaves, "admin-1")
	assert.Empty(t, records)
}
