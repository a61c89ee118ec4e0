package report

import (
	"testing"
	"time"

	"github.com/ems-suite/ems-backend-go/internal/domain/attendance"
	"github.com/ems-suite/ems-backend-go/internal/domain/employee"
	"github.com/ems-suite/ems-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func gridRoster() []employee.Employee {
	return []employee.Employee{
		{ID: "emp-1", EmployeeCode: "EMP-001", FullName: "Alice Chen", DepartmentName: strPtr("Engineering")},
		{ID: "emp-2", EmployeeCode: "EMP-002", FullName: "Bob Singh", DepartmentName: strPtr("Sales")},
		{ID: "emp-3", EmployeeCode: "EMP-003", FullName: "Carol Jones", DepartmentName: strPtr("Engineering")},
		{ID: "emp-4", EmployeeCode: "EMP-004", FullName: "Dan Field"},
	}
}

func monthReq(month, year int) report.HistoryRequest {
	return report.HistoryRequest{Mode: report.ModeMonthRange, Month: month, Year: year}
}

func TestBuildGrid_MonthDays(t *testing.T) {
	t.Parallel()

	grid := BuildGrid(monthReq(2, 2024), nil, nil)
	assert.Len(t, grid.Days, 29, "February 2024 is a leap month")

	grid = BuildGrid(monthReq(2, 2023), nil, nil)
	assert.Len(t, grid.Days, 28)

	grid = BuildGrid(monthReq(12, 2025), nil, nil)
	require.Len(t, grid.Days, 31)
	assert.Equal(t, 1, grid.Days[0])
	assert.Equal(t, 31, grid.Days[30])
}

func TestBuildGrid_SingleDateMode(t *testing.T) {
	t.Parallel()

	req := report.HistoryRequest{Mode: report.ModeSingleDate, Date: "2026-03-15"}
	records := []attendance.AttendanceRecord{
		{EmployeeID: "emp-1", Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent},
	}

	grid := BuildGrid(req, gridRoster(), records)

	assert.Equal(t, []int{15}, grid.Days)
	assert.Equal(t, "2026-03-15", grid.Date)

	row := grid.Groups[0].Rows[0]
	assert.Equal(t, attendance.StatusPresent, row.Cells[15])
	assert.Zero(t, row.TotalPresent, "present total is a month-mode column")
}

func TestBuildGrid_GroupsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	grid := BuildGrid(monthReq(3, 2026), gridRoster(), nil)

	require.Len(t, grid.Groups, 3)
	assert.Equal(t, "Engineering", grid.Groups[0].Department)
	assert.Equal(t, "Sales", grid.Groups[1].Department)
	assert.Equal(t, "Unassigned", grid.Groups[2].Department)

	require.Len(t, grid.Groups[0].Rows, 2)
	assert.Equal(t, "emp-1", grid.Groups[0].Rows[0].EmployeeID)
	assert.Equal(t, "emp-3", grid.Groups[0].Rows[1].EmployeeID)
}

func TestBuildGrid_TotalPresentCountsExactMatchesOnly(t *testing.T) {
	t.Parallel()

	records := []attendance.AttendanceRecord{
		{EmployeeID: "emp-1", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent},
		{EmployeeID: "emp-1", Date: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent},
		{EmployeeID: "emp-1", Date: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), Status: attendance.StatusHalfDay},
		{EmployeeID: "emp-1", Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), Status: attendance.StatusLate},
		{EmployeeID: "emp-1", Date: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC), Status: attendance.StatusOnLeave},
	}

	grid := BuildGrid(monthReq(3, 2026), gridRoster(), records)

	row := grid.Groups[0].Rows[0]
	assert.Equal(t, 2, row.TotalPresent)
	assert.Len(t, row.Cells, 5)

	// Day without a record has no map entry
	_, ok := row.Cells[7]
	assert.False(t, ok)
}

func TestBuildGrid_Idempotent(t *testing.T) {
	t.Parallel()

	records := []attendance.AttendanceRecord{
		{EmployeeID: "emp-2", Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAbsent},
	}

	first := BuildGrid(monthReq(3, 2026), gridRoster(), records)
	second := BuildGrid(monthReq(3, 2026), gridRoster(), records)
	assert.Equal(t, first, second)
}

func TestBuildGrid_EmptyRoster(t *testing.T) {
	t.Parallel()

	grid := BuildGrid(monthReq(3, 2026), nil, nil)
	assert.Empty(t, grid.Groups)
	assert.Len(t, grid.Days, 31)
}
