package report

import (
	"testing"

	"github.com/ems-suite/ems-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
)

func insightGrid() report.AttendanceGrid {
	return report.AttendanceGrid{
		Mode: report.ModeMonthRange,
		Groups: []report.DepartmentGroup{
			{
				Department: "Engineering",
				Rows: []report.GridRow{
					{EmployeeID: "emp-1", EmployeeCode: "EMP-001", Name: "Alice Chen", Cells: map[int]string{
						1: "Present", 2: "Present", 3: "Half Day", 4: "On Leave", 5: "Late",
					}},
					{EmployeeID: "emp-3", EmployeeCode: "EMP-003", Name: "Carol Jones", Cells: map[int]string{
						1: "Absent", 2: "Present",
					}},
				},
			},
			{
				Department: "Sales",
				Rows: []report.GridRow{
					{EmployeeID: "emp-2", EmployeeCode: "EMP-002", Name: "Bob Singh", Cells: map[int]string{
						1: "Present",
					}},
				},
			},
		},
	}
}

func TestSummarize_All(t *testing.T) {
	t.Parallel()

	summary := Summarize(insightGrid(), report.InsightFilter{Kind: report.FilterAll})

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 4, summary.Present)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 1, summary.HalfLeave)
	assert.Equal(t, 1, summary.FullLeave)
}

func TestSummarize_LateCountsNoBucket(t *testing.T) {
	t.Parallel()

	grid := report.AttendanceGrid{Groups: []report.DepartmentGroup{{
		Department: "Ops",
		Rows: []report.GridRow{
			{Name: "Eve", Cells: map[int]string{1: "Late", 2: "Late"}},
		},
	}}}

	summary := Summarize(grid, report.InsightFilter{Kind: report.FilterAll})

	assert.Equal(t, 1, summary.Total)
	assert.Zero(t, summary.Present)
	assert.Zero(t, summary.Absent)
	assert.Zero(t, summary.HalfLeave)
	assert.Zero(t, summary.FullLeave)
}

func TestSummarize_HalfDayIsNotPresent(t *testing.T) {
	t.Parallel()

	grid := report.AttendanceGrid{Groups: []report.DepartmentGroup{{
		Department: "Ops",
		Rows: []report.GridRow{
			{Name: "Eve", Cells: map[int]string{1: "Half Day"}},
		},
	}}}

	summary := Summarize(grid, report.InsightFilter{Kind: report.FilterAll})
	assert.Equal(t, 1, summary.HalfLeave)
	assert.Zero(t, summary.Present)
	assert.Zero(t, summary.FullLeave, "Half Day contains 'half', not a full leave")
}

func TestSummarize_DepartmentFilterSubstringCaseInsensitive(t *testing.T) {
	t.Parallel()

	summary := Summarize(insightGrid(), report.InsightFilter{Kind: report.FilterDepartment, Query: "engineer"})
	assert.Equal(t, 2, summary.Total)

	summary = Summarize(insightGrid(), report.InsightFilter{Kind: report.FilterDepartment, Query: "SALES"})
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Present)
}

func TestSummarize_EmployeeFilterMatchesNameOrCode(t *testing.T) {
	t.Parallel()

	summary := Summarize(insightGrid(), report.InsightFilter{Kind: report.FilterEmployee, Query: "alice"})
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 2, summary.Present)

	summary = Summarize(insightGrid(), report.InsightFilter{Kind: report.FilterEmployee, Query: "emp-002"})
	assert.Equal(t, 1, summary.Total)
}

func TestSummarize_NoMatchIsZeroedNotError(t *testing.T) {
	t.Parallel()

	summary := Summarize(insightGrid(), report.InsightFilter{Kind: report.FilterDepartment, Query: "warehouse"})
	assert.Equal(t, report.InsightSummary{}, summary)
}

func TestSummarize_GridReusableAcrossFilters(t *testing.T) {
	t.Parallel()

	grid := insightGrid()
	_ = Summarize(grid, report.InsightFilter{Kind: report.FilterDepartment, Query: "engineering"})
	after := Summarize(grid, report.InsightFilter{Kind: report.FilterAll})

	assert.Equal(t, 3, after.Total, "summarizing must not mutate the grid")
	assert.Equal(t, 4, after.Present)
}
