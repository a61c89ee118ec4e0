package report

import (
	"strings"
	"time"

	"github.com/ems-suite/ems-backend-go/internal/domain/attendance"
	"github.com/ems-suite/ems-backend-go/internal/domain/employee"
	"github.com/ems-suite/ems-backend-go/internal/domain/report"
)

// BuildGrid assembles the department-grouped day grid for the request window
// from the roster and the window's saved records. It is a pure function of
// its inputs: rebuilding from the same snapshots yields the same grid.
// Departments appear in roster first-seen order; employees without one fall
// under "Unassigned". A day with no record for an employee has no cell entry,
// which stays distinct from an explicit Absent.
func BuildGrid(req report.HistoryRequest, roster []employee.Employee, records []attendance.AttendanceRecord) report.AttendanceGrid {
	grid := report.AttendanceGrid{
		Mode: req.Mode,
	}

	switch req.Mode {
	case report.ModeSingleDate:
		grid.Date = req.Date
		if d, err := time.Parse("2006-01-02", req.Date); err == nil {
			grid.Days = []int{d.Day()}
		}
	case report.ModeMonthRange:
		grid.Month = req.Month
		grid.Year = req.Year
		// Day zero of the next month is the last day of this one, so
		// February lengths track leap years for free.
		last := time.Date(req.Year, time.Month(req.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
		grid.Days = make([]int, 0, last)
		for day := 1; day <= last; day++ {
			grid.Days = append(grid.Days, day)
		}
	}

	cells := make(map[string]map[int]string)
	for _, rec := range records {
		if cells[rec.EmployeeID] == nil {
			cells[rec.EmployeeID] = make(map[int]string)
		}
		cells[rec.EmployeeID][rec.Date.Day()] = rec.Status
	}

	groupIndex := make(map[string]int)
	for _, e := range roster {
		dept := "Unassigned"
		if e.DepartmentName != nil && *e.DepartmentName != "" {
			dept = *e.DepartmentName
		}

		idx, ok := groupIndex[dept]
		if !ok {
			idx = len(grid.Groups)
			groupIndex[dept] = idx
			grid.Groups = append(grid.Groups, report.DepartmentGroup{Department: dept})
		}

		row := report.GridRow{
			EmployeeID:   e.ID,
			EmployeeCode: e.EmployeeCode,
			Name:         e.FullName,
			Cells:        cells[e.ID],
		}
		if row.Cells == nil {
			row.Cells = map[int]string{}
		}
		if req.Mode == report.ModeMonthRange {
			for _, status := range row.Cells {
				if status == attendance.StatusPresent {
					row.TotalPresent++
				}
			}
		}

		grid.Groups[idx].Rows = append(grid.Groups[idx].Rows, row)
	}

	return grid
}

// Summarize counts the filtered slice of a grid. It never mutates the grid,
// so one fetched grid can be summarized under any number of filters.
// Matching is case-insensitive substring containment; status cells are
// bucketed by the first keyword that hits, checked present, absent, half,
// leave in that order. A status matching none of them ("Late") counts toward
// no bucket, and an empty result is a valid all-zero summary.
func Summarize(grid report.AttendanceGrid, filter report.InsightFilter) report.InsightSummary {
	query := strings.ToLower(filter.Query)

	var summary report.InsightSummary
	for _, group := range grid.Groups {
		if filter.Kind == report.FilterDepartment && !strings.Contains(strings.ToLower(group.Department), query) {
			continue
		}
		for _, row := range group.Rows {
			if filter.Kind == report.FilterEmployee &&
				!strings.Contains(strings.ToLower(row.Name), query) &&
				!strings.Contains(strings.ToLower(row.EmployeeCode), query) {
				continue
			}

			summary.Total++
			for _, status := range row.Cells {
				switch s := strings.ToLower(status); {
				case strings.Contains(s, "present"):
					summary.Present++
				case strings.Contains(s, "absent"):
					summary.Absent++
				case strings.Contains(s, "half"):
					summary.HalfLeave++
				case strings.Contains(s, "leave"):
					summary.FullLeave++
				}
			}
		}
	}

	return summary
}
