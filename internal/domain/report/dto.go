package report

import (
	"fmt"
	"time"

	"github.com/ems-suite/ems-backend-go/internal/pkg/validator"
)

type GridMode string

const (
	ModeSingleDate GridMode = "date"
	ModeMonthRange GridMode = "month"
)

// HistoryRequest selects the reporting window: either one exact date or a
// whole month.
type HistoryRequest struct {
	Mode  GridMode `json:"mode"`
	Date  string   `json:"date,omitempty"`
	Month int      `json:"month,omitempty"`
	Year  int      `json:"year,omitempty"`
}

func (r *HistoryRequest) Validate() error {
	var errs validator.ValidationErrors

	switch r.Mode {
	case ModeSingleDate:
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
	case ModeMonthRange:
		if r.Month < 1 || r.Month > 12 {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
		}
		currentYear := time.Now().Year()
		if r.Year < 2000 || r.Year > currentYear+1 {
			errs = append(errs, validator.ValidationError{Field: "year", Message: fmt.Sprintf("year must be between 2000 and %d", currentYear+1)})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "mode", Message: "mode must be 'date' or 'month'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GridRow is one employee's day-by-day line. Cells maps day-of-month to the
// stored status; a day with no record has no map entry, which readers must
// keep distinct from Absent.
type GridRow struct {
	EmployeeID   string         `json:"employee_id"`
	EmployeeCode string         `json:"employee_code"`
	Name         string         `json:"name"`
	Cells        map[int]string `json:"cells"`
	TotalPresent int            `json:"total_present"`
}

// DepartmentGroup holds the rows of one department in roster order
type DepartmentGroup struct {
	Department string    `json:"department"`
	Rows       []GridRow `json:"rows"`
}

// AttendanceGrid is the department-grouped day-by-day table for one window.
// Groups keep first-seen insertion order; it is rebuilt per request and
// never persisted.
type AttendanceGrid struct {
	Mode   GridMode          `json:"mode"`
	Date   string            `json:"date,omitempty"`
	Month  int               `json:"month,omitempty"`
	Year   int               `json:"year,omitempty"`
	Days   []int             `json:"days"`
	Groups []DepartmentGroup `json:"groups"`
}

type FilterKind string

const (
	FilterAll        FilterKind = "all"
	FilterDepartment FilterKind = "department"
	FilterEmployee   FilterKind = "employee"
)

// InsightFilter selects grid rows for summarization. Query matching is
// case-insensitive substring containment.
type InsightFilter struct {
	Kind  FilterKind `json:"kind"`
	Query string     `json:"query,omitempty"`
}

func (f *InsightFilter) Validate() error {
	var errs validator.ValidationErrors

	switch f.Kind {
	case FilterAll:
	case FilterDepartment, FilterEmployee:
		if validator.IsEmpty(f.Query) {
			errs = append(errs, validator.ValidationError{Field: "query", Message: "query is required for this filter"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "filter", Message: "filter must be 'all', 'department' or 'employee'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// InsightSummary counts matched employees and their day-cells by status
// keyword. All-zero is the valid "no data" answer, not an error.
type InsightSummary struct {
	Total     int `json:"total"`
	Present   int `json:"present"`
	Absent    int `json:"absent"`
	HalfLeave int `json:"half_leave"`
	FullLeave int `json:"full_leave"`
}
