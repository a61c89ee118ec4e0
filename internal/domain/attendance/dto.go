package attendance

import (
	"github.com/ems-suite/ems-backend-go/internal/pkg/validator"
)

// EmployeeDayView is one roster row of the reconciled daily sheet.
// LeaveStatus and SavedStatus are nil when absent; LeaveStatus wins over
// everything else when set.
type EmployeeDayView struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeCode   string  `json:"employee_code"`
	Name           string  `json:"name"`
	DepartmentName string  `json:"department_name"`
	SectionName    string  `json:"section_name"`
	LeaveStatus    *string `json:"leave_status,omitempty"`
	SavedStatus    *string `json:"saved_status,omitempty"`
}

type DailyViewResponse struct {
	Date      string            `json:"date"`
	Locked    bool              `json:"locked"`
	Employees []EmployeeDayView `json:"employees"`
}

type MarkDayRequest struct {
	Date     string            `json:"date"`
	Statuses map[string]string `json:"statuses"`
}

func (r *MarkDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}

	if len(r.Statuses) == 0 {
		errs = append(errs, validator.ValidationError{Field: "statuses", Message: "at least one employee status is required"})
	}
	for employeeID, status := range r.Statuses {
		if !validator.IsInSlice(status, MarkableStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "statuses." + employeeID,
				Message: "status must be one of Present, Absent, Half Day, Late",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkDayResponse struct {
	Date  string `json:"date"`
	Saved int    `json:"saved"`
}
