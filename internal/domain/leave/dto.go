package leave

import (
	"github.com/ems-suite/ems-backend-go/internal/pkg/validator"
)

var leaveTypes = []string{"Casual Leave", "Sick Leave", "Annual Leave", "Unpaid Leave"}

type ApplyLeaveRequest struct {
	LeaveType string  `json:"leave_type"`
	Reason    *string `json:"reason,omitempty"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave type is required"})
	} else if !validator.IsInSlice(r.LeaveType, leaveTypes) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "unknown leave type"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must not be before start date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessLeaveRequest struct {
	ID     string `json:"-"`
	Status Status `json:"-"`
}

type LeaveFilter struct {
	EmployeeID *string
	Status     *Status
}

type LeaveResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	EmployeeCode   *string `json:"employee_code,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	LeaveType      string  `json:"leave_type"`
	Reason         *string `json:"reason,omitempty"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Status         string  `json:"status"`
	AppliedAt      string  `json:"applied_at"`
	ProcessedAt    *string `json:"processed_at,omitempty"`
}

func ToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:             l.ID,
		EmployeeID:     l.EmployeeID,
		EmployeeName:   l.EmployeeName,
		EmployeeCode:   l.EmployeeCode,
		DepartmentName: l.DepartmentName,
		LeaveType:      l.LeaveType,
		Reason:         l.Reason,
		StartDate:      l.StartDate.Format("2006-01-02"),
		EndDate:        l.EndDate.Format("2006-01-02"),
		Status:         string(l.Status),
		AppliedAt:      l.AppliedAt.Format("2006-01-02 15:04:05"),
	}
	if l.ProcessedAt != nil {
		p := l.ProcessedAt.Format("2006-01-02 15:04:05")
		resp.ProcessedAt = &p
	}
	return resp
}
