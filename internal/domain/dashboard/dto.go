package dashboard

// AdminSummaryResponse is the combined admin dashboard payload
type AdminSummaryResponse struct {
	Stats      OrgStats   `json:"stats"`
	LeaveStats LeaveStats `json:"leave_stats"`
}

// OrgStats contains organization-wide totals
type OrgStats struct {
	TotalDepartments int64 `json:"total_departments"`
	TotalSections    int64 `json:"total_sections"`
	TotalEmployees   int64 `json:"total_employees"`
}

// LeaveStats counts leave requests by status
type LeaveStats struct {
	Total    int64 `json:"total"`
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
	Rejected int64 `json:"rejected"`
}

// EmployeeSummaryResponse is the employee-facing dashboard payload
type EmployeeSummaryResponse struct {
	EmployeeCode string     `json:"employee_code"`
	Department   string     `json:"department"`
	LeaveStats   LeaveStats `json:"leave_stats"`
}
