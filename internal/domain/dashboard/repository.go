package dashboard

import "context"

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// GetOrgStats returns department/section/employee totals in a single query
	GetOrgStats(ctx context.Context) (OrgStats, error)

	// GetLeaveStats returns leave counts by status, optionally scoped to one
	// employee
	GetLeaveStats(ctx context.Context, employeeID *string) (LeaveStats, error)
}
