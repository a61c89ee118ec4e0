package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetAdminSummary returns organization totals plus leave stats
	GetAdminSummary(ctx context.Context) (AdminSummaryResponse, error)

	// GetMySummary returns the authenticated employee's dashboard data
	GetMySummary(ctx context.Context) (EmployeeSummaryResponse, error)
}
