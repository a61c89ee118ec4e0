package postgresql

import (
	"context"
	"fmt"

	"github.com/ems-suite/ems-backend-go/internal/domain/dashboard"
	"github.com/ems-suite/ems-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetOrgStats implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetOrgStats(ctx context.Context) (dashboard.OrgStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM departments),
			(SELECT COUNT(*) FROM sections),
			(SELECT COUNT(*) FROM employees WHERE is_active = TRUE)
	`

	var stats dashboard.OrgStats
	err := q.QueryRow(ctx, query).Scan(&stats.TotalDepartments, &stats.TotalSections, &stats.TotalEmployees)
	if err != nil {
		return dashboard.OrgStats{}, fmt.Errorf("failed to get org stats: %w", err)
	}
	return stats, nil
}

// GetLeaveStats implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetLeaveStats(ctx context.Context, employeeID *string) (dashboard.LeaveStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'Approved'),
			   COUNT(*) FILTER (WHERE status = 'Pending'),
			   COUNT(*) FILTER (WHERE status = 'Rejected')
		FROM leave_requests
	`
	var args []any
	if employeeID != nil {
		query += ` WHERE employee_id = $1`
		args = append(args, *employeeID)
	}

	var stats dashboard.LeaveStats
	err := q.QueryRow(ctx, query, args...).Scan(&stats.Total, &stats.Approved, &stats.Pending, &stats.Rejected)
	if err != nil {
		return dashboard.LeaveStats{}, fmt.Errorf("failed to get leave stats: %w", err)
	}
	return stats, nil
}
