package dashboard

import (
	"context"
	"fmt"

	"github.com/ems-suite/ems-backend-go/internal/domain/dashboard"
	"github.com/ems-suite/ems-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	employee.EmployeeRepository
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	employeeRepo employee.EmployeeRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepo,
		EmployeeRepository:  employeeRepo,
	}
}

// GetAdminSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetAdminSummary(ctx context.Context) (dashboard.AdminSummaryResponse, error) {
	var summary dashboard.AdminSummaryResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.DashboardRepository.GetOrgStats(gCtx)
		if err != nil {
			return err
		}
		summary.Stats = stats
		return nil
	})

	g.Go(func() error {
		stats, err := s.DashboardRepository.GetLeaveStats(gCtx, nil)
		if err != nil {
			return err
		}
		summary.LeaveStats = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.AdminSummaryResponse{}, err
	}

	return summary, nil
}

// GetMySummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetMySummary(ctx context.Context) (dashboard.EmployeeSummaryResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return dashboard.EmployeeSummaryResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return dashboard.EmployeeSummaryResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeSummaryResponse{}, err
	}

	stats, err := s.DashboardRepository.GetLeaveStats(ctx, &employeeID)
	if err != nil {
		return dashboard.EmployeeSummaryResponse{}, err
	}

	summary := dashboard.EmployeeSummaryResponse{
		EmployeeCode: emp.EmployeeCode,
		LeaveStats:   stats,
	}
	if emp.DepartmentName != nil {
		summary.Department = *emp.DepartmentName
	}
	return summary, nil
}
