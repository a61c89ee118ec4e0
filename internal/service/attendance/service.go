package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/ems-suite/ems-backend-go/internal/domain/attendance"
	"github.com/ems-suite/ems-backend-go/internal/domain/employee"
	"github.com/ems-suite/ems-backend-go/internal/domain/leave"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	leave.LeaveRepository
}

// DailyView implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DailyView(ctx context.Context, date time.Time) (attendance.DailyViewResponse, error) {
	var (
		roster  []employee.Employee
		leaves  []leave.LeaveRequest
		records []attendance.AttendanceRecord
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		roster, err = a.EmployeeRepository.List(gCtx, employee.EmployeeFilter{ActiveOnly: true})
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		approved := leave.StatusApproved
		var err error
		leaves, err = a.LeaveRepository.List(gCtx, leave.LeaveFilter{Status: &approved})
		if err != nil {
			return fmt.Errorf("failed to list approved leaves: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		records, err = a.AttendanceRepository.ListByDate(gCtx, date)
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return attendance.DailyViewResponse{}, err
	}

	return attendance.DailyViewResponse{
		Date:      date.Format("2006-01-02"),
		Locked:    len(records) > 0,
		Employees: Reconcile(date, roster, leaves, records),
	}, nil
}

// MarkDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkDay(ctx context.Context, req attendance.MarkDayRequest) (attendance.MarkDayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkDayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.MarkDayResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.MarkDayResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	markedBy, ok := claims["user_id"].(string)
	if !ok || markedBy == "" {
		return attendance.MarkDayResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	roster, err := a.EmployeeRepository.List(ctx, employee.EmployeeFilter{ActiveOnly: true})
	if err != nil {
		return attendance.MarkDayResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	// Leave state is re-read at commit time so an approval that landed
	// after the sheet was loaded still drops the employee from the save.
	approved := leave.StatusApproved
	leaves, err := a.LeaveRepository.List(ctx, leave.LeaveFilter{Status: &approved})
	if err != nil {
		return attendance.MarkDayResponse{}, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	records := CommitRows(date, req.Statuses, roster, leaves, markedBy)
	if len(records) == 0 {
		return attendance.MarkDayResponse{}, attendance.ErrNothingToSave
	}

	if err := a.AttendanceRepository.SaveDay(ctx, date, records); err != nil {
		return attendance.MarkDayResponse{}, err
	}

	return attendance.MarkDayResponse{
		Date:  req.Date,
		Saved: len(records),
	}, nil
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		LeaveRepository:      leaveRepo,
	}
}
