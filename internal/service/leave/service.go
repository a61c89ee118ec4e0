package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ems-suite/ems-backend-go/internal/domain/leave"
	"github.com/ems-suite/ems-backend-go/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	hub    *sse.Hub
	logger *slog.Logger
}

func NewLeaveService(leaveRepo leave.LeaveRepository, hub *sse.Hub, logger *slog.Logger) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepo,
		hub:             hub,
		logger:          logger,
	}
}

func employeeIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// notifyPendingCount pushes the fresh pending total to dashboard listeners.
// Failures only log: the cron refresher will catch up.
func (s *LeaveServiceImpl) notifyPendingCount(ctx context.Context) {
	if s.hub == nil || s.hub.SubscriberCount() == 0 {
		return
	}
	count, err := s.LeaveRepository.CountByStatus(ctx, leave.StatusPending)
	if err != nil {
		s.logger.Warn("failed to count pending leaves for broadcast", slog.Any("error", err))
		return
	}
	s.hub.Broadcast(sse.Event{
		Event: "pending_leaves",
		Data:  map[string]int64{"pending": count},
	})
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if endDate.Before(startDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	entity := leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		Reason:     req.Reason,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     leave.StatusPending,
		AppliedAt:  time.Now(),
	}

	created, err := s.LeaveRepository.Create(ctx, entity)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.notifyPendingCount(ctx)

	return leave.ToResponse(created), nil
}

// ListMy implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMy(ctx context.Context) ([]leave.LeaveResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	entities, err := s.LeaveRepository.List(ctx, leave.LeaveFilter{EmployeeID: &employeeID})
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, leave.ToResponse(entity))
	}
	return responses, nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	entities, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, leave.ToResponse(entity))
	}
	return responses, nil
}

// Process implements leave.LeaveService.
func (s *LeaveServiceImpl) Process(ctx context.Context, req leave.ProcessLeaveRequest) (leave.LeaveResponse, error) {
	if req.Status != leave.StatusApproved && req.Status != leave.StatusRejected {
		return leave.LeaveResponse{}, fmt.Errorf("status must be Approved or Rejected")
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	processedBy, ok := claims["user_id"].(string)
	if !ok || processedBy == "" {
		return leave.LeaveResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	if err := s.LeaveRepository.UpdateStatus(ctx, req.ID, req.Status, processedBy); err != nil {
		return leave.LeaveResponse{}, err
	}

	entity, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.notifyPendingCount(ctx)

	return leave.ToResponse(entity), nil
}

// PendingCount implements leave.LeaveService.
func (s *LeaveServiceImpl) PendingCount(ctx context.Context) (int64, error) {
	return s.LeaveRepository.CountByStatus(ctx, leave.StatusPending)
}
