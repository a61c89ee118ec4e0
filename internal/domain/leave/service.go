package leave

import "context"

// LeaveService defines business logic for leave applications and approval
type LeaveService interface {
	// Apply files a new leave request for the authenticated employee
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)

	// ListMy retrieves the authenticated employee's leave history
	ListMy(ctx context.Context) ([]LeaveResponse, error)

	// List retrieves leave requests with filters (admin)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, error)

	// Process approves or rejects a pending leave request (admin)
	Process(ctx context.Context, req ProcessLeaveRequest) (LeaveResponse, error)

	// PendingCount returns the number of leave requests awaiting a decision
	PendingCount(ctx context.Context) (int64, error)
}
