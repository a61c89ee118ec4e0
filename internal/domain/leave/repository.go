package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, l LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List retrieves leave requests with employee details joined
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, error)

	UpdateStatus(ctx context.Context, id string, status Status, processedBy string) error
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
