package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, code string) (Employee, error)

	// List retrieves employees with user, department and section names joined
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)

	Update(ctx context.Context, e Employee) error
	Delete(ctx context.Context, id string) error
}
