package department

import "time"

type Department struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	SectionCount  *int64
	EmployeeCount *int64
}
