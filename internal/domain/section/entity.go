package section

import "time"

type Section struct {
	ID           string
	DepartmentID string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	DepartmentName *string
}
