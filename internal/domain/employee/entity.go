package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	UserID       string
	EmployeeCode string
	DepartmentID *string
	SectionID    *string
	Designation  *string
	Salary       *decimal.Decimal
	HireDate     *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	FullName       string
	Email          string
	DepartmentName *string
	SectionName    *string
}
