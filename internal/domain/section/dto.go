package section

import (
	"github.com/ems-suite/ems-backend-go/internal/pkg/validator"
)

type CreateSectionRequest struct {
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
}

func (r *CreateSectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "section name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSectionRequest struct {
	ID           string  `json:"-"`
	DepartmentID *string `json:"department_id,omitempty"`
	Name         *string `json:"name,omitempty"`
}

func (r *UpdateSectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "section name cannot be empty"})
	}
	if r.DepartmentID != nil && validator.IsEmpty(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SectionResponse struct {
	ID             string  `json:"id"`
	DepartmentID   string  `json:"department_id"`
	DepartmentName *string `json:"department_name,omitempty"`
	Name           string  `json:"name"`
}

func ToResponse(s Section) SectionResponse {
	return SectionResponse{
		ID:             s.ID,
		DepartmentID:   s.DepartmentID,
		DepartmentName: s.DepartmentName,
		Name:           s.Name,
	}
}
