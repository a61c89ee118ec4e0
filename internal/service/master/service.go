package master

import (
	"context"
	"fmt"

	"github.com/ems-suite/ems-backend-go/internal/domain/department"
	"github.com/ems-suite/ems-backend-go/internal/domain/section"
	"github.com/google/uuid"
)

// MasterService groups organizational reference data: departments and the
// sections under them.
type MasterService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, id string) error

	// Section operations
	CreateSection(ctx context.Context, req section.CreateSectionRequest) (section.SectionResponse, error)
	GetSection(ctx context.Context, id string) (section.SectionResponse, error)
	ListSections(ctx context.Context, departmentID *string) ([]section.SectionResponse, error)
	UpdateSection(ctx context.Context, req section.UpdateSectionRequest) error
	DeleteSection(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	sectionRepo    section.SectionRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	sectionRepo section.SectionRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		sectionRepo:    sectionRepo,
	}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	entity := department.Department{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.departmentRepo.Create(ctx, entity)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(created), nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	entity, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToResponse(entity), nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	entities, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, department.ToResponse(entity))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Description != nil {
		entity.Description = req.Description
	}

	return s.departmentRepo.Update(ctx, entity)
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	count, err := s.departmentRepo.CountEmployees(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count department employees: %w", err)
	}
	if count > 0 {
		return department.ErrDepartmentHasEmployees
	}

	return s.departmentRepo.Delete(ctx, id)
}

// ==================== SECTION OPERATIONS ====================

func (s *masterServiceImpl) CreateSection(ctx context.Context, req section.CreateSectionRequest) (section.SectionResponse, error) {
	if err := req.Validate(); err != nil {
		return section.SectionResponse{}, err
	}

	// Parent must exist before the insert so the caller gets a clear
	// not-found instead of a raw FK violation
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return section.SectionResponse{}, err
	}

	entity := section.Section{
		ID:           uuid.NewString(),
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
	}

	created, err := s.sectionRepo.Create(ctx, entity)
	if err != nil {
		return section.SectionResponse{}, err
	}

	return section.ToResponse(created), nil
}

func (s *masterServiceImpl) GetSection(ctx context.Context, id string) (section.SectionResponse, error) {
	entity, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return section.SectionResponse{}, err
	}
	return section.ToResponse(entity), nil
}

func (s *masterServiceImpl) ListSections(ctx context.Context, departmentID *string) ([]section.SectionResponse, error) {
	entities, err := s.sectionRepo.List(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	responses := make([]section.SectionResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, section.ToResponse(entity))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateSection(ctx context.Context, req section.UpdateSectionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity, err := s.sectionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return err
		}
		entity.DepartmentID = *req.DepartmentID
	}

	return s.sectionRepo.Update(ctx, entity)
}

func (s *masterServiceImpl) DeleteSection(ctx context.Context, id string) error {
	count, err := s.sectionRepo.CountEmployees(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count section employees: %w", err)
	}
	if count > 0 {
		return section.ErrSectionHasEmployees
	}

	return s.sectionRepo.Delete(ctx, id)
}
