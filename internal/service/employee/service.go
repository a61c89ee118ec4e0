package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/ems-suite/ems-backend-go/internal/domain/employee"
	"github.com/ems-suite/ems-backend-go/internal/domain/user"
	"github.com/ems-suite/ems-backend-go/internal/pkg/database"
	"github.com/ems-suite/ems-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
}

func NewEmployeeService(
	db *database.DB,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		UserRepository:     userRepo,
		EmployeeRepository: employeeRepo,
	}
}

// Create implements employee.EmployeeService. The login account and the
// employee record are created in one transaction so a failed employee insert
// never leaves an orphaned user.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	newEmployee := employee.Employee{
		ID:           uuid.NewString(),
		EmployeeCode: req.EmployeeCode,
		DepartmentID: req.DepartmentID,
		SectionID:    req.SectionID,
		Designation:  req.Designation,
		IsActive:     true,
	}
	if req.Salary != nil {
		salary, err := decimal.NewFromString(*req.Salary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse salary: %w", err)
		}
		newEmployee.Salary = &salary
	}
	if req.HireDate != nil {
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
		}
		newEmployee.HireDate = &hireDate
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		createdUser, err := s.UserRepository.Create(txCtx, user.User{
			ID:           uuid.NewString(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: &passwordHash,
			Role:         user.RoleEmployee,
		})
		if err != nil {
			return err
		}

		newEmployee.UserID = createdUser.ID
		newEmployee.FullName = createdUser.Name
		newEmployee.Email = createdUser.Email

		created, err := s.EmployeeRepository.Create(txCtx, newEmployee)
		if err != nil {
			return err
		}
		newEmployee.CreatedAt = created.CreatedAt
		newEmployee.UpdatedAt = created.UpdatedAt
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(newEmployee), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	entity, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(entity), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	entities, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, employee.ToResponse(entity))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	entity, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DepartmentID != nil {
		entity.DepartmentID = req.DepartmentID
	}
	if req.SectionID != nil {
		entity.SectionID = req.SectionID
	}
	if req.Designation != nil {
		entity.Designation = req.Designation
	}
	if req.Salary != nil {
		salary, err := decimal.NewFromString(*req.Salary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse salary: %w", err)
		}
		entity.Salary = &salary
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if req.Name != nil {
			if err := s.UserRepository.UpdateName(txCtx, entity.UserID, *req.Name); err != nil {
				return err
			}
			entity.FullName = *req.Name
		}
		return s.EmployeeRepository.Update(txCtx, entity)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(entity), nil
}

// Delete implements employee.EmployeeService. Deleting the user cascades to
// the employee row, attendance and leave history.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	entity, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.EmployeeRepository.Delete(txCtx, id); err != nil {
			return err
		}
		return s.UserRepository.Delete(txCtx, entity.UserID)
	})
}
