package section

import "context"

type SectionRepository interface {
	Create(ctx context.Context, s Section) (Section, error)
	GetByID(ctx context.Context, id string) (Section, error)
	List(ctx context.Context, departmentID *string) ([]Section, error)
	Update(ctx context.Context, s Section) error
	Delete(ctx context.Context, id string) error
	CountEmployees(ctx context.Context, id string) (int64, error)
}
