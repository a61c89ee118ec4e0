package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ems-suite/ems-backend-go/internal/domain/section"
	"github.com/ems-suite/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type sectionRepository struct {
	db *database.DB
}

func NewSectionRepository(db *database.DB) section.SectionRepository {
	return &sectionRepository{db: db}
}

// Create implements section.SectionRepository.
func (r *sectionRepository) Create(ctx context.Context, s section.Section) (section.Section, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sections (id, department_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.DepartmentID, s.Name).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return section.Section{}, section.ErrSectionNameExists
		}
		return section.Section{}, fmt.Errorf("failed to create section: %w", err)
	}

	return s, nil
}

// GetByID implements section.SectionRepository.
func (r *sectionRepository) GetByID(ctx context.Context, id string) (section.Section, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.department_id, s.name, s.created_at, s.updated_at, d.name
		FROM sections s
		JOIN departments d ON d.id = s.department_id
		WHERE s.id = $1
	`

	var s section.Section
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.DepartmentID, &s.Name, &s.CreatedAt, &s.UpdatedAt, &s.DepartmentName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return section.Section{}, section.ErrSectionNotFound
		}
		return section.Section{}, fmt.Errorf("failed to get section by ID: %w", err)
	}

	return s, nil
}

// List implements section.SectionRepository.
func (r *sectionRepository) List(ctx context.Context, departmentID *string) ([]section.Section, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.department_id, s.name, s.created_at, s.updated_at, d.name
		FROM sections s
		JOIN departments d ON d.id = s.department_id
	`
	args := []any{}
	if departmentID != nil {
		query += ` WHERE s.department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY s.created_at ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	var sections []section.Section
	for rows.Next() {
		var s section.Section
		if err := rows.Scan(&s.ID, &s.DepartmentID, &s.Name, &s.CreatedAt, &s.UpdatedAt, &s.DepartmentName); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, s)
	}

	return sections, nil
}

// Update implements section.SectionRepository.
func (r *sectionRepository) Update(ctx context.Context, s section.Section) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE sections SET name = $1, department_id = $2, updated_at = $3 WHERE id = $4`,
		s.Name, s.DepartmentID, time.Now(), s.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return section.ErrSectionNameExists
		}
		return fmt.Errorf("failed to update section: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return section.ErrSectionNotFound
	}
	return nil
}

// Delete implements section.SectionRepository.
func (r *sectionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return section.ErrSectionNotFound
	}
	return nil
}

// CountEmployees implements section.SectionRepository.
func (r *sectionRepository) CountEmployees(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE section_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count section employees: %w", err)
	}
	return count, nil
}
