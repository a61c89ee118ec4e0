package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ems-suite/ems-backend-go/internal/domain/attendance"
	"github.com/ems-suite/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const dateLayout = "2006-01-02"

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, marked_by, created_at, updated_at
		FROM attendance_records
		WHERE date = $1
		ORDER BY employee_id ASC
	`

	rows, err := q.Query(ctx, query, date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.MarkedBy, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// ListByMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByMonth(ctx context.Context, month int, year int) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT id, employee_id, date, status, marked_by, created_at, updated_at
		FROM attendance_records
		WHERE date >= $1 AND date < $2
		ORDER BY date ASC, employee_id ASC
	`

	rows, err := q.Query(ctx, query, start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance by month: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.MarkedBy, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// ExistsForDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendance_records WHERE date = $1)`, date.Format(dateLayout)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}
	return exists, nil
}

// SaveDay implements attendance.AttendanceRepository. First writer wins:
// inside one transaction every writer for the same date serializes on an
// advisory lock keyed by the date, re-checks that the day is still unsaved,
// and only then writes. The lock releases on commit or rollback.
func (r *attendanceRepository) SaveDay(ctx context.Context, date time.Time, records []attendance.AttendanceRecord) error {
	if len(records) == 0 {
		return attendance.ErrNothingToSave
	}

	day := date.Format(dateLayout)

	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "attendance_day:"+day); err != nil {
			return fmt.Errorf("failed to acquire day lock: %w", err)
		}

		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendance_records WHERE date = $1)`, day).Scan(&exists); err != nil {
			return fmt.Errorf("failed to re-check day lock: %w", err)
		}
		if exists {
			return attendance.ErrDayLocked
		}

		query := `
			INSERT INTO attendance_records (id, employee_id, date, status, marked_by)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (employee_id, date) DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		`
		for _, rec := range records {
			if _, err := tx.Exec(ctx, query, rec.ID, rec.EmployeeID, day, rec.Status, rec.MarkedBy); err != nil {
				return fmt.Errorf("failed to save attendance record: %w", err)
			}
		}
		return nil
	})
}
