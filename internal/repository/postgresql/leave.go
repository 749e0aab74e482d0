package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/validator"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// BatchUpsert implements leave.LeaveRepository.
// The caller must not pass two records with the same (employee_id, leave_date).
func (r *leaveRepositoryImpl) BatchUpsert(ctx context.Context, records []leave.LeaveRecord) error {
	if len(records) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	employeeIDs := make([]int64, len(records))
	dates := make([]string, len(records))
	types := make([]string, len(records))
	for i, rec := range records {
		employeeIDs[i] = rec.EmployeeID
		dates[i] = rec.LeaveDate.Format(validator.DateLayout)
		types[i] = string(rec.LeaveType)
	}

	query := `
		INSERT INTO leaves (employee_id, leave_date, leave_type)
		SELECT u.employee_id, u.leave_date::date, u.leave_type
		FROM unnest($1::bigint[], $2::text[], $3::text[]) AS u(employee_id, leave_date, leave_type)
		ON CONFLICT (employee_id, leave_date)
		DO UPDATE SET leave_type = EXCLUDED.leave_type, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeIDs, dates, types); err != nil {
		return fmt.Errorf("failed to upsert %d leave records: %w", len(records), err)
	}
	return nil
}

// GetByDate implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByDate(ctx context.Context, date time.Time) ([]leave.LeaveByDateRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.ee_id, e.employee_name, e.department, e.position_title, l.leave_type
		FROM leaves l
		JOIN employees e ON l.employee_id = e.id
		WHERE l.leave_date = $1::date
		ORDER BY e.employee_name ASC, e.id ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves by date: %w", err)
	}
	defer rows.Close()

	result := []leave.LeaveByDateRow{}
	for rows.Next() {
		var row leave.LeaveByDateRow
		if err := rows.Scan(&row.EmployeeCode, &row.EmployeeName, &row.Department, &row.PositionTitle, &row.LeaveType); err != nil {
			return nil, fmt.Errorf("failed to scan leave row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountByType implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) CountByType(ctx context.Context) ([]leave.LeaveTypeCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT leave_type, COUNT(*) AS count
		FROM leaves
		GROUP BY leave_type
		ORDER BY leave_type ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave summary: %w", err)
	}
	defer rows.Close()

	result := []leave.LeaveTypeCount{}
	for rows.Next() {
		var c leave.LeaveTypeCount
		if err := rows.Scan(&c.LeaveType, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan leave summary: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
