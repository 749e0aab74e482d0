package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// DailyAttendance implements report.ReportRepository.
func (r *reportRepositoryImpl) DailyAttendance(ctx context.Context, date time.Time) ([]report.DailyAttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.ee_id, e.employee_name, e.department, l.leave_type
		FROM employees e
		LEFT JOIN leaves l ON e.id = l.employee_id AND l.leave_date = $1::date
		ORDER BY e.employee_name ASC, e.id ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily attendance: %w", err)
	}
	defer rows.Close()

	result := []report.DailyAttendanceRow{}
	for rows.Next() {
		var row report.DailyAttendanceRow
		if err := rows.Scan(&row.EmployeeCode, &row.EmployeeName, &row.Department, &row.LeaveStatus); err != nil {
			return nil, fmt.Errorf("failed to scan daily attendance: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// LeaveTallies implements report.ReportRepository.
func (r *reportRepositoryImpl) LeaveTallies(ctx context.Context, year int) ([]report.LeaveTally, error) {
	q := GetQuerier(ctx, r.db)

	periodStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(1, 0, 0)

	query := `
		SELECT e.id, e.ee_id, e.employee_name, l.leave_type, COUNT(l.id) AS count
		FROM employees e
		LEFT JOIN leaves l ON e.id = l.employee_id
			AND l.leave_date >= $1::date
			AND l.leave_date < $2::date
		GROUP BY e.id, e.ee_id, e.employee_name, l.leave_type
		ORDER BY e.employee_name ASC, e.id ASC, l.leave_type ASC
	`

	rows, err := q.Query(ctx, query, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave tallies: %w", err)
	}
	defer rows.Close()

	result := []report.LeaveTally{}
	for rows.Next() {
		var t report.LeaveTally
		if err := rows.Scan(&t.EmployeeID, &t.EmployeeCode, &t.EmployeeName, &t.LeaveType, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan leave tally: %w", err)
		}
		result = append(result, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
