package report

import (
	"context"
	"time"
)

type ReportRepository interface {
	// DailyAttendance lists every employee with their leave type on date, if any.
	DailyAttendance(ctx context.Context, date time.Time) ([]DailyAttendanceRow, error)
	// LeaveTallies counts records per employee and leave type within year,
	// ordered by employee name. Employees without records yield one row with
	// a nil LeaveType.
	LeaveTallies(ctx context.Context, year int) ([]LeaveTally, error)
}
