package report

import "context"

type ReportService interface {
	DailyAttendance(ctx context.Context) ([]DailyAttendanceRow, error)
	LeaveBalances(ctx context.Context) ([]LeaveBalanceRow, error)
}
