package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/report"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	loc        *time.Location
	now        func() time.Time
}

// NewReportService builds a report service whose notion of "today" is taken
// in loc. A nil loc means UTC.
func NewReportService(reportRepo report.ReportRepository, loc *time.Location) report.ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		loc:        loc,
		now:        time.Now,
	}
}

func (s *ReportServiceImpl) today() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DailyAttendance implements report.ReportService.
func (s *ReportServiceImpl) DailyAttendance(ctx context.Context) ([]report.DailyAttendanceRow, error) {
	rows, err := s.reportRepo.DailyAttendance(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to get daily attendance: %w", err)
	}
	return rows, nil
}

// LeaveBalances implements report.ReportService.
func (s *ReportServiceImpl) LeaveBalances(ctx context.Context) ([]report.LeaveBalanceRow, error) {
	tallies, err := s.reportRepo.LeaveTallies(ctx, s.today().Year())
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balances: %w", err)
	}
	return foldBalances(tallies), nil
}

// foldBalances merges per-type tallies into one row per employee, keeping the
// order in which employees first appear. Unknown leave types are not counted.
func foldBalances(tallies []report.LeaveTally) []report.LeaveBalanceRow {
	index := make(map[int64]int)
	rows := make([]report.LeaveBalanceRow, 0)

	for _, t := range tallies {
		i, seen := index[t.EmployeeID]
		if !seen {
			i = len(rows)
			index[t.EmployeeID] = i
			rows = append(rows, report.LeaveBalanceRow{
				ID:           t.EmployeeID,
				EmployeeCode: t.EmployeeCode,
				EmployeeName: t.EmployeeName,
			})
		}

		if t.LeaveType == nil {
			continue
		}
		lt, ok := leave.ParseLeaveType(*t.LeaveType)
		if !ok {
			continue
		}
		category, _ := lt.Category()
		rows[i].Add(category, t.Count)
	}
	return rows
}
