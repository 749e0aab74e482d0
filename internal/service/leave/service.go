package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/export"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{leaveRepo: leaveRepo}
}

// BatchSave implements leave.LeaveService. It returns the number of
// distinct (employee, date) records written.
func (s *LeaveServiceImpl) BatchSave(ctx context.Context, req leave.BatchSaveRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	records := req.Records()
	if err := s.leaveRepo.BatchUpsert(ctx, records); err != nil {
		return 0, fmt.Errorf("failed to save leaves: %w", err)
	}
	return len(records), nil
}

// GetByDate implements leave.LeaveService.
func (s *LeaveServiceImpl) GetByDate(ctx context.Context, date string) ([]leave.LeaveByDateRow, error) {
	day, err := parseDateParam(date)
	if err != nil {
		return nil, err
	}

	rows, err := s.leaveRepo.GetByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaves for %s: %w", date, err)
	}
	return rows, nil
}

// ExportByDate implements leave.LeaveService.
func (s *LeaveServiceImpl) ExportByDate(ctx context.Context, req leave.ExportByDateRequest) (leave.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return leave.ExportFile{}, err
	}

	rows, err := s.GetByDate(ctx, req.Date)
	if err != nil {
		return leave.ExportFile{}, err
	}
	if len(rows) == 0 {
		return leave.ExportFile{}, leave.ErrNoLeaveRecords
	}

	table := export.Table{
		Headers: []string{"Employee ID", "Employee Name", "Department", "Position", "Leave Type"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.EmployeeCode,
			row.EmployeeName,
			deref(row.Department),
			deref(row.PositionTitle),
			row.LeaveType,
		})
	}

	file := leave.ExportFile{Filename: fmt.Sprintf("Leave_Report_%s.%s", req.Date, req.Format)}
	switch req.Format {
	case leave.ExportFormatXLSX:
		file.ContentType = export.ContentTypeXLSX
		file.Data, err = export.XLSX(table)
	default:
		file.ContentType = export.ContentTypeCSV
		file.Data, err = export.CSV(table)
	}
	if err != nil {
		return leave.ExportFile{}, fmt.Errorf("failed to render %s report: %w", req.Format, err)
	}
	return file, nil
}

// Summary implements leave.LeaveService.
func (s *LeaveServiceImpl) Summary(ctx context.Context) ([]leave.LeaveTypeCount, error) {
	counts, err := s.leaveRepo.CountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave summary: %w", err)
	}
	return counts, nil
}

// LeaveTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) LeaveTypes() []leave.LeaveTypeResponse {
	types := leave.AllLeaveTypes()
	result := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		category, _ := lt.Category()
		result = append(result, leave.LeaveTypeResponse{
			Value:    lt.String(),
			Category: category,
			HalfDay:  lt.IsHalfDay(),
		})
	}
	return result
}

func parseDateParam(date string) (time.Time, error) {
	if validator.IsEmpty(date) {
		return time.Time{}, validator.ValidationErrors{{Field: "date", Message: "Date query parameter is required."}}
	}
	t, ok := validator.IsValidDate(date)
	if !ok {
		return time.Time{}, validator.ValidationErrors{{Field: "date", Message: "date must be a valid date in YYYY-MM-DD format"}}
	}
	return t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
