package leave

import "context"

type LeaveService interface {
	BatchSave(ctx context.Context, req BatchSaveRequest) (int, error)
	GetByDate(ctx context.Context, date string) ([]LeaveByDateRow, error)
	ExportByDate(ctx context.Context, req ExportByDateRequest) (ExportFile, error)
	Summary(ctx context.Context) ([]LeaveTypeCount, error)
	LeaveTypes() []LeaveTypeResponse
}
