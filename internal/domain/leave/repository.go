package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// BatchUpsert writes all records in a single statement.
	BatchUpsert(ctx context.Context, records []LeaveRecord) error
	GetByDate(ctx context.Context, date time.Time) ([]LeaveByDateRow, error)
	CountByType(ctx context.Context) ([]LeaveTypeCount, error)
}
