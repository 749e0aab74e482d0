package leave

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/validator"
)

// MaxBatchSize caps the number of items accepted in one batch save.
const MaxBatchSize = 1000

// ========================================
// BATCH SAVE
// ========================================

type LeaveItem struct {
	EmployeeID int64  `json:"employee_id"`
	LeaveDate  string `json:"leave_date"`
	LeaveType  string `json:"leave_type"`
}

type BatchSaveRequest struct {
	Leaves []LeaveItem `json:"leaves"`
}

func (r *BatchSaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Leaves) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leaves",
			Message: "No leaves data provided.",
		})
		return errs
	}
	if len(r.Leaves) > MaxBatchSize {
		errs = append(errs, validator.ValidationError{
			Field:   "leaves",
			Message: fmt.Sprintf("leaves must not exceed %d items", MaxBatchSize),
		})
		return errs
	}

	for i, item := range r.Leaves {
		prefix := fmt.Sprintf("leaves[%d].", i)
		if item.EmployeeID <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "employee_id",
				Message: "employee_id must be a positive integer",
			})
		}
		if _, ok := validator.IsValidDate(item.LeaveDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "leave_date",
				Message: "leave_date must be a valid date in YYYY-MM-DD format",
			})
		}
		if _, ok := ParseLeaveType(item.LeaveType); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "leave_type",
				Message: fmt.Sprintf("leave_type %q is not a recognized leave type", item.LeaveType),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Records converts a validated request into leave records. Items sharing an
// (employee_id, leave_date) key collapse into one record carrying the last
// item's leave type, positioned where the key first appeared.
func (r *BatchSaveRequest) Records() []LeaveRecord {
	type key struct {
		employeeID int64
		date       string
	}

	index := make(map[key]int, len(r.Leaves))
	records := make([]LeaveRecord, 0, len(r.Leaves))
	for _, item := range r.Leaves {
		date, _ := validator.IsValidDate(item.LeaveDate)
		k := key{employeeID: item.EmployeeID, date: item.LeaveDate}
		if i, seen := index[k]; seen {
			records[i].LeaveType = LeaveType(item.LeaveType)
			continue
		}
		index[k] = len(records)
		records = append(records, LeaveRecord{
			EmployeeID: item.EmployeeID,
			LeaveDate:  date,
			LeaveType:  LeaveType(item.LeaveType),
		})
	}
	return records
}

type BatchSaveResponse struct {
	Message string `json:"message"`
}

// ========================================
// REPORTS
// ========================================

// LeaveByDateRow is one employee with a leave record on the requested date.
type LeaveByDateRow struct {
	EmployeeCode  string  `json:"ee_id"`
	EmployeeName  string  `json:"employee_name"`
	Department    *string `json:"department"`
	PositionTitle *string `json:"position_title"`
	LeaveType     string  `json:"leave_type"`
}

type LeaveTypeCount struct {
	LeaveType string `json:"leave_type"`
	Count     int64  `json:"count"`
}

type LeaveTypeResponse struct {
	Value    string   `json:"value"`
	Category Category `json:"category"`
	HalfDay  bool     `json:"half_day"`
}

// ========================================
// EXPORT
// ========================================

type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

type ExportByDateRequest struct {
	Date   string
	Format ExportFormat
}

func (r *ExportByDateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date query parameter is required.",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date in YYYY-MM-DD format",
		})
	}

	if r.Format == "" {
		r.Format = ExportFormatCSV
	}
	r.Format = ExportFormat(strings.ToLower(string(r.Format)))
	if !validator.IsInSlice(string(r.Format), []string{string(ExportFormatCSV), string(ExportFormatXLSX)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be csv or xlsx",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportFile is a rendered report ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
