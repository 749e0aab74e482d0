package report

import "github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/leave"

// ========================================
// DAILY ATTENDANCE
// ========================================

// DailyAttendanceRow keeps the column names consumed by the spreadsheet
// integration. LeaveStatus is nil when the employee has no record that day.
type DailyAttendanceRow struct {
	EmployeeCode string  `json:"Employee ID"`
	EmployeeName string  `json:"Employee Name"`
	Department   *string `json:"Department"`
	LeaveStatus  *string `json:"Leave Status (from Dashboard)"`
}

// ========================================
// LEAVE BALANCE REPORT
// ========================================

// LeaveTally is the number of records an employee has of one leave type.
// LeaveType is nil for employees without any record in the period.
type LeaveTally struct {
	EmployeeID   int64
	EmployeeCode string
	EmployeeName string
	LeaveType    *string
	Count        int64
}

type LeaveBalanceRow struct {
	ID               int64  `json:"id"`
	EmployeeCode     string `json:"ee_id"`
	EmployeeName     string `json:"employee_name"`
	EarnedLeave      int64  `json:"earned_leave"`
	SickLeave        int64  `json:"sick_leave"`
	WFH              int64  `json:"wfh"`
	CompOff          int64  `json:"comp_off"`
	LWP              int64  `json:"lwp"`
	HalfDays         int64  `json:"half_days"`
	Maternity        int64  `json:"maternity"`
	Paternity        int64  `json:"paternity"`
	MandatoryHoliday int64  `json:"mandatory_holiday"`
	OptionalHoliday  int64  `json:"optional_holiday"`
}

// Add increments the counter for category by n.
func (r *LeaveBalanceRow) Add(category leave.Category, n int64) {
	switch category {
	case leave.CategoryEarnedLeave:
		r.EarnedLeave += n
	case leave.CategorySickLeave:
		r.SickLeave += n
	case leave.CategoryWFH:
		r.WFH += n
	case leave.CategoryCompOff:
		r.CompOff += n
	case leave.CategoryLWP:
		r.LWP += n
	case leave.CategoryHalfDays:
		r.HalfDays += n
	case leave.CategoryMaternity:
		r.Maternity += n
	case leave.CategoryPaternity:
		r.Paternity += n
	case leave.CategoryMandatoryHoliday:
		r.MandatoryHoliday += n
	case leave.CategoryOptionalHoliday:
		r.OptionalHoliday += n
	}
}

// Total is the sum of all counters.
func (r LeaveBalanceRow) Total() int64 {
	return r.EarnedLeave + r.SickLeave + r.WFH + r.CompOff + r.LWP + r.HalfDays +
		r.Maternity + r.Paternity + r.MandatoryHoliday + r.OptionalHoliday
}
