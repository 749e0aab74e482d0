package leave

import "time"

// LeaveRecord is keyed by (EmployeeID, LeaveDate); a later write for the
// same key replaces LeaveType.
type LeaveRecord struct {
	EmployeeID int64
	LeaveDate  time.Time
	LeaveType  LeaveType
}

// LeaveType is the display value stored in leaves.leave_type.
type LeaveType string

const (
	EarnedLeave        LeaveType = "Earned Leave - EL"
	SickLeave          LeaveType = "Sick Leave - SL"
	WorkFromHome       LeaveType = "WFH"
	CompOff            LeaveType = "Comp Off"
	LeaveWithoutPay    LeaveType = "LWP"
	Maternity          LeaveType = "Maternity"
	Paternity          LeaveType = "Paternity"
	MandatoryHoliday   LeaveType = "Mandatory Holiday"
	OptionalHoliday    LeaveType = "Optional Holiday - OH"
	EarnedLeaveHalfDay LeaveType = "Earned Leave - EL (0.5)"
	SickLeaveHalfDay   LeaveType = "Sick Leave - SL(0.5)"
)

// Category is a balance report counter.
type Category string

const (
	CategoryEarnedLeave      Category = "earned_leave"
	CategorySickLeave        Category = "sick_leave"
	CategoryWFH              Category = "wfh"
	CategoryCompOff          Category = "comp_off"
	CategoryLWP              Category = "lwp"
	CategoryHalfDays         Category = "half_days"
	CategoryMaternity        Category = "maternity"
	CategoryPaternity        Category = "paternity"
	CategoryMandatoryHoliday Category = "mandatory_holiday"
	CategoryOptionalHoliday  Category = "optional_holiday"
)

type leaveTypeInfo struct {
	category Category
	halfDay  bool
}

// Order matches the selection list shown on the attendance board.
var leaveTypeOrder = []LeaveType{
	EarnedLeave,
	SickLeave,
	MandatoryHoliday,
	OptionalHoliday,
	CompOff,
	LeaveWithoutPay,
	WorkFromHome,
	Maternity,
	Paternity,
	EarnedLeaveHalfDay,
	SickLeaveHalfDay,
}

var leaveTypes = map[LeaveType]leaveTypeInfo{
	EarnedLeave:        {category: CategoryEarnedLeave},
	SickLeave:          {category: CategorySickLeave},
	WorkFromHome:       {category: CategoryWFH},
	CompOff:            {category: CategoryCompOff},
	LeaveWithoutPay:    {category: CategoryLWP},
	Maternity:          {category: CategoryMaternity},
	Paternity:          {category: CategoryPaternity},
	MandatoryHoliday:   {category: CategoryMandatoryHoliday},
	OptionalHoliday:    {category: CategoryOptionalHoliday},
	EarnedLeaveHalfDay: {category: CategoryHalfDays, halfDay: true},
	SickLeaveHalfDay:   {category: CategoryHalfDays, halfDay: true},
}

// ParseLeaveType returns the known leave type with value s.
func ParseLeaveType(s string) (LeaveType, bool) {
	t := LeaveType(s)
	_, ok := leaveTypes[t]
	return t, ok
}

// AllLeaveTypes returns the closed set of leave types in display order.
func AllLeaveTypes() []LeaveType {
	out := make([]LeaveType, len(leaveTypeOrder))
	copy(out, leaveTypeOrder)
	return out
}

func (t LeaveType) IsValid() bool {
	_, ok := leaveTypes[t]
	return ok
}

func (t LeaveType) IsHalfDay() bool {
	return leaveTypes[t].halfDay
}

// Category returns the balance counter t is tallied under. Values outside
// the enumeration belong to no category.
func (t LeaveType) Category() (Category, bool) {
	info, ok := leaveTypes[t]
	return info.category, ok
}

func (t LeaveType) String() string {
	return string(t)
}
