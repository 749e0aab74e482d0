package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeaveType(t *testing.T) {
	for _, lt := range AllLeaveTypes() {
		parsed, ok := ParseLeaveType(string(lt))
		assert.True(t, ok, "ParseLeaveType(%q)", lt)
		assert.Equal(t, lt, parsed)
	}

	for _, s := range []string{"", "wfh", "Sick Leave", "Earned Leave - EL(0.5)", "Casual (0.5)"} {
		_, ok := ParseLeaveType(s)
		assert.False(t, ok, "ParseLeaveType(%q)", s)
	}
}

func TestAllLeaveTypes_ClosedSet(t *testing.T) {
	all := AllLeaveTypes()
	assert.Len(t, all, 11)
	assert.Equal(t, EarnedLeave, all[0])

	// Callers get their own copy.
	all[0] = "tampered"
	assert.Equal(t, EarnedLeave, AllLeaveTypes()[0])
}

func TestLeaveType_HalfDay(t *testing.T) {
	halfDays := map[LeaveType]bool{
		EarnedLeaveHalfDay: true,
		SickLeaveHalfDay:   true,
	}
	for _, lt := range AllLeaveTypes() {
		assert.Equal(t, halfDays[lt], lt.IsHalfDay(), "%q", lt)
	}
	assert.False(t, LeaveType("Something (0.5)").IsHalfDay())
}

func TestLeaveType_Category(t *testing.T) {
	cases := map[LeaveType]Category{
		EarnedLeave:        CategoryEarnedLeave,
		SickLeave:          CategorySickLeave,
		WorkFromHome:       CategoryWFH,
		CompOff:            CategoryCompOff,
		LeaveWithoutPay:    CategoryLWP,
		Maternity:          CategoryMaternity,
		Paternity:          CategoryPaternity,
		MandatoryHoliday:   CategoryMandatoryHoliday,
		OptionalHoliday:    CategoryOptionalHoliday,
		EarnedLeaveHalfDay: CategoryHalfDays,
		SickLeaveHalfDay:   CategoryHalfDays,
	}
	for lt, want := range cases {
		got, ok := lt.Category()
		assert.True(t, ok)
		assert.Equal(t, want, got, "%q", lt)
	}

	_, ok := LeaveType("Bereavement").Category()
	assert.False(t, ok)
}
