package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepository_DailyAttendance_LeftJoin(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	leaves := postgresql.NewLeaveRepository(db)
	reports := postgresql.NewReportRepository(db)
	a := createTestEmployee(t, ctx, "EE-001", "Alice")
	createTestEmployee(t, ctx, "EE-002", "Bob")

	// No records at all: everyone is listed with no status.
	rows, err := reports.DailyAttendance(ctx, day("2024-03-01"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Nil(t, rows[0].LeaveStatus)
	assert.Nil(t, rows[1].LeaveStatus)

	require.NoError(t, leaves.BatchUpsert(ctx, []leave.LeaveRecord{
		{EmployeeID: a, LeaveDate: day("2024-03-01"), LeaveType: leave.SickLeave},
	}))

	rows, err = reports.DailyAttendance(ctx, day("2024-03-01"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].EmployeeName)
	assert.Equal(t, strPtr("Sick Leave - SL"), rows[0].LeaveStatus)
	assert.Equal(t, "Bob", rows[1].EmployeeName)
	assert.Nil(t, rows[1].LeaveStatus)

	byDate, err := leaves.GetByDate(ctx, day("2024-03-02"))
	require.NoError(t, err)
	assert.Empty(t, byDate)
	rows, err = reports.DailyAttendance(ctx, day("2024-03-02"))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestReportRepository_LeaveTallies(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	leaves := postgresql.NewLeaveRepository(db)
	reports := postgresql.NewReportRepository(db)
	a := createTestEmployee(t, ctx, "EE-001", "Alice")
	createTestEmployee(t, ctx, "EE-002", "Bob")

	require.NoError(t, leaves.BatchUpsert(ctx, []leave.LeaveRecord{
		{EmployeeID: a, LeaveDate: day("2024-01-01"), LeaveType: leave.WorkFromHome},
		{EmployeeID: a, LeaveDate: day("2024-12-31"), LeaveType: leave.WorkFromHome},
		{EmployeeID: a, LeaveDate: day("2024-06-01"), LeaveType: leave.EarnedLeaveHalfDay},
		{EmployeeID: a, LeaveDate: day("2023-12-31"), LeaveType: leave.WorkFromHome},
		{EmployeeID: a, LeaveDate: day("2025-01-01"), LeaveType: leave.WorkFromHome},
	}))

	tallies, err := reports.LeaveTallies(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, tallies, 3)

	assert.Equal(t, "Alice", tallies[0].EmployeeName)
	assert.Equal(t, strPtr("Earned Leave - EL (0.5)"), tallies[0].LeaveType)
	assert.Equal(t, int64(1), tallies[0].Count)
	assert.Equal(t, strPtr("WFH"), tallies[1].LeaveType)
	assert.Equal(t, int64(2), tallies[1].Count)

	assert.Equal(t, "Bob", tallies[2].EmployeeName)
	assert.Nil(t, tallies[2].LeaveType)
	assert.Equal(t, int64(0), tallies[2].Count)
}
