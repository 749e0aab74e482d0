package http

import (
	"context"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(auth.LoginResponse), args.Error(1)
}

func (m *mockAuthService) CreateUser(ctx context.Context, req auth.CreateUserRequest) (user.User, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(user.User), args.Error(1)
}

type mockEmployeeService struct {
	mock.Mock
}

func (m *mockEmployeeService) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]employee.EmployeeResponse), args.Error(1)
}

type mockLeaveService struct {
	mock.Mock
}

func (m *mockLeaveService) BatchSave(ctx context.Context, req leave.BatchSaveRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func (m *mockLeaveService) GetByDate(ctx context.Context, date string) ([]leave.LeaveByDateRow, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leave.LeaveByDateRow), args.Error(1)
}

func (m *mockLeaveService) ExportByDate(ctx context.Context, req leave.ExportByDateRequest) (leave.ExportFile, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(leave.ExportFile), args.Error(1)
}

func (m *mockLeaveService) Summary(ctx context.Context) ([]leave.LeaveTypeCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leave.LeaveTypeCount), args.Error(1)
}

func (m *mockLeaveService) LeaveTypes() []leave.LeaveTypeResponse {
	return m.Called().Get(0).([]leave.LeaveTypeResponse)
}

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) DailyAttendance(ctx context.Context) ([]report.DailyAttendanceRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.DailyAttendanceRow), args.Error(1)
}

func (m *mockReportService) LeaveBalances(ctx context.Context) ([]report.LeaveBalanceRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.LeaveBalanceRow), args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}
