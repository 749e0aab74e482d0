package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/handler/http/response"
)

type ReportHandler interface {
	DailyAttendance(w http.ResponseWriter, r *http.Request)
	LeaveBalances(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

// DailyAttendance implements ReportHandler.
func (h *ReportHandlerImpl) DailyAttendance(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.DailyAttendance(r.Context())
	if err != nil {
		slog.Error("DailyAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// LeaveBalances implements ReportHandler.
func (h *ReportHandlerImpl) LeaveBalances(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.LeaveBalances(r.Context())
	if err != nil {
		slog.Error("LeaveBalances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}
