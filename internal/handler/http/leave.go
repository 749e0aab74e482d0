package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/handler/http/response"
)

type LeaveHandler interface {
	BatchSave(w http.ResponseWriter, r *http.Request)
	GetByDate(w http.ResponseWriter, r *http.Request)
	ExportByDate(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

// BatchSave implements LeaveHandler.
func (l *LeaveHandlerImpl) BatchSave(w http.ResponseWriter, r *http.Request) {
	var req leave.BatchSaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BatchSave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := l.leaveService.BatchSave(r.Context(), req)
	if err != nil {
		slog.Error("BatchSave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leaves saved", "records", saved)
	response.SuccessWithMessage(w, "Leaves saved successfully!")
}

// GetByDate implements LeaveHandler.
func (l *LeaveHandlerImpl) GetByDate(w http.ResponseWriter, r *http.Request) {
	rows, err := l.leaveService.GetByDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		slog.Error("GetLeavesByDate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// ExportByDate implements LeaveHandler.
func (l *LeaveHandlerImpl) ExportByDate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := leave.ExportByDateRequest{
		Date:   query.Get("date"),
		Format: leave.ExportFormat(query.Get("format")),
	}

	file, err := l.leaveService.ExportByDate(r.Context(), req)
	if err != nil {
		slog.Error("ExportLeavesByDate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Filename, file.ContentType, file.Data)
}

// Summary implements LeaveHandler.
func (l *LeaveHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	counts, err := l.leaveService.Summary(r.Context())
	if err != nil {
		slog.Error("LeaveSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, counts)
}

// ListTypes implements LeaveHandler.
func (l *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	response.Success(w, l.leaveService.LeaveTypes())
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}
