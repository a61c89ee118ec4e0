package http

import (
	"encoding/json"
	"net/http"

	"github.com/ems-suite/ems-backend-go/internal/domain/leave"
	"github.com/ems-suite/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
	PendingCount(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// ListMy implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	results, err := h.leaveService.ListMy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter leave.LeaveFilter

	query := r.URL.Query()
	if v := query.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := query.Get("status"); v != "" {
		status := leave.Status(v)
		filter.Status = &status
	}

	results, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Process implements LeaveHandler. The path carries the decision so the body
// stays empty: PATCH /leaves/{id}/approve or /leaves/{id}/reject.
func (h *LeaveHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	req := leave.ProcessLeaveRequest{
		ID: chi.URLParam(r, "id"),
	}

	switch chi.URLParam(r, "decision") {
	case "approve":
		req.Status = leave.StatusApproved
	case "reject":
		req.Status = leave.StatusRejected
	default:
		response.BadRequest(w, "Decision must be 'approve' or 'reject'", nil)
		return
	}

	result, err := h.leaveService.Process(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request processed", result)
}

// PendingCount implements LeaveHandler.
func (h *LeaveHandlerImpl) PendingCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.leaveService.PendingCount(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int64{"pending": count})
}
