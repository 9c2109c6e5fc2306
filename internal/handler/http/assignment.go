package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AssignmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AssignmentHandlerImpl struct {
	assignmentService assignment.Service
}

func NewAssignmentHandler(assignmentService assignment.Service) AssignmentHandler {
	return &AssignmentHandlerImpl{assignmentService: assignmentService}
}

// Create implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req assignment.CreateAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.assignmentService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assignment created", created)
}

// Get implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.assignmentService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements AssignmentHandler.
func (h *AssignmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter assignment.Filter
	if v := r.URL.Query().Get("worker_id"); v != "" {
		filter.WorkerID = &v
	}
	if v := r.URL.Query().Get("client_id"); v != "" {
		filter.ClientID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	list, err := h.assignmentService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListAssignments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Update implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req assignment.UpdateAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.assignmentService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdateAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment updated", updated)
}

// Delete implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.assignmentService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment deleted", nil)
}
