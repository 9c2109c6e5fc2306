package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/caredesk/homecare-backend-go/internal/domain/worker"
	"github.com/caredesk/homecare-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerService worker.Service
}

func NewWorkerHandler(workerService worker.Service) WorkerHandler {
	return &WorkerHandlerImpl{workerService: workerService}
}

// Create implements WorkerHandler.
func (h *WorkerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worker.CreateWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateWorker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.workerService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateWorker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker created", created)
}

// Get implements WorkerHandler.
func (h *WorkerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.workerService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements WorkerHandler.
func (h *WorkerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.workerService.List(r.Context())
	if err != nil {
		slog.Error("ListWorkers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}
