package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
	"github.com/caredesk/homecare-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PlanningHandler interface {
	Conflicts(w http.ResponseWriter, r *http.Request)
	Reassignments(w http.ResponseWriter, r *http.Request)
	MonthlyPlan(w http.ResponseWriter, r *http.Request)
	ClientBalance(w http.ResponseWriter, r *http.Request)
	WorkerBalance(w http.ResponseWriter, r *http.Request)
	BalanceSnapshot(w http.ResponseWriter, r *http.Request)
}

type PlanningHandlerImpl struct {
	planningService planning.Service
}

func NewPlanningHandler(planningService planning.Service) PlanningHandler {
	return &PlanningHandlerImpl{planningService: planningService}
}

// Conflicts implements PlanningHandler. Conflicts are findings, not
// failures: a report full of them still returns 200.
func (h *PlanningHandlerImpl) Conflicts(w http.ResponseWriter, r *http.Request) {
	conflicts, err := h.planningService.DetectConflicts(r.Context())
	if err != nil {
		slog.Error("DetectConflicts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, conflicts)
}

// Reassignments implements PlanningHandler.
func (h *PlanningHandlerImpl) Reassignments(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	result, err := h.planningService.PlanReassignments(r.Context(), clientID, year, month)
	if err != nil {
		slog.Error("PlanReassignments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyPlan implements PlanningHandler.
func (h *PlanningHandlerImpl) MonthlyPlan(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	plan, err := h.planningService.MonthlyPlan(r.Context(), clientID, year, month)
	if err != nil {
		slog.Error("MonthlyPlan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, plan)
}

// ClientBalance implements PlanningHandler.
func (h *PlanningHandlerImpl) ClientBalance(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	balance, err := h.planningService.ClientBalance(r.Context(), clientID, year, month, time.Now())
	if err != nil {
		slog.Error("ClientBalance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// WorkerBalance implements PlanningHandler.
func (h *PlanningHandlerImpl) WorkerBalance(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	balance, err := h.planningService.WorkerBalance(r.Context(), workerID, year, month, time.Now())
	if err != nil {
		slog.Error("WorkerBalance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// BalanceSnapshot implements PlanningHandler. It serves the stored record
// from the nightly batch run instead of recomputing on the spot.
func (h *PlanningHandlerImpl) BalanceSnapshot(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	record, err := h.planningService.BalanceSnapshot(r.Context(), clientID, year, month)
	if err != nil {
		slog.Error("BalanceSnapshot service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// yearMonthParams reads the year and month query params, defaulting to the
// current month. A false return means an error response has been written.
func yearMonthParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return 0, 0, false
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return 0, 0, false
		}
		month = parsed
	}
	return year, month, true
}
