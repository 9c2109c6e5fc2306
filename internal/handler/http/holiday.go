package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/holiday"
	"github.com/caredesk/homecare-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.Service
}

func NewHolidayHandler(holidayService holiday.Service) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateHoliday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", created)
}

// List implements HolidayHandler. Query params: year (defaults to the
// current year) and an optional month.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	if v := r.URL.Query().Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil || month < 1 || month > 12 {
			response.BadRequest(w, "month must be a number between 1 and 12", nil)
			return
		}

		list, err := h.holidayService.ListForMonth(r.Context(), year, month)
		if err != nil {
			slog.Error("ListHolidays service error", "error", err)
			response.HandleError(w, err)
			return
		}
		response.Success(w, list)
		return
	}

	list, err := h.holidayService.ListForYear(r.Context(), year)
	if err != nil {
		slog.Error("ListHolidays service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, list)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
