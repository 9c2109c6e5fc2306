package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/caredesk/homecare-backend-go/internal/domain/client"
	"github.com/caredesk/homecare-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ClientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ClientHandlerImpl struct {
	clientService client.Service
}

func NewClientHandler(clientService client.Service) ClientHandler {
	return &ClientHandlerImpl{clientService: clientService}
}

// Create implements ClientHandler.
func (h *ClientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req client.CreateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateClient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.clientService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateClient service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created", created)
}

// Get implements ClientHandler.
func (h *ClientHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.clientService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements ClientHandler.
func (h *ClientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.clientService.List(r.Context())
	if err != nil {
		slog.Error("ListClients service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}
