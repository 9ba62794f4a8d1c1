package http

import (
	"encoding/json"
	"net/http"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/internal/http/middleware"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

type PropertyHandler struct {
	service domain.PropertyService
	logger  logger.Logger
}

func NewPropertyHandler(service domain.PropertyService, logger logger.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		logger:  logger,
	}
}

func (h *PropertyHandler) RegisterRoutes(mux *http.ServeMux, auth *middleware.AuthMiddleware) {
	mux.Handle("GET /api/properties", auth.RequireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("GET /api/properties/{id}", auth.RequireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("POST /api/properties", auth.RequireAdmin(http.HandlerFunc(h.handleCreate)))
	mux.Handle("PUT /api/properties/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /api/properties/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleDelete)))
}

func (h *PropertyHandler) handleList(w http.ResponseWriter, r *http.Request) {
	properties, err := h.service.ListProperties(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid property id", http.StatusBadRequest)
		return
	}

	property, err := h.service.GetPropertyByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	property, err := h.service.CreateProperty(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid property id", http.StatusBadRequest)
		return
	}

	var req domain.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	property, err := h.service.UpdateProperty(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid property id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteProperty(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
