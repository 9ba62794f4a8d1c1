package http

import (
	"encoding/json"
	"net/http"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/internal/http/middleware"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

type ApartmentHandler struct {
	service domain.ApartmentService
	logger  logger.Logger
}

func NewApartmentHandler(service domain.ApartmentService, logger logger.Logger) *ApartmentHandler {
	return &ApartmentHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ApartmentHandler) RegisterRoutes(mux *http.ServeMux, auth *middleware.AuthMiddleware) {
	mux.Handle("GET /api/apartments", auth.RequireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("GET /api/apartments/{id}", auth.RequireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("POST /api/apartments", auth.RequireAdmin(http.HandlerFunc(h.handleCreate)))
	mux.Handle("PUT /api/apartments/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /api/apartments/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleDelete)))
}

func (h *ApartmentHandler) handleList(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := queryInt64(r, "property_id")
	if !ok {
		WriteJSONError(w, "Invalid property_id", http.StatusBadRequest)
		return
	}

	apartments, err := h.service.ListApartments(r.Context(), domain.ApartmentFilter{PropertyID: propertyID})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apartments)
}

func (h *ApartmentHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid apartment id", http.StatusBadRequest)
		return
	}

	apartment, err := h.service.GetApartmentByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apartment)
}

func (h *ApartmentHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateApartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	apartment, err := h.service.CreateApartment(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, apartment)
}

func (h *ApartmentHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid apartment id", http.StatusBadRequest)
		return
	}

	var req domain.UpdateApartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	apartment, err := h.service.UpdateApartment(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apartment)
}

func (h *ApartmentHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid apartment id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteApartment(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
