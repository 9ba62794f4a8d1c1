package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/internal/http/middleware"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

// SupplyHandler serves the supply catalog, the per-apartment assignment
// sub-routes and the shortage alerts.
type SupplyHandler struct {
	service domain.SupplyService
	logger  logger.Logger
}

func NewSupplyHandler(service domain.SupplyService, logger logger.Logger) *SupplyHandler {
	return &SupplyHandler{
		service: service,
		logger:  logger,
	}
}

func (h *SupplyHandler) RegisterRoutes(mux *http.ServeMux, auth *middleware.AuthMiddleware) {
	mux.Handle("GET /api/supplies", auth.RequireAuth(http.HandlerFunc(h.handleListSupplies)))
	mux.Handle("GET /api/supplies/{id}", auth.RequireAuth(http.HandlerFunc(h.handleGetSupply)))
	mux.Handle("POST /api/supplies", auth.RequireAdmin(http.HandlerFunc(h.handleCreateSupply)))
	// Operators update counts in the field, so catalog update stays open to
	// any authenticated user.
	mux.Handle("PUT /api/supplies/{id}", auth.RequireAuth(http.HandlerFunc(h.handleUpdateSupply)))
	mux.Handle("DELETE /api/supplies/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleDeleteSupply)))

	mux.Handle("GET /api/supplies/apartment/{apartmentID}/supplies", auth.RequireAuth(http.HandlerFunc(h.handleListAssignments)))
	mux.Handle("POST /api/supplies/apartment/{apartmentID}/supplies", auth.RequireAdmin(http.HandlerFunc(h.handleAssignSupply)))
	mux.Handle("PUT /api/supplies/apartment-supplies/{id}", auth.RequireAuth(http.HandlerFunc(h.handleUpdateAssignment)))
	mux.Handle("DELETE /api/supplies/apartment-supplies/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleUnassignSupply)))

	mux.Handle("GET /api/supply-alerts", auth.RequireAuth(http.HandlerFunc(h.handleListAlerts)))
	mux.Handle("POST /api/supply-alerts", auth.RequireAuth(http.HandlerFunc(h.handleCreateAlert)))
	mux.Handle("PUT /api/supply-alerts/{id}/resolve", auth.RequireAuth(http.HandlerFunc(h.handleResolveAlert)))
}

func (h *SupplyHandler) handleListSupplies(w http.ResponseWriter, r *http.Request) {
	var filter domain.SupplyFilter
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}

	supplies, err := h.service.ListSupplies(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, supplies)
}

func (h *SupplyHandler) handleGetSupply(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid supply id", http.StatusBadRequest)
		return
	}

	supply, err := h.service.GetSupplyByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, supply)
}

func (h *SupplyHandler) handleCreateSupply(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSupplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	supply, err := h.service.CreateSupply(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, supply)
}

func (h *SupplyHandler) handleUpdateSupply(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid supply id", http.StatusBadRequest)
		return
	}

	var req domain.UpdateSupplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	supply, err := h.service.UpdateSupply(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, supply)
}

func (h *SupplyHandler) handleDeleteSupply(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid supply id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteSupply(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *SupplyHandler) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	apartmentID, ok := pathID(r, "apartmentID")
	if !ok {
		WriteJSONError(w, "Invalid apartment id", http.StatusBadRequest)
		return
	}

	details, err := h.service.ListAssignments(r.Context(), apartmentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *SupplyHandler) handleAssignSupply(w http.ResponseWriter, r *http.Request) {
	apartmentID, ok := pathID(r, "apartmentID")
	if !ok {
		WriteJSONError(w, "Invalid apartment id", http.StatusBadRequest)
		return
	}

	var req domain.AssignSupplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	assignment, err := h.service.AssignSupply(r.Context(), apartmentID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, assignment)
}

func (h *SupplyHandler) handleUpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid assignment id", http.StatusBadRequest)
		return
	}

	var req domain.UpdateApartmentSupplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	assignment, err := h.service.UpdateAssignment(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assignment)
}

func (h *SupplyHandler) handleUnassignSupply(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid assignment id", http.StatusBadRequest)
		return
	}

	if err := h.service.UnassignSupply(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *SupplyHandler) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	var filter domain.SupplyAlertFilter
	var ok bool
	if filter.SupplyID, ok = queryInt64(r, "supply_id"); !ok {
		WriteJSONError(w, "Invalid supply_id", http.StatusBadRequest)
		return
	}
	if raw := r.URL.Query().Get("is_resolved"); raw != "" {
		resolved, err := strconv.ParseBool(raw)
		if err != nil {
			WriteJSONError(w, "Invalid is_resolved", http.StatusBadRequest)
			return
		}
		filter.IsResolved = &resolved
	}

	alerts, err := h.service.ListAlerts(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (h *SupplyHandler) handleCreateAlert(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.CreateSupplyAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	alert, err := h.service.CreateAlert(r.Context(), user, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, alert)
}

func (h *SupplyHandler) handleResolveAlert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid alert id", http.StatusBadRequest)
		return
	}

	alert, err := h.service.ResolveAlert(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, alert)
}
