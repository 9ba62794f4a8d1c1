package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/internal/http/middleware"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

// ChecklistHandler serves the checklist catalog, the per-apartment
// assignment sub-routes and the completion history.
type ChecklistHandler struct {
	service domain.ChecklistService
	logger  logger.Logger
}

func NewChecklistHandler(service domain.ChecklistService, logger logger.Logger) *ChecklistHandler {
	return &ChecklistHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ChecklistHandler) RegisterRoutes(mux *http.ServeMux, auth *middleware.AuthMiddleware) {
	mux.Handle("GET /api/checklist-items", auth.RequireAuth(http.HandlerFunc(h.handleListItems)))
	mux.Handle("GET /api/checklist-items/{id}", auth.RequireAuth(http.HandlerFunc(h.handleGetItem)))
	mux.Handle("POST /api/checklist-items", auth.RequireAdmin(http.HandlerFunc(h.handleCreateItem)))
	mux.Handle("PUT /api/checklist-items/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleUpdateItem)))
	mux.Handle("DELETE /api/checklist-items/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleDeleteItem)))

	mux.Handle("GET /api/checklist-items/apartment/{apartmentID}/checklist-items", auth.RequireAuth(http.HandlerFunc(h.handleListAssignments)))
	mux.Handle("POST /api/checklist-items/apartment/{apartmentID}/checklist-items", auth.RequireAdmin(http.HandlerFunc(h.handleAssignItem)))
	mux.Handle("PUT /api/checklist-items/apartment-checklist-items/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleUpdateAssignment)))
	mux.Handle("DELETE /api/checklist-items/apartment-checklist-items/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleUnassignItem)))

	mux.Handle("GET /api/completions", auth.RequireAuth(http.HandlerFunc(h.handleListCompletions)))
	mux.Handle("POST /api/completions", auth.RequireAuth(http.HandlerFunc(h.handleCreateCompletion)))
	mux.Handle("DELETE /api/completions/{id}", auth.RequireAuth(http.HandlerFunc(h.handleDeleteCompletion)))
}

func (h *ChecklistHandler) handleListItems(w http.ResponseWriter, r *http.Request) {
	var filter domain.ChecklistItemFilter
	if room := r.URL.Query().Get("room_name"); room != "" {
		filter.RoomName = &room
	}

	items, err := h.service.ListItems(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ChecklistHandler) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid checklist item id", http.StatusBadRequest)
		return
	}

	item, err := h.service.GetItemByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ChecklistHandler) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateChecklistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *ChecklistHandler) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid checklist item id", http.StatusBadRequest)
		return
	}

	var req domain.UpdateChecklistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ChecklistHandler) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid checklist item id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ChecklistHandler) handleListAssignments(w http.ResponseWriter, r *http.Request) {
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

func (h *ChecklistHandler) handleAssignItem(w http.ResponseWriter, r *http.Request) {
	apartmentID, ok := pathID(r, "apartmentID")
	if !ok {
		WriteJSONError(w, "Invalid apartment id", http.StatusBadRequest)
		return
	}

	var req domain.AssignChecklistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	assignment, err := h.service.AssignItem(r.Context(), apartmentID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, assignment)
}

func (h *ChecklistHandler) handleUpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid assignment id", http.StatusBadRequest)
		return
	}

	var req domain.UpdateChecklistAssignmentRequest
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

func (h *ChecklistHandler) handleUnassignItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid assignment id", http.StatusBadRequest)
		return
	}

	if err := h.service.UnassignItem(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ChecklistHandler) handleCreateCompletion(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.CreateCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	completion, err := h.service.CreateCompletion(r.Context(), user, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, completion)
}

func (h *ChecklistHandler) handleListCompletions(w http.ResponseWriter, r *http.Request) {
	var filter domain.CompletionFilter
	var ok bool
	if filter.ChecklistItemID, ok = queryInt64(r, "checklist_item_id"); !ok {
		WriteJSONError(w, "Invalid checklist_item_id", http.StatusBadRequest)
		return
	}
	if filter.UserID, ok = queryInt64(r, "user_id"); !ok {
		WriteJSONError(w, "Invalid user_id", http.StatusBadRequest)
		return
	}
	if filter.ApartmentID, ok = queryInt64(r, "apartment_id"); !ok {
		WriteJSONError(w, "Invalid apartment_id", http.StatusBadRequest)
		return
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			WriteJSONError(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	details, err := h.service.ListCompletions(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *ChecklistHandler) handleDeleteCompletion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid completion id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteCompletion(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
