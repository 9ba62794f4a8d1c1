package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/internal/http/middleware"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

type WorkSessionHandler struct {
	service domain.WorkSessionService
	logger  logger.Logger
}

func NewWorkSessionHandler(service domain.WorkSessionService, logger logger.Logger) *WorkSessionHandler {
	return &WorkSessionHandler{
		service: service,
		logger:  logger,
	}
}

func (h *WorkSessionHandler) RegisterRoutes(mux *http.ServeMux, auth *middleware.AuthMiddleware) {
	mux.Handle("GET /api/work-sessions", auth.RequireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("GET /api/work-sessions/{id}", auth.RequireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("POST /api/work-sessions", auth.RequireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("PUT /api/work-sessions/{id}", auth.RequireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /api/work-sessions/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleDelete)))
}

func (h *WorkSessionHandler) handleList(w http.ResponseWriter, r *http.Request) {
	var filter domain.WorkSessionFilter
	var ok bool
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

	sessions, err := h.service.ListSessions(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (h *WorkSessionHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid work session id", http.StatusBadRequest)
		return
	}

	session, err := h.service.GetSessionByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *WorkSessionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.CreateWorkSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.service.CreateSession(r.Context(), user, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *WorkSessionHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid work session id", http.StatusBadRequest)
		return
	}

	var req domain.UpdateWorkSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.service.UpdateSession(r.Context(), id, user, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *WorkSessionHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid work session id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteSession(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
