package http

import (
	"encoding/json"
	"net/http"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/internal/http/middleware"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

// UserHandler exposes the admin-only user roster endpoints.
type UserHandler struct {
	service domain.UserService
	logger  logger.Logger
}

func NewUserHandler(service domain.UserService, logger logger.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, auth *middleware.AuthMiddleware) {
	mux.Handle("GET /api/users", auth.RequireAdmin(http.HandlerFunc(h.handleList)))
	mux.Handle("POST /api/users", auth.RequireAdmin(http.HandlerFunc(h.handleCreate)))
	mux.Handle("POST /api/users/invite", auth.RequireAdmin(http.HandlerFunc(h.handleInvite)))
	mux.Handle("PUT /api/users/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /api/users/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleDelete)))
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	var filter domain.UserFilter
	if raw := r.URL.Query().Get("role"); raw != "" {
		role := domain.UserRole(raw)
		if err := role.Validate(); err != nil {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		filter.Role = &role
	}

	users, err := h.service.ListUsers(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) handleInvite(w http.ResponseWriter, r *http.Request) {
	var req domain.InviteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.service.InviteUser(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	var req domain.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	actor, _ := middleware.UserFromContext(r.Context())
	if err := h.service.DeleteUser(r.Context(), id, actor); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
