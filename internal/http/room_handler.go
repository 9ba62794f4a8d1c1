package http

import (
	"encoding/json"
	"net/http"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/internal/http/middleware"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

type RoomHandler struct {
	service domain.RoomService
	logger  logger.Logger
}

func NewRoomHandler(service domain.RoomService, logger logger.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		logger:  logger,
	}
}

func (h *RoomHandler) RegisterRoutes(mux *http.ServeMux, auth *middleware.AuthMiddleware) {
	mux.Handle("GET /api/rooms", auth.RequireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("GET /api/rooms/{id}", auth.RequireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("POST /api/rooms", auth.RequireAdmin(http.HandlerFunc(h.handleCreate)))
	mux.Handle("PUT /api/rooms/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /api/rooms/{id}", auth.RequireAdmin(http.HandlerFunc(h.handleDelete)))
}

func (h *RoomHandler) handleList(w http.ResponseWriter, r *http.Request) {
	apartmentID, ok := queryInt64(r, "apartment_id")
	if !ok {
		WriteJSONError(w, "Invalid apartment_id", http.StatusBadRequest)
		return
	}

	rooms, err := h.service.ListRooms(r.Context(), domain.RoomFilter{ApartmentID: apartmentID})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid room id", http.StatusBadRequest)
		return
	}

	room, err := h.service.GetRoomByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *RoomHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid room id", http.StatusBadRequest)
		return
	}

	var req domain.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteJSONError(w, "Invalid room id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteRoom(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
