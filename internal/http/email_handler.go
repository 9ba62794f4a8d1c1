package http

import (
	"encoding/json"
	"net/http"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/internal/http/middleware"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

type EmailHandler struct {
	service domain.EmailService
	logger  logger.Logger
}

func NewEmailHandler(service domain.EmailService, logger logger.Logger) *EmailHandler {
	return &EmailHandler{
		service: service,
		logger:  logger,
	}
}

func (h *EmailHandler) RegisterRoutes(mux *http.ServeMux, auth *middleware.AuthMiddleware) {
	mux.Handle("POST /api/email/send", auth.RequireAuth(http.HandlerFunc(h.handleSend)))
}

func (h *EmailHandler) handleSend(w http.ResponseWriter, r *http.Request) {
	var req domain.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	configured, err := h.service.Send(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if !configured {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "skipped",
			"message": "Email service not configured",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
