package http

import (
	"net/http"

	"github.com/sparkleclean/sparkle/pkg/logger"
)

// RootHandler serves the service metadata root and the health probe.
type RootHandler struct {
	version string
	logger  logger.Logger
}

func NewRootHandler(version string, logger logger.Logger) *RootHandler {
	return &RootHandler{
		version: version,
		logger:  logger,
	}
}

func (h *RootHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("GET /api/health", h.handleHealth)
}

func (h *RootHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "sparkle-api",
		"version": h.version,
	})
}

func (h *RootHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
