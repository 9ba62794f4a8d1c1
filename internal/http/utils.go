package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sparkleclean/sparkle/internal/domain"
)

// WriteJSONError writes a JSON error response with the given message and
// status code, formatted as {"error": "message"}.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// pathID parses the named path segment as a positive integer id.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt64 parses an optional integer query parameter, returning nil when
// the parameter is absent. The second return is false when the value is
// present but malformed.
func queryInt64(r *http.Request, name string) (*int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// serviceErrorStatus maps domain errors to HTTP status codes. Anything not
// recognized is a 500.
func serviceErrorStatus(err error) int {
	switch err.(type) {
	case *domain.ErrInvalidRequest:
		return http.StatusBadRequest
	case *domain.ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *domain.ErrSelfDelete, *domain.ErrNotSessionOwner:
		return http.StatusForbidden
	case *domain.ErrUserNotFound,
		*domain.ErrPropertyNotFound,
		*domain.ErrApartmentNotFound,
		*domain.ErrRoomNotFound,
		*domain.ErrChecklistItemNotFound,
		*domain.ErrChecklistAssignmentNotFound,
		*domain.ErrCompletionNotFound,
		*domain.ErrSupplyNotFound,
		*domain.ErrSupplyAssignmentNotFound,
		*domain.ErrSupplyAlertNotFound,
		*domain.ErrWorkSessionNotFound:
		return http.StatusNotFound
	case *domain.ErrEmailExists, *domain.ErrChecklistAlreadyAssigned, *domain.ErrSupplyAlreadyAssigned:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeServiceError renders a domain error with its mapped status. Internal
// errors get a generic message so wrapped detail stays out of responses.
func writeServiceError(w http.ResponseWriter, err error) {
	status := serviceErrorStatus(err)
	if status == http.StatusInternalServerError {
		WriteJSONError(w, "Internal server error", status)
		return
	}
	WriteJSONError(w, err.Error(), status)
}
