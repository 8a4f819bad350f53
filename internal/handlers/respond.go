package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/lightbnb-gateway/internal/logger"
	"github.com/sbilibin2017/lightbnb-gateway/internal/services"
	"github.com/sbilibin2017/lightbnb-gateway/internal/sqlerr"
	"github.com/sbilibin2017/lightbnb-gateway/internal/validation"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Not found
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

// decodeAndValidate reads the JSON body into payload and validates it.
// On failure it writes a 400 and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, payload validation.Validatable) bool {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeBadRequest(w, "Invalid request body")
		return false
	}
	if err := payload.Validate(); err != nil {
		writeBadRequest(w, validation.Message(err))
		return false
	}
	return true
}

// writeError maps a service or repository failure to an HTTP status.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "Email already exists"})
	case errors.Is(err, sqlerr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, sqlerr.ErrConstraintViolation):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "Conflicts with existing data"})
	case errors.Is(err, sqlerr.ErrConnection):
		logger.Log.Errorw("database unavailable", "err", err)
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "Database unavailable"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// queryInt64 parses an optional integer query parameter.
func queryInt64(r *http.Request, key string) (*int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// queryFloat64 parses an optional decimal query parameter.
func queryFloat64(r *http.Request, key string) (*float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// queryLimit parses the optional limit parameter. Zero means the default.
func queryLimit(r *http.Request) (int, error) {
	v, err := queryInt64(r, "limit")
	if err != nil || v == nil {
		return 0, err
	}
	if *v < 0 {
		return 0, strconv.ErrRange
	}
	return int(*v), nil
}
