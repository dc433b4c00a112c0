package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"focustimer/internal/models"
	"focustimer/internal/services"

	json "github.com/goccy/go-json"
)

const (
	maxRequestBodySize = 1 << 20  // 1 MB
	maxImportBodySize  = 10 << 20 // 10 MB
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeRaw(w, status, gson)
}

func writeRaw(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// statusFor maps a service error onto the HTTP status the API reports.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateSession):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidSession), errors.Is(err, services.ErrInvalidSettings):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrMalformedBackup):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		writeError(w, status, "Internal Server Error")
		return
	}
	writeError(w, status, err.Error())
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	return json.NewDecoder(r.Body).Decode(v)
}

// referenceTime reads the optional ?at= RFC 3339 instant, defaulting to now.
func referenceTime(r *http.Request, now func() time.Time) (time.Time, error) {
	at := r.URL.Query().Get("at")
	if at == "" {
		return now(), nil
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid at parameter: %w", err)
	}
	return t, nil
}
