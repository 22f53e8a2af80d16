package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/core"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// validationErrors are the core sentinels that mean the caller sent a
// bad request.
var validationErrors = []error{
	core.ErrInvalidAmount,
	core.ErrInvalidCategory,
	core.ErrInvalidDate,
	core.ErrInvalidMonth,
	core.ErrInvalidYear,
	core.ErrEmptySource,
	core.ErrEmptyTitle,
	core.ErrNegativeAmount,
	core.ErrEmptyMessage,
	core.ErrEmailTaken,
}

// writeError maps core sentinels onto HTTP statuses. Anything
// unrecognized is a 500 and gets logged with its cause; the cause
// itself never leaks to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: core.ErrNotFound.Error()})
	case errors.Is(err, core.ErrBudgetExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: core.ErrBudgetExists.Error()})
	default:
		for _, sentinel := range validationErrors {
			if errors.Is(err, sentinel) {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: sentinel.Error()})
				return
			}
		}
		slog.ErrorContext(r.Context(), "Request failed",
			"method", r.Method, "url", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// decodeJSON reads the request body into dst, capped at 1 MiB.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// parseYearMonth extracts year and month from query parameters, falling
// back to the current UTC year and month.
func parseYearMonth(r *http.Request) (year, month int) {
	now := time.Now().UTC()
	year = now.Year()
	month = int(now.Month())

	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			month = m
		}
	}

	return year, month
}
