package http

import (
	"net/http"

	"fintrack/internal/auth"
)

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	snap, err := s.records.Dashboard(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
