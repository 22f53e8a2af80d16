package http

import (
	"net/http"

	"fintrack/internal/auth"
	"fintrack/internal/core"
)

type goalRequest struct {
	Title         string     `json:"title"`
	TargetAmount  core.Money `json:"target_amount"`
	CurrentAmount core.Money `json:"current_amount"`
	Deadline      core.Date  `json:"deadline"`
}

// goalProgressRequest carries the only field writable after creation.
type goalProgressRequest struct {
	CurrentAmount core.Money `json:"current_amount"`
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req goalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.records.CreateGoal(r.Context(), userID, core.SavingsGoal{
		Title:         req.Title,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	goals, err := s.records.ListGoals(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if goals == nil {
		goals = []core.SavingsGoal{}
	}
	writeJSON(w, http.StatusOK, goals)
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req goalProgressRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := s.records.UpdateGoalProgress(r.Context(), userID, r.PathValue("id"), req.CurrentAmount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	if err := s.records.DeleteGoal(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
