package http

import (
	"net/http"

	"fintrack/internal/auth"
	"fintrack/internal/core"
)

type incomeRequest struct {
	Amount      core.Money          `json:"amount"`
	Source      string              `json:"source"`
	Category    core.IncomeCategory `json:"category"`
	Date        core.Date           `json:"date"`
	Description string              `json:"description"`
}

func (s *Server) handleCreateIncome(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req incomeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.records.CreateIncome(r.Context(), userID, core.Income{
		Amount:      req.Amount,
		Source:      req.Source,
		Category:    req.Category,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListIncomes(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	incomes, err := s.records.ListIncomes(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if incomes == nil {
		incomes = []core.Income{}
	}
	writeJSON(w, http.StatusOK, incomes)
}

func (s *Server) handleDeleteIncome(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	if err := s.records.DeleteIncome(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
