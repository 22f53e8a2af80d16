package http

import (
	"net/http"

	"fintrack/internal/auth"
	"fintrack/internal/core"
)

type expenseRequest struct {
	Amount      core.Money           `json:"amount"`
	Category    core.ExpenseCategory `json:"category"`
	Date        core.Date            `json:"date"`
	Description string               `json:"description"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req expenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.records.CreateExpense(r.Context(), userID, core.Expense{
		Amount:      req.Amount,
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

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	expenses, err := s.records.ListExpenses(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if expenses == nil {
		expenses = []core.Expense{}
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	if err := s.records.DeleteExpense(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
