package http

import (
	"net/http"
	"strconv"
	"strings"

	"fintrack/internal/auth"
	"fintrack/internal/core"
)

type budgetRequest struct {
	Category     core.ExpenseCategory `json:"category"`
	MonthlyLimit core.Money           `json:"monthly_limit"`
	Year         int                  `json:"year"`
	Month        int                  `json:"month"`
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req budgetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.records.CreateBudget(r.Context(), userID, core.Budget{
		Category:     req.Category,
		MonthlyLimit: req.MonthlyLimit,
		Year:         req.Year,
		Month:        req.Month,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleListBudgets returns the user's budgets, narrowed to one period
// when year and month query parameters are present. Unlike the status
// report, the bare list applies no default period.
func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var year, month int
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

	budgets, err := s.records.ListBudgets(r.Context(), userID, year, month)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if budgets == nil {
		budgets = []core.Budget{}
	}
	writeJSON(w, http.StatusOK, budgets)
}

func (s *Server) handleBudgetStatus(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	year, month := parseYearMonth(r)

	report, err := s.records.BudgetReport(r.Context(), userID, year, month)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req budgetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := s.records.UpdateBudget(r.Context(), userID, r.PathValue("id"), core.Budget{
		Category:     req.Category,
		MonthlyLimit: req.MonthlyLimit,
		Year:         req.Year,
		Month:        req.Month,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	if err := s.records.DeleteBudget(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
