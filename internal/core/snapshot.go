package core

// DashboardSnapshot is the composed summary returned by the dashboard
// endpoint. It is recomputed on every call from current records.
type DashboardSnapshot struct {
	TotalIncome         Money `json:"total_income"`
	TotalExpenses       Money `json:"total_expenses"`
	Balance             Money `json:"balance"`
	MonthlyExpenses     Money `json:"monthly_expenses"`
	SavingsGoalsCount   int   `json:"savings_goals_count"`
	TotalSavingsCurrent Money `json:"total_savings_current"`
	TotalSavingsTarget  Money `json:"total_savings_target"`
}

// Summarize derives the dashboard snapshot from already-fetched
// per-user collections. The monthly figure covers (year, month).
func Summarize(incomes []Income, expenses []Expense, goals []SavingsGoal, year, month int) DashboardSnapshot {
	snap := DashboardSnapshot{
		TotalIncome:       SumIncomes(incomes),
		TotalExpenses:     SumExpenses(expenses),
		MonthlyExpenses:   SumExpenses(FilterMonth(expenses, year, month)),
		SavingsGoalsCount: len(goals),
	}
	snap.Balance = snap.TotalIncome.Sub(snap.TotalExpenses)
	for _, g := range goals {
		snap.TotalSavingsCurrent = snap.TotalSavingsCurrent.Add(g.CurrentAmount)
		snap.TotalSavingsTarget = snap.TotalSavingsTarget.Add(g.TargetAmount)
	}
	return snap
}
