package core

// Aggregation functions are pure: deterministic for the same input
// slices, no side effects, no I/O.

// BudgetStatus compares spending in a budget's period against its limit.
// Percentage is raw and uncapped; Remaining holds the amount left under
// the limit, or the overage when IsOverBudget.
type BudgetStatus struct {
	Spent        Money   `json:"spent"`
	Limit        Money   `json:"limit"`
	Percentage   float64 `json:"percentage"`
	Remaining    Money   `json:"remaining"`
	IsOverBudget bool    `json:"is_over_budget"`
}

// SavingsStatus describes progress toward a savings goal. DaysLeft is
// the raw signed day count; zero or negative means the deadline passed.
type SavingsStatus struct {
	Percentage float64 `json:"percentage"`
	IsComplete bool    `json:"is_complete"`
	DaysLeft   int     `json:"days_left"`
}

// SumIncomes totals income amounts; an empty slice sums to zero.
func SumIncomes(incomes []Income) Money {
	var total Money
	for _, i := range incomes {
		total = total.Add(i.Amount)
	}
	return total
}

// SumExpenses totals expense amounts; an empty slice sums to zero.
func SumExpenses(expenses []Expense) Money {
	var total Money
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// FilterMonth keeps expenses whose date falls within the calendar month
// (year, month). Dates are naive; no timezone shifting happens.
func FilterMonth(expenses []Expense, year, month int) []Expense {
	var out []Expense
	for _, e := range expenses {
		if e.Date.InMonth(year, month) {
			out = append(out, e)
		}
	}
	return out
}

// SpentByCategory totals the expenses of one category within one period.
func SpentByCategory(expenses []Expense, category ExpenseCategory, year, month int) Money {
	var total Money
	for _, e := range FilterMonth(expenses, year, month) {
		if e.Category == category {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Balance is total income minus total expenses. It may be negative.
func Balance(incomes []Income, expenses []Expense) Money {
	return SumIncomes(incomes).Sub(SumExpenses(expenses))
}

// Status compares spending against the budget's limit for its period.
// A zero limit yields 0% rather than a fault: it reads as "no budget
// set", though any spending against it still counts as over budget.
func (b Budget) Status(expenses []Expense) BudgetStatus {
	spent := SpentByCategory(expenses, b.Category, b.Year, b.Month)
	limit := b.MonthlyLimit

	st := BudgetStatus{
		Spent:        spent,
		Limit:        limit,
		IsOverBudget: spent.Cents > limit.Cents,
	}
	if limit.Cents > 0 {
		st.Percentage = float64(spent.Cents) / float64(limit.Cents) * 100
	}
	if st.IsOverBudget {
		st.Remaining = spent.Sub(limit)
	} else {
		st.Remaining = limit.Sub(spent)
	}
	return st
}

// BarPercentage caps the raw percentage at 100 for progress-bar display.
func (s BudgetStatus) BarPercentage() float64 {
	if s.Percentage > 100 {
		return 100
	}
	return s.Percentage
}

// Status reports progress toward the goal as of the given day.
// A zero target yields 0% by definition.
func (g SavingsGoal) Status(today Date) SavingsStatus {
	st := SavingsStatus{
		IsComplete: g.CurrentAmount.Cents >= g.TargetAmount.Cents,
		DaysLeft:   g.Deadline.DaysUntil(today),
	}
	if g.TargetAmount.Cents > 0 {
		st.Percentage = float64(g.CurrentAmount.Cents) / float64(g.TargetAmount.Cents) * 100
	}
	return st
}
