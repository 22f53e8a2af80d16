package core

import "testing"

func expense(cents int64, cat ExpenseCategory, d Date) Expense {
	return Expense{Amount: Money{Cents: cents}, Category: cat, Date: d}
}

func TestSumEmptyIsZero(t *testing.T) {
	if got := SumExpenses(nil); got.Cents != 0 {
		t.Fatalf("SumExpenses(nil) = %d, want 0", got.Cents)
	}
	if got := SumIncomes(nil); got.Cents != 0 {
		t.Fatalf("SumIncomes(nil) = %d, want 0", got.Cents)
	}
}

func TestFilterMonth(t *testing.T) {
	expenses := []Expense{
		expense(100, CategoryFood, NewDate(2025, 3, 1)),
		expense(200, CategoryFood, NewDate(2025, 3, 31)),
		expense(300, CategoryBills, NewDate(2025, 4, 1)),
		expense(400, CategoryFood, NewDate(2024, 3, 10)),
	}

	march := FilterMonth(expenses, 2025, 3)
	if len(march) != 2 {
		t.Fatalf("got %d expenses, want 2", len(march))
	}

	// Monthly slice never sums above the full collection.
	if SumExpenses(march).Cents > SumExpenses(expenses).Cents {
		t.Fatal("monthly sum exceeds total sum")
	}
}

func TestBalanceAndMonthlyScenario(t *testing.T) {
	today := Today()
	incomes := []Income{{Amount: Money{Cents: 100000}, Source: "job", Category: IncomeSalary, Date: today}}
	expenses := []Expense{expense(30000, CategoryFood, today)}

	if got := Balance(incomes, expenses); got.Cents != 70000 {
		t.Fatalf("balance = %d, want 70000", got.Cents)
	}
	monthly := SumExpenses(FilterMonth(expenses, today.Time.Year(), int(today.Time.Month())))
	if monthly.Cents != 30000 {
		t.Fatalf("monthly expenses = %d, want 30000", monthly.Cents)
	}
}

func TestSpentByCategory(t *testing.T) {
	expenses := []Expense{
		expense(1000, CategoryFood, NewDate(2025, 5, 3)),
		expense(2000, CategoryFood, NewDate(2025, 5, 20)),
		expense(5000, CategoryBills, NewDate(2025, 5, 4)),
		expense(9000, CategoryFood, NewDate(2025, 6, 1)),
	}
	if got := SpentByCategory(expenses, CategoryFood, 2025, 5); got.Cents != 3000 {
		t.Fatalf("got %d, want 3000", got.Cents)
	}
	if got := SpentByCategory(expenses, CategoryHealthcare, 2025, 5); got.Cents != 0 {
		t.Fatalf("got %d, want 0", got.Cents)
	}
}

func TestBudgetStatusOverBudget(t *testing.T) {
	b := Budget{Category: CategoryFood, MonthlyLimit: Money{Cents: 20000}, Year: 2025, Month: 5}
	expenses := []Expense{
		expense(15000, CategoryFood, NewDate(2025, 5, 2)),
		expense(10000, CategoryFood, NewDate(2025, 5, 20)),
	}

	st := b.Status(expenses)
	if st.Spent.Cents != 25000 {
		t.Fatalf("spent = %d, want 25000", st.Spent.Cents)
	}
	if !st.IsOverBudget {
		t.Fatal("expected over budget")
	}
	if st.Remaining.Cents != 5000 {
		t.Fatalf("overage = %d, want 5000", st.Remaining.Cents)
	}
	if st.Percentage != 125 {
		t.Fatalf("percentage = %v, want 125", st.Percentage)
	}
	if st.BarPercentage() != 100 {
		t.Fatalf("bar percentage = %v, want capped 100", st.BarPercentage())
	}
}

func TestBudgetStatusUnderBudget(t *testing.T) {
	b := Budget{Category: CategoryBills, MonthlyLimit: Money{Cents: 10000}, Year: 2025, Month: 5}
	expenses := []Expense{expense(4000, CategoryBills, NewDate(2025, 5, 9))}

	st := b.Status(expenses)
	if st.IsOverBudget {
		t.Fatal("should not be over budget")
	}
	if st.Remaining.Cents != 6000 {
		t.Fatalf("remaining = %d, want 6000", st.Remaining.Cents)
	}
	if st.Percentage != 40 {
		t.Fatalf("percentage = %v, want 40", st.Percentage)
	}
}

func TestBudgetStatusZeroLimit(t *testing.T) {
	// Division by a zero limit must never fault; it reads as 0%.
	b := Budget{Category: CategoryFood, Year: 2025, Month: 5}

	st := b.Status(nil)
	if st.Percentage != 0 || st.IsOverBudget {
		t.Fatalf("zero limit with no spending: %+v", st)
	}

	st = b.Status([]Expense{expense(100, CategoryFood, NewDate(2025, 5, 1))})
	if st.Percentage != 0 {
		t.Fatalf("percentage = %v, want 0", st.Percentage)
	}
	if !st.IsOverBudget || st.Remaining.Cents != 100 {
		t.Fatalf("spending against zero limit is over budget with overage=spent: %+v", st)
	}
}

func TestSavingsStatus(t *testing.T) {
	today := NewDate(2025, 6, 15)

	complete := SavingsGoal{TargetAmount: Money{Cents: 100000}, CurrentAmount: Money{Cents: 100000}, Deadline: NewDate(2025, 12, 31)}
	st := complete.Status(today)
	if !st.IsComplete || st.Percentage != 100 {
		t.Fatalf("got %+v, want complete at 100%%", st)
	}

	expired := SavingsGoal{TargetAmount: Money{Cents: 100000}, CurrentAmount: Money{Cents: 5000}, Deadline: NewDate(2025, 6, 14)}
	st = expired.Status(today)
	if st.DaysLeft > 0 {
		t.Fatalf("days left = %d, want non-positive for passed deadline", st.DaysLeft)
	}

	zeroTarget := SavingsGoal{CurrentAmount: Money{Cents: 500}, Deadline: NewDate(2025, 12, 31)}
	if got := zeroTarget.Status(today).Percentage; got != 0 {
		t.Fatalf("zero target percentage = %v, want 0", got)
	}
}

func TestSavingsStatusMonotonic(t *testing.T) {
	today := Today()
	goal := SavingsGoal{TargetAmount: Money{Cents: 77700}, Deadline: NewDate(2030, 1, 1)}

	prev := -1.0
	for cents := int64(0); cents <= 100000; cents += 2500 {
		goal.CurrentAmount = Money{Cents: cents}
		pct := goal.Status(today).Percentage
		if pct < prev {
			t.Fatalf("percentage decreased: %v after %v at %d cents", pct, prev, cents)
		}
		prev = pct
	}
}

func TestSummarize(t *testing.T) {
	today := Today()
	year, month := today.Time.Year(), int(today.Time.Month())

	incomes := []Income{
		{Amount: Money{Cents: 500000}, Source: "job", Category: IncomeSalary, Date: today},
		{Amount: Money{Cents: 120000}, Source: "side", Category: IncomeFreelance, Date: today},
	}
	expenses := []Expense{
		expense(80000, CategoryHousing, today),
		expense(12000, CategoryFood, NewDate(2000, 1, 15)), // outside current month
	}
	goals := []SavingsGoal{
		{Title: "a", TargetAmount: Money{Cents: 100000}, CurrentAmount: Money{Cents: 25000}, Deadline: today},
		{Title: "b", TargetAmount: Money{Cents: 50000}, CurrentAmount: Money{Cents: 50000}, Deadline: today},
	}

	snap := Summarize(incomes, expenses, goals, year, month)
	if snap.TotalIncome.Cents != 620000 {
		t.Fatalf("total income = %d", snap.TotalIncome.Cents)
	}
	if snap.TotalExpenses.Cents != 92000 {
		t.Fatalf("total expenses = %d", snap.TotalExpenses.Cents)
	}
	if snap.Balance.Cents != 528000 {
		t.Fatalf("balance = %d", snap.Balance.Cents)
	}
	if snap.MonthlyExpenses.Cents != 80000 {
		t.Fatalf("monthly expenses = %d", snap.MonthlyExpenses.Cents)
	}
	if snap.SavingsGoalsCount != 2 {
		t.Fatalf("goals count = %d", snap.SavingsGoalsCount)
	}
	if snap.TotalSavingsCurrent.Cents != 75000 || snap.TotalSavingsTarget.Cents != 150000 {
		t.Fatalf("savings totals = %d / %d", snap.TotalSavingsCurrent.Cents, snap.TotalSavingsTarget.Cents)
	}
}
