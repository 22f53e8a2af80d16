package worker

import (
	"context"
	"testing"

	"fintrack/internal/core"
	"fintrack/internal/events"
)

type fakeReader struct {
	expenses []core.Expense
	budgets  []core.Budget

	expenseCalls int
	budgetCalls  int
}

func (f *fakeReader) ListExpenses(_ context.Context, _ string) ([]core.Expense, error) {
	f.expenseCalls++
	return f.expenses, nil
}

func (f *fakeReader) ListBudgets(_ context.Context, _ string, _, _ int) ([]core.Budget, error) {
	f.budgetCalls++
	return f.budgets, nil
}

func TestHandleRecordEventSkipsNonExpense(t *testing.T) {
	reader := &fakeReader{}
	w := NewAlertWorker(reader)

	cases := []struct {
		name string
		ev   *events.RecordEvent
	}{
		{"income created", events.NewRecordEvent(events.KindIncome, events.ActionCreated, "r1", "u1")},
		{"expense deleted", events.NewRecordEvent(events.KindExpense, events.ActionDeleted, "r1", "u1")},
		{"budget updated", events.NewRecordEvent(events.KindBudget, events.ActionUpdated, "r1", "u1")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := w.HandleRecordEvent(context.Background(), tc.ev); err != nil {
				t.Fatalf("HandleRecordEvent() error = %v", err)
			}
		})
	}

	if reader.expenseCalls != 0 {
		t.Fatalf("storage should not be queried for skipped events, got %d calls", reader.expenseCalls)
	}
}

func TestHandleRecordEventMissingExpense(t *testing.T) {
	reader := &fakeReader{}
	w := NewAlertWorker(reader)

	ev := events.NewRecordEvent(events.KindExpense, events.ActionCreated, "gone", "u1")
	if err := w.HandleRecordEvent(context.Background(), ev); err != nil {
		t.Fatalf("missing expense should be skipped, got error: %v", err)
	}
	if reader.budgetCalls != 0 {
		t.Fatal("budgets should not be loaded when the expense is gone")
	}
}

func TestHandleRecordEventOverBudget(t *testing.T) {
	reader := &fakeReader{
		expenses: []core.Expense{
			{
				ID:       "e1",
				UserID:   "u1",
				Amount:   core.Money{Cents: 25000},
				Category: core.CategoryFood,
				Date:     core.NewDate(2025, 3, 10),
			},
		},
		budgets: []core.Budget{
			{
				ID:           "b1",
				UserID:       "u1",
				Category:     core.CategoryFood,
				MonthlyLimit: core.Money{Cents: 20000},
				Year:         2025,
				Month:        3,
			},
		},
	}
	w := NewAlertWorker(reader)

	ev := events.NewRecordEvent(events.KindExpense, events.ActionCreated, "e1", "u1")
	if err := w.HandleRecordEvent(context.Background(), ev); err != nil {
		t.Fatalf("HandleRecordEvent() error = %v", err)
	}
	if reader.budgetCalls != 1 {
		t.Fatalf("budgets should be loaded once, got %d calls", reader.budgetCalls)
	}
}
