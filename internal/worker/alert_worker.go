package worker

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/core"
	"fintrack/internal/events"
)

// ExpenseReader is the storage surface the alert worker needs.
type ExpenseReader interface {
	ListExpenses(ctx context.Context, userID string) ([]core.Expense, error)
	ListBudgets(ctx context.Context, userID string, year, month int) ([]core.Budget, error)
}

// AlertWorker watches record events and logs when an expense pushes a
// budget over its monthly limit.
type AlertWorker struct {
	storage ExpenseReader
}

func NewAlertWorker(storage ExpenseReader) *AlertWorker {
	return &AlertWorker{storage: storage}
}

// HandleRecordEvent processes a single record event from AMQP.
// Only expense creations can trip a budget; everything else is
// acknowledged and skipped.
func (w *AlertWorker) HandleRecordEvent(ctx context.Context, ev *events.RecordEvent) error {
	slog.InfoContext(ctx, "Processing record event",
		"kind", ev.Kind,
		"action", ev.Action,
		"record_id", ev.RecordID)

	if ev.Kind != events.KindExpense || ev.Action != events.ActionCreated {
		return nil
	}

	expenses, err := w.storage.ListExpenses(ctx, ev.UserID)
	if err != nil {
		return fmt.Errorf("list expenses: %w", err)
	}

	var expense core.Expense
	found := false
	for _, e := range expenses {
		if e.ID == ev.RecordID {
			expense = e
			found = true
			break
		}
	}
	if !found {
		// The record was deleted between publish and consume. Nothing
		// to alert on, and requeueing would never succeed.
		slog.WarnContext(ctx, "Expense no longer exists, skipping",
			"record_id", ev.RecordID)
		return nil
	}

	year, month := expense.Date.Year(), int(expense.Date.Month())
	budgets, err := w.storage.ListBudgets(ctx, ev.UserID, year, month)
	if err != nil {
		return fmt.Errorf("list budgets: %w", err)
	}

	for _, b := range budgets {
		if b.Category != expense.Category {
			continue
		}
		st := b.Status(expenses)
		if st.IsOverBudget {
			slog.WarnContext(ctx, "Budget exceeded",
				"user_id", ev.UserID,
				"category", b.Category,
				"year", b.Year,
				"month", b.Month,
				"limit", b.MonthlyLimit.Float(),
				"spent", st.Spent.Float(),
				"overage", st.Remaining.Float())
		} else {
			slog.InfoContext(ctx, "Budget within limit",
				"user_id", ev.UserID,
				"category", b.Category,
				"spent", st.Spent.Float(),
				"percentage", st.Percentage)
		}
	}

	return nil
}
