package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/core"
)

// BudgetWithStatus pairs a budget with its computed spending status.
type BudgetWithStatus struct {
	core.Budget
	Status core.BudgetStatus `json:"status"`
}

// Dashboard assembles the summary snapshot for the current UTC month.
// The three collections load concurrently; the arithmetic itself stays
// in core and touches no I/O.
func (s *RecordService) Dashboard(ctx context.Context, userID string) (core.DashboardSnapshot, error) {
	var (
		incomes  []core.Income
		expenses []core.Expense
		goals    []core.SavingsGoal
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = s.store.ListIncomes(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.store.ListExpenses(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.store.ListGoals(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return core.DashboardSnapshot{}, fmt.Errorf("load dashboard data: %w", err)
	}

	now := time.Now().UTC()
	return core.Summarize(incomes, expenses, goals, now.Year(), int(now.Month())), nil
}

// BudgetReport computes the spending status of every budget in the
// given period.
func (s *RecordService) BudgetReport(ctx context.Context, userID string, year, month int) ([]BudgetWithStatus, error) {
	if year < 1 {
		return nil, core.ErrInvalidYear
	}
	if month < 1 || month > 12 {
		return nil, core.ErrInvalidMonth
	}

	var (
		budgets  []core.Budget
		expenses []core.Expense
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgets, err = s.store.ListBudgets(ctx, userID, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.store.ListExpenses(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load budget report data: %w", err)
	}

	report := make([]BudgetWithStatus, 0, len(budgets))
	for _, b := range budgets {
		report = append(report, BudgetWithStatus{
			Budget: b,
			Status: b.Status(expenses),
		})
	}
	return report, nil
}
