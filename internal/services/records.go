package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/core"
	"fintrack/internal/events"
)

// CreateIncome validates and saves an income, then publishes a
// lifecycle event. ID and creation time are assigned here, never taken
// from the caller.
func (s *RecordService) CreateIncome(ctx context.Context, userID string, in core.Income) (core.Income, error) {
	in.ID = uuid.NewString()
	in.UserID = userID
	in.CreatedAt = time.Now().UTC()

	if err := in.Validate(); err != nil {
		return core.Income{}, err
	}
	if err := s.store.CreateIncome(ctx, in); err != nil {
		return core.Income{}, fmt.Errorf("save income: %w", err)
	}

	s.publishEvent(ctx, events.KindIncome, events.ActionCreated, in.ID, userID)
	return in, nil
}

func (s *RecordService) ListIncomes(ctx context.Context, userID string) ([]core.Income, error) {
	return s.store.ListIncomes(ctx, userID)
}

func (s *RecordService) DeleteIncome(ctx context.Context, userID, id string) error {
	if err := s.store.DeleteIncome(ctx, userID, id); err != nil {
		return err
	}
	s.publishEvent(ctx, events.KindIncome, events.ActionDeleted, id, userID)
	return nil
}

func (s *RecordService) CreateExpense(ctx context.Context, userID string, e core.Expense) (core.Expense, error) {
	e.ID = uuid.NewString()
	e.UserID = userID
	e.CreatedAt = time.Now().UTC()

	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	if err := s.store.CreateExpense(ctx, e); err != nil {
		return core.Expense{}, fmt.Errorf("save expense: %w", err)
	}

	s.publishEvent(ctx, events.KindExpense, events.ActionCreated, e.ID, userID)
	return e, nil
}

func (s *RecordService) ListExpenses(ctx context.Context, userID string) ([]core.Expense, error) {
	return s.store.ListExpenses(ctx, userID)
}

func (s *RecordService) DeleteExpense(ctx context.Context, userID, id string) error {
	if err := s.store.DeleteExpense(ctx, userID, id); err != nil {
		return err
	}
	s.publishEvent(ctx, events.KindExpense, events.ActionDeleted, id, userID)
	return nil
}

// CreateBudget enforces the one-budget-per-period rule. The uniqueness
// check happens inside the store so concurrent creates cannot both win.
func (s *RecordService) CreateBudget(ctx context.Context, userID string, b core.Budget) (core.Budget, error) {
	b.ID = uuid.NewString()
	b.UserID = userID
	b.CreatedAt = time.Now().UTC()

	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}
	if err := s.store.CreateBudget(ctx, b); err != nil {
		return core.Budget{}, err
	}

	s.publishEvent(ctx, events.KindBudget, events.ActionCreated, b.ID, userID)
	return b, nil
}

// ListBudgets returns the user's budgets, optionally narrowed to one
// period. Zero year and month mean no filter.
func (s *RecordService) ListBudgets(ctx context.Context, userID string, year, month int) ([]core.Budget, error) {
	return s.store.ListBudgets(ctx, userID, year, month)
}

// UpdateBudget rewrites a budget's category, limit and period. Moving it
// onto an occupied (category, year, month) slot fails the same way a
// duplicate create does.
func (s *RecordService) UpdateBudget(ctx context.Context, userID, id string, b core.Budget) (core.Budget, error) {
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}

	updated, err := s.store.UpdateBudget(ctx, userID, id, b)
	if err != nil {
		return core.Budget{}, err
	}

	s.publishEvent(ctx, events.KindBudget, events.ActionUpdated, id, userID)
	return updated, nil
}

func (s *RecordService) DeleteBudget(ctx context.Context, userID, id string) error {
	if err := s.store.DeleteBudget(ctx, userID, id); err != nil {
		return err
	}
	s.publishEvent(ctx, events.KindBudget, events.ActionDeleted, id, userID)
	return nil
}

func (s *RecordService) CreateGoal(ctx context.Context, userID string, g core.SavingsGoal) (core.SavingsGoal, error) {
	g.ID = uuid.NewString()
	g.UserID = userID
	g.CreatedAt = time.Now().UTC()

	if err := g.Validate(); err != nil {
		return core.SavingsGoal{}, err
	}
	if err := s.store.CreateGoal(ctx, g); err != nil {
		return core.SavingsGoal{}, fmt.Errorf("save savings goal: %w", err)
	}

	s.publishEvent(ctx, events.KindSavingsGoal, events.ActionCreated, g.ID, userID)
	return g, nil
}

func (s *RecordService) ListGoals(ctx context.Context, userID string) ([]core.SavingsGoal, error) {
	return s.store.ListGoals(ctx, userID)
}

// UpdateGoalProgress replaces the saved amount on a goal. Only the
// current amount is writable after creation.
func (s *RecordService) UpdateGoalProgress(ctx context.Context, userID, id string, current core.Money) (core.SavingsGoal, error) {
	if current.Cents < 0 {
		return core.SavingsGoal{}, core.ErrNegativeAmount
	}

	updated, err := s.store.UpdateGoalProgress(ctx, userID, id, current)
	if err != nil {
		return core.SavingsGoal{}, err
	}

	s.publishEvent(ctx, events.KindSavingsGoal, events.ActionUpdated, id, userID)
	return updated, nil
}

func (s *RecordService) DeleteGoal(ctx context.Context, userID, id string) error {
	if err := s.store.DeleteGoal(ctx, userID, id); err != nil {
		return err
	}
	s.publishEvent(ctx, events.KindSavingsGoal, events.ActionDeleted, id, userID)
	return nil
}

// SaveContact stores a contact form submission. No event is published;
// contact messages are not financial records.
func (s *RecordService) SaveContact(ctx context.Context, m core.ContactMessage) (core.ContactMessage, error) {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()

	if err := m.Validate(); err != nil {
		return core.ContactMessage{}, err
	}
	if err := s.store.SaveContactMessage(ctx, m); err != nil {
		return core.ContactMessage{}, fmt.Errorf("save contact message: %w", err)
	}
	return m, nil
}
