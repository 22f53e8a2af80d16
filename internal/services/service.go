package services

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/core"
	"fintrack/internal/events"
)

// RecordStore is the persistence surface the service layer needs. It is
// implemented by storage.Repository.
type RecordStore interface {
	CreateIncome(ctx context.Context, in core.Income) error
	ListIncomes(ctx context.Context, userID string) ([]core.Income, error)
	DeleteIncome(ctx context.Context, userID, id string) error

	CreateExpense(ctx context.Context, e core.Expense) error
	ListExpenses(ctx context.Context, userID string) ([]core.Expense, error)
	DeleteExpense(ctx context.Context, userID, id string) error

	CreateBudget(ctx context.Context, b core.Budget) error
	ListBudgets(ctx context.Context, userID string, year, month int) ([]core.Budget, error)
	UpdateBudget(ctx context.Context, userID, id string, b core.Budget) (core.Budget, error)
	DeleteBudget(ctx context.Context, userID, id string) error

	CreateGoal(ctx context.Context, g core.SavingsGoal) error
	ListGoals(ctx context.Context, userID string) ([]core.SavingsGoal, error)
	UpdateGoalProgress(ctx context.Context, userID, id string, current core.Money) (core.SavingsGoal, error)
	DeleteGoal(ctx context.Context, userID, id string) error

	SaveContactMessage(ctx context.Context, m core.ContactMessage) error
}

// EventPublisher publishes record lifecycle events. Implemented by
// events.Client; a nil publisher disables publishing entirely.
type EventPublisher interface {
	PublishRecordEvent(ctx context.Context, ev *events.RecordEvent) error
}

// RecordService orchestrates financial record operations across SQLite
// and AMQP.
type RecordService struct {
	store     RecordStore
	publisher EventPublisher
}

func NewRecordService(store RecordStore, publisher EventPublisher) *RecordService {
	return &RecordService{
		store:     store,
		publisher: publisher,
	}
}

// publishEvent sends a lifecycle event without failing the request. The
// record is already persisted; a broker outage must not surface as an
// API error.
func (s *RecordService) publishEvent(ctx context.Context, kind, action, recordID, userID string) {
	if s.publisher == nil {
		return
	}
	ev := events.NewRecordEvent(kind, action, recordID, userID)
	if err := s.publisher.PublishRecordEvent(ctx, ev); err != nil {
		slog.ErrorContext(ctx, "Failed to publish record event",
			"kind", kind, "action", action, "record_id", recordID, "error", err)
	}
}

// Close closes the underlying connections held by the service.
func (s *RecordService) Close() error {
	var errs []error

	if c, ok := s.store.(interface{ Close() error }); ok && c != nil {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if c, ok := s.publisher.(interface{ Close() error }); ok && c != nil {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("events: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close record service: %v", errs)
	}

	return nil
}
