// Package storage implements the record store on SQLite.
//
// Every query is scoped by the owning user id. A record that exists but
// belongs to another user is reported as core.ErrNotFound, identical to
// a missing record, so existence never leaks across users.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" && !strings.HasPrefix(dbPath, ":") {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// Single connection: SQLite has one writer anyway, and this keeps
	// in-memory databases coherent across the pool.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// isUniqueViolation matches SQLite unique-index failures. The driver
// has no typed error for them, so this checks the message.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// --- users ---

func (r *Repository) CreateUser(ctx context.Context, u core.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt)
	if isUniqueViolation(err) {
		return core.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (core.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`, email))
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (core.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE id = ?`, id))
}

func (r *Repository) scanUser(row *sql.Row) (core.User, error) {
	var u core.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return core.User{}, core.ErrNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}

// --- incomes ---

func (r *Repository) CreateIncome(ctx context.Context, in core.Income) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO incomes (id, user_id, amount_cents, source, category, date, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.UserID, in.Amount.Cents, in.Source, string(in.Category),
		in.Date.Format(dateLayout), in.Description, in.CreatedAt)
	if err != nil {
		return fmt.Errorf("create income: %w", err)
	}
	return nil
}

func (r *Repository) ListIncomes(ctx context.Context, userID string) ([]core.Income, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, amount_cents, source, category, date, description, created_at
		 FROM incomes WHERE user_id = ? ORDER BY created_at, rowid`, userID)
	if err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}
	defer rows.Close()

	var incomes []core.Income
	for rows.Next() {
		var (
			in       core.Income
			category string
			date     string
		)
		if err := rows.Scan(&in.ID, &in.UserID, &in.Amount.Cents, &in.Source,
			&category, &date, &in.Description, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan income: %w", err)
		}
		in.Category = core.IncomeCategory(category)
		if in.Date, err = parseDate(date); err != nil {
			return nil, err
		}
		incomes = append(incomes, in)
	}
	return incomes, rows.Err()
}

func (r *Repository) DeleteIncome(ctx context.Context, userID, id string) error {
	return r.deleteOwned(ctx, "incomes", userID, id)
}

// --- expenses ---

func (r *Repository) CreateExpense(ctx context.Context, e core.Expense) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (id, user_id, amount_cents, category, date, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Amount.Cents, string(e.Category),
		e.Date.Format(dateLayout), e.Description, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

func (r *Repository) ListExpenses(ctx context.Context, userID string) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, amount_cents, category, date, description, created_at
		 FROM expenses WHERE user_id = ? ORDER BY created_at, rowid`, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var (
			e        core.Expense
			category string
			date     string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount.Cents,
			&category, &date, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Category = core.ExpenseCategory(category)
		if e.Date, err = parseDate(date); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *Repository) DeleteExpense(ctx context.Context, userID, id string) error {
	return r.deleteOwned(ctx, "expenses", userID, id)
}

// --- budgets ---

// CreateBudget relies on the UNIQUE(user_id, category, year, month)
// index: the uniqueness check and the insert are one atomic statement,
// so two racing creates resolve to exactly one success.
func (r *Repository) CreateBudget(ctx context.Context, b core.Budget) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO budgets (id, user_id, category, monthly_limit_cents, year, month, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.UserID, string(b.Category), b.MonthlyLimit.Cents, b.Year, b.Month, b.CreatedAt)
	if isUniqueViolation(err) {
		return core.ErrBudgetExists
	}
	if err != nil {
		return fmt.Errorf("create budget: %w", err)
	}
	return nil
}

// ListBudgets returns the user's budgets, optionally restricted to one
// period. Zero year/month mean no filter.
func (r *Repository) ListBudgets(ctx context.Context, userID string, year, month int) ([]core.Budget, error) {
	query := `SELECT id, user_id, category, monthly_limit_cents, year, month, created_at
	          FROM budgets WHERE user_id = ?`
	args := []any{userID}
	if year != 0 {
		query += ` AND year = ?`
		args = append(args, year)
	}
	if month != 0 {
		query += ` AND month = ?`
		args = append(args, month)
	}
	query += ` ORDER BY created_at, rowid`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []core.Budget
	for rows.Next() {
		var (
			b        core.Budget
			category string
		)
		if err := rows.Scan(&b.ID, &b.UserID, &category, &b.MonthlyLimit.Cents,
			&b.Year, &b.Month, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		b.Category = core.ExpenseCategory(category)
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// UpdateBudget replaces category, limit and period of an owned budget.
// The uniqueness invariant is enforced by the same index as on create.
func (r *Repository) UpdateBudget(ctx context.Context, userID, id string, b core.Budget) (core.Budget, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE budgets SET category = ?, monthly_limit_cents = ?, year = ?, month = ?
		 WHERE id = ? AND user_id = ?`,
		string(b.Category), b.MonthlyLimit.Cents, b.Year, b.Month, id, userID)
	if isUniqueViolation(err) {
		return core.Budget{}, core.ErrBudgetExists
	}
	if err != nil {
		return core.Budget{}, fmt.Errorf("update budget: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return core.Budget{}, fmt.Errorf("update budget rows: %w", err)
	} else if n == 0 {
		return core.Budget{}, core.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, category, monthly_limit_cents, year, month, created_at
		 FROM budgets WHERE id = ? AND user_id = ?`, id, userID)
	var (
		updated  core.Budget
		category string
	)
	if err := row.Scan(&updated.ID, &updated.UserID, &category,
		&updated.MonthlyLimit.Cents, &updated.Year, &updated.Month, &updated.CreatedAt); err != nil {
		return core.Budget{}, fmt.Errorf("reload budget: %w", err)
	}
	updated.Category = core.ExpenseCategory(category)
	return updated, nil
}

func (r *Repository) DeleteBudget(ctx context.Context, userID, id string) error {
	return r.deleteOwned(ctx, "budgets", userID, id)
}

// --- savings goals ---

func (r *Repository) CreateGoal(ctx context.Context, g core.SavingsGoal) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO savings_goals (id, user_id, title, target_cents, current_cents, deadline, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.UserID, g.Title, g.TargetAmount.Cents, g.CurrentAmount.Cents,
		g.Deadline.Format(dateLayout), g.CreatedAt)
	if err != nil {
		return fmt.Errorf("create savings goal: %w", err)
	}
	return nil
}

func (r *Repository) ListGoals(ctx context.Context, userID string) ([]core.SavingsGoal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, target_cents, current_cents, deadline, created_at
		 FROM savings_goals WHERE user_id = ? ORDER BY created_at, rowid`, userID)
	if err != nil {
		return nil, fmt.Errorf("list savings goals: %w", err)
	}
	defer rows.Close()

	var goals []core.SavingsGoal
	for rows.Next() {
		var (
			g        core.SavingsGoal
			deadline string
		)
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.TargetAmount.Cents,
			&g.CurrentAmount.Cents, &deadline, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan savings goal: %w", err)
		}
		if g.Deadline, err = parseDate(deadline); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// UpdateGoalProgress replaces current_amount of an owned goal and
// returns the updated record.
func (r *Repository) UpdateGoalProgress(ctx context.Context, userID, id string, current core.Money) (core.SavingsGoal, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE savings_goals SET current_cents = ? WHERE id = ? AND user_id = ?`,
		current.Cents, id, userID)
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("update savings goal: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return core.SavingsGoal{}, fmt.Errorf("update savings goal rows: %w", err)
	} else if n == 0 {
		return core.SavingsGoal{}, core.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, target_cents, current_cents, deadline, created_at
		 FROM savings_goals WHERE id = ? AND user_id = ?`, id, userID)
	var (
		g        core.SavingsGoal
		deadline string
	)
	if err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.TargetAmount.Cents,
		&g.CurrentAmount.Cents, &deadline, &g.CreatedAt); err != nil {
		return core.SavingsGoal{}, fmt.Errorf("reload savings goal: %w", err)
	}
	if g.Deadline, err = parseDate(deadline); err != nil {
		return core.SavingsGoal{}, err
	}
	return g, nil
}

func (r *Repository) DeleteGoal(ctx context.Context, userID, id string) error {
	return r.deleteOwned(ctx, "savings_goals", userID, id)
}

// --- contact messages ---

func (r *Repository) SaveContactMessage(ctx context.Context, m core.ContactMessage) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Message, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("save contact message: %w", err)
	}
	return nil
}

// deleteOwned removes one record scoped to its owner. Zero rows means
// missing or foreign, both reported as core.ErrNotFound.
func (r *Repository) deleteOwned(ctx context.Context, table, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM `+table+` WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s rows: %w", table, err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func parseDate(s string) (core.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return core.Date{}, fmt.Errorf("parse stored date %q: %w", s, err)
	}
	return core.Date{Time: t}, nil
}
