package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Date is a naive calendar date (UTC midnight). Comparisons use the
	// date component only, never instants or timezone offsets.
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	User struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		PasswordHash string    `json:"-"`
		CreatedAt    time.Time `json:"created_at"`
	}

	Income struct {
		ID          string         `json:"id"`
		UserID      string         `json:"user_id"`
		Amount      Money          `json:"amount"`
		Source      string         `json:"source"`
		Category    IncomeCategory `json:"category"`
		Date        Date           `json:"date"`
		Description string         `json:"description"`
		CreatedAt   time.Time      `json:"created_at"`
	}

	Expense struct {
		ID          string          `json:"id"`
		UserID      string          `json:"user_id"`
		Amount      Money           `json:"amount"`
		Category    ExpenseCategory `json:"category"`
		Date        Date            `json:"date"`
		Description string          `json:"description"`
		CreatedAt   time.Time       `json:"created_at"`
	}

	// Budget is the spending limit for one expense category in one
	// calendar month. At most one exists per (user, category, year, month).
	Budget struct {
		ID           string          `json:"id"`
		UserID       string          `json:"user_id"`
		Category     ExpenseCategory `json:"category"`
		MonthlyLimit Money           `json:"monthly_limit"`
		Year         int             `json:"year"`
		Month        int             `json:"month"`
		CreatedAt    time.Time       `json:"created_at"`
	}

	SavingsGoal struct {
		ID            string    `json:"id"`
		UserID        string    `json:"user_id"`
		Title         string    `json:"title"`
		TargetAmount  Money     `json:"target_amount"`
		CurrentAmount Money     `json:"current_amount"`
		Deadline      Date      `json:"deadline"`
		CreatedAt     time.Time `json:"created_at"`
	}

	ContactMessage struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Message   string    `json:"message"`
		CreatedAt time.Time `json:"created_at"`
	}
)

var (
	// Validation failures (map to 400 at the HTTP layer).
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidMonth    = errors.New("invalid month")
	ErrInvalidYear     = errors.New("invalid year")
	ErrEmptySource     = errors.New("empty source")
	ErrEmptyTitle      = errors.New("empty title")
	ErrNegativeAmount  = errors.New("amount cannot be negative")

	// ErrNotFound covers both a missing record and a record owned by a
	// different user. The two cases are never distinguished externally.
	ErrNotFound = errors.New("record not found")

	// ErrBudgetExists is returned when a budget for the same
	// (user, category, year, month) already exists.
	ErrBudgetExists = errors.New("budget already exists for this category and period")

	ErrEmailTaken = errors.New("email already registered")

	ErrEmptyMessage = errors.New("name, email and message are required")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// InMonth reports whether the date falls within the calendar month
// (year, month), inclusive of all days.
func (d Date) InMonth(year, month int) bool {
	return d.Time.Year() == year && int(d.Time.Month()) == month
}

// DaysUntil returns the signed whole-day count from today until d,
// rounded up. Zero or negative means the date has passed; presentation
// decides how to label that.
func (d Date) DaysUntil(today Date) int {
	diff := d.Time.Sub(today.Time)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return ErrInvalidDate
	}
	d.Time = t
	return nil
}

func (i Income) Validate() error {
	if err := i.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(i.Source) == "" {
		return ErrEmptySource
	}
	if !i.Category.Valid() {
		return ErrInvalidCategory
	}
	return i.Date.Validate()
}

func (e Expense) Validate() error {
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if !e.Category.Valid() {
		return ErrInvalidCategory
	}
	return e.Date.Validate()
}

func (b Budget) Validate() error {
	if !b.Category.Valid() {
		return ErrInvalidCategory
	}
	if err := b.MonthlyLimit.Validate(); err != nil {
		return err
	}
	if b.Month < 1 || b.Month > 12 {
		return ErrInvalidMonth
	}
	if b.Year < 1 {
		return ErrInvalidYear
	}
	return nil
}

func (g SavingsGoal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return ErrEmptyTitle
	}
	if err := g.TargetAmount.Validate(); err != nil {
		return err
	}
	if g.CurrentAmount.Cents < 0 {
		return ErrNegativeAmount
	}
	return g.Deadline.Validate()
}

func (m ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" || strings.TrimSpace(m.Message) == "" {
		return ErrEmptyMessage
	}
	return nil
}
