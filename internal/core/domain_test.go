package core

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestDateInMonth(t *testing.T) {
	cases := []struct {
		d           Date
		year, month int
		want        bool
	}{
		{NewDate(2025, 3, 1), 2025, 3, true},
		{NewDate(2025, 3, 31), 2025, 3, true},
		{NewDate(2025, 4, 1), 2025, 3, false},
		{NewDate(2024, 3, 15), 2025, 3, false},
	}
	for i, tc := range cases {
		if got := tc.d.InMonth(tc.year, tc.month); got != tc.want {
			t.Fatalf("case %d: InMonth(%d, %d) = %v, want %v", i, tc.year, tc.month, got, tc.want)
		}
	}
}

func TestDateDaysUntil(t *testing.T) {
	today := NewDate(2025, 6, 15)
	cases := []struct {
		deadline Date
		want     int
	}{
		{NewDate(2025, 6, 16), 1},
		{NewDate(2025, 6, 15), 0},
		{NewDate(2025, 6, 14), -1}, // yesterday: non-positive, labelled expired upstream
		{NewDate(2025, 7, 15), 30},
	}
	for i, tc := range cases {
		if got := tc.deadline.DaysUntil(today); got != tc.want {
			t.Fatalf("case %d: DaysUntil = %d, want %d", i, got, tc.want)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, 1, 9)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-01-09"` {
		t.Fatalf("got %s", b)
	}

	var parsed Date
	if err := json.Unmarshal(b, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !parsed.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v != %v", parsed, d)
	}

	if err := json.Unmarshal([]byte(`"09/01/2025"`), &parsed); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestIncomeValidate(t *testing.T) {
	good := Income{
		Amount:   Money{Cents: 100000},
		Source:   "Acme Corp",
		Category: IncomeSalary,
		Date:     NewDate(2025, 1, 1),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Income)
		want   error
	}{
		{"zero amount", func(i *Income) { i.Amount = Money{} }, ErrInvalidAmount},
		{"blank source", func(i *Income) { i.Source = "  " }, ErrEmptySource},
		{"unknown category", func(i *Income) { i.Category = "Lottery" }, ErrInvalidCategory},
		{"zero date", func(i *Income) { i.Date = Date{Time: time.Time{}} }, ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := good
			tc.mutate(&in)
			if err := in.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Amount:   Money{Cents: 2500},
		Category: CategoryFood,
		Date:     NewDate(2025, 1, 1),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bad := good
	bad.Category = "Groceries" // not in the closed set
	if err := bad.Validate(); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("got %v, want ErrInvalidCategory", err)
	}
}

func TestBudgetValidate(t *testing.T) {
	good := Budget{
		Category:     CategoryFood,
		MonthlyLimit: Money{Cents: 20000},
		Year:         2025,
		Month:        6,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Budget)
		want   error
	}{
		{"income category", func(b *Budget) { b.Category = "Salary" }, ErrInvalidCategory},
		{"zero limit", func(b *Budget) { b.MonthlyLimit = Money{} }, ErrInvalidAmount},
		{"month zero", func(b *Budget) { b.Month = 0 }, ErrInvalidMonth},
		{"month thirteen", func(b *Budget) { b.Month = 13 }, ErrInvalidMonth},
		{"year zero", func(b *Budget) { b.Year = 0 }, ErrInvalidYear},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := good
			tc.mutate(&b)
			if err := b.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSavingsGoalValidate(t *testing.T) {
	good := SavingsGoal{
		Title:         "Emergency fund",
		TargetAmount:  Money{Cents: 100000},
		CurrentAmount: Money{Cents: 0},
		Deadline:      NewDate(2026, 1, 1),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Overshoot is allowed.
	over := good
	over.CurrentAmount = Money{Cents: 150000}
	if err := over.Validate(); err != nil {
		t.Fatalf("overshoot should be valid, got %v", err)
	}

	neg := good
	neg.CurrentAmount = Money{Cents: -1}
	if err := neg.Validate(); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("got %v, want ErrNegativeAmount", err)
	}

	blank := good
	blank.Title = "	"
	if err := blank.Validate(); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("got %v, want ErrEmptyTitle", err)
	}
}
