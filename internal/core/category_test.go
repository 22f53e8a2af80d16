package core

import "testing"

func TestExpenseCategoryValid(t *testing.T) {
	for _, c := range ExpenseCategories() {
		if !c.Valid() {
			t.Fatalf("%q should be valid", c)
		}
	}
	for _, c := range []ExpenseCategory{"", "food", "Groceries", "Salary"} {
		if c.Valid() {
			t.Fatalf("%q should be invalid", c)
		}
	}
}

func TestIncomeCategoryValid(t *testing.T) {
	for _, c := range IncomeCategories() {
		if !c.Valid() {
			t.Fatalf("%q should be valid", c)
		}
	}
	for _, c := range []IncomeCategory{"", "salary", "Food"} {
		if c.Valid() {
			t.Fatalf("%q should be invalid", c)
		}
	}
}

func TestCategorySetsAreCopies(t *testing.T) {
	cats := ExpenseCategories()
	cats[0] = "Mutated"
	if ExpenseCategories()[0] != CategoryFood {
		t.Fatal("ExpenseCategories must return a copy")
	}
}
