package core

type (
	ExpenseCategory string
	IncomeCategory  string
)

// The category sets are closed: aggregation keys stay stable because no
// dynamic extension is possible.
const (
	CategoryFood           ExpenseCategory = "Food"
	CategoryTransportation ExpenseCategory = "Transportation"
	CategoryHousing        ExpenseCategory = "Housing"
	CategoryEntertainment  ExpenseCategory = "Entertainment"
	CategoryHealthcare     ExpenseCategory = "Healthcare"
	CategoryShopping       ExpenseCategory = "Shopping"
	CategoryBills          ExpenseCategory = "Bills"
	CategoryOther          ExpenseCategory = "Other"

	IncomeSalary     IncomeCategory = "Salary"
	IncomeFreelance  IncomeCategory = "Freelance"
	IncomeInvestment IncomeCategory = "Investment"
	IncomeBusiness   IncomeCategory = "Business"
	IncomeGift       IncomeCategory = "Gift"
	IncomeOther      IncomeCategory = "Other"
)

var expenseCategories = []ExpenseCategory{
	CategoryFood,
	CategoryTransportation,
	CategoryHousing,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryShopping,
	CategoryBills,
	CategoryOther,
}

var incomeCategories = []IncomeCategory{
	IncomeSalary,
	IncomeFreelance,
	IncomeInvestment,
	IncomeBusiness,
	IncomeGift,
	IncomeOther,
}

// ExpenseCategories returns the ordered set of allowed expense/budget
// categories.
func ExpenseCategories() []ExpenseCategory {
	out := make([]ExpenseCategory, len(expenseCategories))
	copy(out, expenseCategories)
	return out
}

// IncomeCategories returns the ordered set of allowed income categories.
func IncomeCategories() []IncomeCategory {
	out := make([]IncomeCategory, len(incomeCategories))
	copy(out, incomeCategories)
	return out
}

func (c ExpenseCategory) Valid() bool {
	for _, v := range expenseCategories {
		if c == v {
			return true
		}
	}
	return false
}

func (c IncomeCategory) Valid() bool {
	for _, v := range incomeCategories {
		if c == v {
			return true
		}
	}
	return false
}
