package models

import (
	"time"

	"github.com/budgetbuddy/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The seed collections are built once per process, so resetting twice in a
// session yields identical collections, IDs included.
var (
	defaultCategories = []Category{
		{ID: "food", Name: "Food & Dining", Icon: "🍔", Color: "#4ade80"},
		{ID: "transport", Name: "Transportation", Icon: "🚗", Color: "#93c5fd"},
		{ID: "shopping", Name: "Shopping", Icon: "🛍️", Color: "#fecaca"},
		{ID: "bills", Name: "Bills & Utilities", Icon: "📱", Color: "#a78bfa"},
		{ID: "entertainment", Name: "Entertainment", Icon: "🎬", Color: "#fbbf24"},
		{ID: "health", Name: "Health & Fitness", Icon: "💊", Color: "#34d399"},
		{ID: "travel", Name: "Travel", Icon: "✈️", Color: "#f472b6"},
		{ID: "education", Name: "Education", Icon: "📚", Color: "#60a5fa"},
		{ID: "personal", Name: "Personal Care", Icon: "💆", Color: "#9ca3af"},
		{ID: "others", Name: "Others", Icon: "📦", Color: "#6b7280"},
	}

	defaultGoals = []SpendingGoal{
		{ID: uuid.NewString(), Category: GoalCategoryOverall, Amount: decimal.NewFromInt(2000), Period: PeriodMonthly},
		{ID: uuid.NewString(), Category: "food", Amount: decimal.NewFromInt(400), Period: PeriodMonthly},
		{ID: uuid.NewString(), Category: "transport", Amount: decimal.NewFromInt(150), Period: PeriodMonthly},
	}

	sampleExpenses = []Expense{
		{ID: uuid.NewString(), Amount: decimal.NewFromFloat(25.50), Category: "food", Date: types.NewDate(2025, time.April, 4), Description: "Lunch at cafe"},
		{ID: uuid.NewString(), Amount: decimal.NewFromFloat(45.75), Category: "transport", Date: types.NewDate(2025, time.April, 3), Description: "Gas refill"},
		{ID: uuid.NewString(), Amount: decimal.NewFromFloat(120.00), Category: "shopping", Date: types.NewDate(2025, time.April, 2), Description: "New clothes"},
		{ID: uuid.NewString(), Amount: decimal.NewFromFloat(85.20), Category: "bills", Date: types.NewDate(2025, time.April, 1), Description: "Internet bill"},
		{ID: uuid.NewString(), Amount: decimal.NewFromFloat(32.40), Category: "entertainment", Date: types.NewDate(2025, time.March, 30), Description: "Movie tickets"},
		{ID: uuid.NewString(), Amount: decimal.NewFromFloat(17.80), Category: "food", Date: types.NewDate(2025, time.March, 29), Description: "Coffee and pastries"},
		{ID: uuid.NewString(), Amount: decimal.NewFromFloat(65.30), Category: "health", Date: types.NewDate(2025, time.March, 28), Description: "Pharmacy"},
		{ID: uuid.NewString(), Amount: decimal.NewFromFloat(56.90), Category: "transport", Date: types.NewDate(2025, time.March, 27), Description: "Uber rides"},
		{ID: uuid.NewString(), Amount: decimal.NewFromFloat(215.50), Category: "shopping", Date: types.NewDate(2025, time.March, 26), Description: "Electronics"},
		{ID: uuid.NewString(), Amount: decimal.NewFromFloat(8.40), Category: "food", Date: types.NewDate(2025, time.March, 25), Description: "Snacks"},
	}
)

// DefaultCategories returns a copy of the seed set of categories.
func DefaultCategories() []Category {
	return append([]Category(nil), defaultCategories...)
}

// DefaultGoals returns a copy of the seed set of spending goals.
func DefaultGoals() []SpendingGoal {
	return append([]SpendingGoal(nil), defaultGoals...)
}

// SampleExpenses returns a copy of the expenses a fresh installation starts
// out with, so that the dashboard is not empty.
func SampleExpenses() []Expense {
	return append([]Expense(nil), sampleExpenses...)
}
