// Package report computes derived views over snapshots of the collections.
// All functions are pure: they never mutate their inputs and hold no state.
//
// Callers that want a "current period" view (the dashboard and the goal
// cards show the running month) filter the expense snapshot first, e.g.
// with FilterMonth. The aggregation itself is period-agnostic.
package report

import (
	"time"

	"github.com/budgetbuddy/backend/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Slice is one category's share of the spending breakdown.
type Slice struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// MonthlyPoint is the spending total for one month bucket.
type MonthlyPoint struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// Progress describes how far along a spending goal is.
type Progress struct {
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`  // never negative
	Percentage int             `json:"percentage"` // clamped to [0, 100]
}

// TotalForCategory returns the sum of all expense amounts in the category.
func TotalForCategory(expenses []models.Expense, categoryID string) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		if expense.Category == categoryID {
			total = total.Add(expense.Amount)
		}
	}

	return total
}

// CategoryBreakdown returns the per-category totals in category-list order.
// Categories without any spending are omitted so that charts do not render
// empty slices.
func CategoryBreakdown(expenses []models.Expense, categories []models.Category) []Slice {
	breakdown := make([]Slice, 0, len(categories))

	for _, category := range categories {
		total := TotalForCategory(expenses, category.ID)
		if total.IsPositive() {
			breakdown = append(breakdown, Slice{
				Name:  category.Name,
				Value: total,
				Color: category.Color,
			})
		}
	}

	return breakdown
}

// MonthlySeries groups the expenses by the short name of their calendar
// month and sums the amounts per bucket. Buckets are keyed by month name
// only, so the same month of different years collapses into one bucket.
// Bucket order is the order in which each month is first encountered.
func MonthlySeries(expenses []models.Expense) []MonthlyPoint {
	var series []MonthlyPoint
	index := make(map[string]int)

	for _, expense := range expenses {
		month := expense.Date.MonthShort()

		i, ok := index[month]
		if !ok {
			i = len(series)
			index[month] = i
			series = append(series, MonthlyPoint{Month: month})
		}

		series[i].Amount = series[i].Amount.Add(expense.Amount)
	}

	return series
}

// GoalProgress computes how much of the goal's limit has been spent in the
// supplied expenses. For the "overall" goal category all expenses count,
// otherwise only the goal's category.
//
// Remaining is clamped at zero. Percentage is rounded, then clamped to
// [0, 100]. A goal without a positive amount has nothing to divide by: its
// percentage is 0 while nothing is spent and 100 as soon as anything is.
func GoalProgress(expenses []models.Expense, goal models.SpendingGoal) Progress {
	spent := decimal.Zero
	if goal.Category == models.GoalCategoryOverall {
		for _, expense := range expenses {
			spent = spent.Add(expense.Amount)
		}
	} else {
		spent = TotalForCategory(expenses, goal.Category)
	}

	remaining := goal.Amount.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	var percentage int
	switch {
	case goal.Amount.IsPositive():
		percentage = int(spent.Div(goal.Amount).Mul(hundred).Round(0).IntPart())
		if percentage > 100 {
			percentage = 100
		}
	case spent.IsPositive():
		percentage = 100
	}

	return Progress{
		Spent:      spent,
		Remaining:  remaining,
		Percentage: percentage,
	}
}

// FilterMonth returns the expenses dated in the calendar month of t.
func FilterMonth(expenses []models.Expense, t time.Time) []models.Expense {
	filtered := make([]models.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if expense.Date.InMonth(t) {
			filtered = append(filtered, expense)
		}
	}

	return filtered
}

// FilterYear returns the expenses dated in the calendar year of t.
func FilterYear(expenses []models.Expense, t time.Time) []models.Expense {
	filtered := make([]models.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if expense.Date.InYear(t) {
			filtered = append(filtered, expense)
		}
	}

	return filtered
}
