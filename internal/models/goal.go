package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// GoalCategoryOverall is the reserved goal category meaning "all expenses
// combined". It is not an entry in the categories collection.
const GoalCategoryOverall = "overall"

// Period is the recurrence of a spending goal.
type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodWeekly  Period = "weekly"
)

// Valid reports whether the period is one of the known recurrences.
func (p Period) Valid() bool {
	return p == PeriodMonthly || p == PeriodWeekly
}

// SpendingGoal is a spending limit for a single category or for all
// spending combined.
type SpendingGoal struct {
	ID       string          `json:"id"`
	Category string          `json:"category"` // a category ID or GoalCategoryOverall
	Amount   decimal.Decimal `json:"amount"`   // the limit for the period
	Period   Period          `json:"period"`
}

var ErrGoalAmountNotPositive = errors.New("goal amounts must be larger than zero")
