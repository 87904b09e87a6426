package models

import (
	"github.com/budgetbuddy/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Expense is a single dated monetary outflow.
type Expense struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"` // ID of the category the expense belongs to
	Date        types.Date      `json:"date"`
	Description string          `json:"description"`
}
