// Package export renders expense snapshots as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/budgetbuddy/backend/internal/models"
)

// Expenses writes the expenses as CSV with the columns Date, Description,
// Category and Amount, one row per expense. Amounts are formatted with two
// decimal places, category IDs are resolved to names.
func Expenses(w io.Writer, expenses []models.Expense, categories []models.Category) error {
	writer := csv.NewWriter(w)

	err := writer.Write([]string{"Date", "Description", "Category", "Amount"})
	if err != nil {
		return err
	}

	for _, expense := range expenses {
		err = writer.Write([]string{
			expense.Date.String(),
			expense.Description,
			models.CategoryName(categories, expense.Category),
			expense.Amount.StringFixed(2),
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Filename returns the download file name for an export at time t, e.g.
// "budgetbuddy_expenses_2025-04-04.csv".
func Filename(t time.Time) string {
	return fmt.Sprintf("budgetbuddy_expenses_%s.csv", t.Format("2006-01-02"))
}
