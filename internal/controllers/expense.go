package controllers

import (
	"net/http"
	"strings"

	"github.com/budgetbuddy/backend/internal/httputil"
	"github.com/budgetbuddy/backend/internal/models"
	"github.com/budgetbuddy/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters of an expense
type ExpenseEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"25.5"`
	Category    string          `json:"category" example:"food"` // ID of the category the expense belongs to
	Date        types.Date      `json:"date" example:"2025-04-04"`
	Description string          `json:"description" example:"Lunch at cafe"`
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Amount:      editable.Amount,
		Category:    editable.Category,
		Date:        editable.Date,
		Description: editable.Description,
	}
}

func (editable ExpenseEditable) validate(categories []models.Category) error {
	if !editable.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if strings.TrimSpace(editable.Description) == "" {
		return ErrDescriptionRequired
	}

	if editable.Date.IsZero() {
		return ErrDateRequired
	}

	if !categoryExists(categories, editable.Category) {
		return ErrUnknownCategory
	}

	return nil
}

type ExpenseResponse struct {
	Data  *models.Expense `json:"data"`
	Error *string         `json:"error"`
}

type ExpenseListResponse struct {
	Data  []models.Expense `json:"data"`
	Error *string          `json:"error"`
}

// RegisterExpenseRoutes registers the routes for expenses with the
// RouterGroup that is passed.
func (co *Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	{
		r.OPTIONS("/:id", httputil.OptionsPatchDelete)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			description	query	string	false	"Filter by description, supports globbing"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			range		query	string	false	"Limit to the current 'month' or 'year'"
func (co *Controller) GetExpenses(c *gin.Context) {
	co.mu.Lock()
	expenses := co.repo.Expenses()
	co.mu.Unlock()

	expenses, err := co.rangeFilter(c, expenses)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &s})
		return
	}

	if category := c.Query("category"); category != "" {
		filtered := make([]models.Expense, 0, len(expenses))
		for _, expense := range expenses {
			if expense.Category == category {
				filtered = append(filtered, expense)
			}
		}
		expenses = filtered
	}

	if pattern := c.Query("description"); pattern != "" {
		filtered := make([]models.Expense, 0, len(expenses))
		for _, expense := range expenses {
			if glob.Glob(strings.ToLower(pattern), strings.ToLower(expense.Description)) {
				filtered = append(filtered, expense)
			}
		}
		expenses = filtered
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// @Summary		Create expense
// @Description	Creates a new expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func (co *Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	err = editable.validate(co.repo.Categories())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	expense := co.repo.AddExpense(editable.model())
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Unknown IDs are a no-op.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Param			id		path		string			true	"ID of the expense"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func (co *Controller) UpdateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	err = editable.validate(co.repo.Categories())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	expense := editable.model()
	expense.ID = c.Param("id")
	co.repo.UpdateExpense(expense)

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense. Unknown IDs are a no-op.
// @Tags			Expenses
// @Success		204
// @Param			id	path	string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func (co *Controller) DeleteExpense(c *gin.Context) {
	co.mu.Lock()
	defer co.mu.Unlock()

	co.repo.DeleteExpense(c.Param("id"))
	c.JSON(http.StatusNoContent, nil)
}
