package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/budgetbuddy/backend/internal/export"
	"github.com/budgetbuddy/backend/internal/httputil"
	"github.com/budgetbuddy/backend/internal/report"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Insights bundles the derived views the dashboard renders.
type Insights struct {
	Total     decimal.Decimal       `json:"total"`
	Breakdown []report.Slice        `json:"breakdown"`
	Monthly   []report.MonthlyPoint `json:"monthly"`
}

type InsightsResponse struct {
	Data  *Insights `json:"data"`
	Error *string   `json:"error"`
}

// RegisterInsightsRoutes registers the routes for insights, export and
// reset with the RouterGroup that is passed.
func (co *Controller) RegisterInsightsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/insights", httputil.OptionsGet)
	r.GET("/insights", co.GetInsights)

	r.OPTIONS("/export", httputil.OptionsGet)
	r.GET("/export", co.GetExport)

	r.OPTIONS("/reset", httputil.OptionsPost)
	r.POST("/reset", co.Reset)
}

// @Summary		Get insights
// @Description	Returns the category breakdown, the monthly series and the
// @Description	overall total for the selected range
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	InsightsResponse
// @Failure		400	{object}	InsightsResponse
// @Router			/v1/insights [get]
// @Param			range	query	string	false	"Limit to the current 'month' or 'year'"
func (co *Controller) GetInsights(c *gin.Context) {
	co.mu.Lock()
	expenses := co.repo.Expenses()
	categories := co.repo.Categories()
	co.mu.Unlock()

	expenses, err := co.rangeFilter(c, expenses)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InsightsResponse{Error: &s})
		return
	}

	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}

	c.JSON(http.StatusOK, InsightsResponse{
		Data: &Insights{
			Total:     total,
			Breakdown: report.CategoryBreakdown(expenses, categories),
			Monthly:   report.MonthlySeries(expenses),
		},
	})
}

// @Summary		Export expenses
// @Description	Downloads the expenses of the selected range as CSV
// @Tags			Insights
// @Produce		text/csv
// @Success		200
// @Failure		400	{object}	httputil.HTTPError
// @Router			/v1/export [get]
// @Param			range	query	string	false	"Limit to the current 'month' or 'year'"
func (co *Controller) GetExport(c *gin.Context) {
	co.mu.Lock()
	expenses := co.repo.Expenses()
	categories := co.repo.Categories()
	co.mu.Unlock()

	expenses, err := co.rangeFilter(c, expenses)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var buf bytes.Buffer
	err = export.Expenses(&buf, expenses, categories)
	if err != nil {
		httputil.NewError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(time.Now())))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// @Summary		Reset to default
// @Description	Replaces all collections with their seed values
// @Tags			Insights
// @Success		204
// @Router			/v1/reset [post]
func (co *Controller) Reset(c *gin.Context) {
	co.mu.Lock()
	defer co.mu.Unlock()

	co.repo.ResetToDefault()
	c.JSON(http.StatusNoContent, nil)
}
