// Package controllers implements the HTTP handlers for the API. Input
// validation happens here, at the presentation boundary; the repository
// trusts its callers for everything it does not enforce itself.
package controllers

import (
	"errors"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/budgetbuddy/backend/internal/budget"
	"github.com/budgetbuddy/backend/internal/models"
	"github.com/budgetbuddy/backend/internal/report"
	"github.com/gin-gonic/gin"
)

var (
	ErrAmountNotPositive   = errors.New("expense amounts must be larger than zero")
	ErrDescriptionRequired = errors.New("the description must not be empty")
	ErrNameRequired        = errors.New("the name must not be empty")
	ErrDateRequired        = errors.New("the date must be set")
	ErrUnknownCategory     = errors.New("the category does not exist")
	ErrInvalidPeriod       = errors.New(`the period of a goal must be "monthly" or "weekly"`)
	ErrInvalidRange        = errors.New(`the range must be "month" or "year"`)
)

// Controller holds the repository and serializes access to it. The
// repository itself is single-writer; the HTTP server is not.
type Controller struct {
	mu   sync.Mutex
	repo *budget.Repository
}

func NewController(repo *budget.Repository) *Controller {
	return &Controller{
		repo: repo,
	}
}

// status returns the HTTP status code for an error returned by the
// repository or by input validation.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrCategoryExists),
		errors.Is(err, models.ErrCategoryInUse):
		return http.StatusConflict
	case errors.Is(err, models.ErrGoalAmountNotPositive),
		errors.Is(err, ErrAmountNotPositive),
		errors.Is(err, ErrDescriptionRequired),
		errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrDateRequired),
		errors.Is(err, ErrUnknownCategory),
		errors.Is(err, ErrInvalidPeriod),
		errors.Is(err, ErrInvalidRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// rangeFilter narrows an expense snapshot to the current month or year.
// Filtering by date range is this layer's responsibility, the aggregation
// functions always receive a pre-filtered list.
func (co *Controller) rangeFilter(c *gin.Context, expenses []models.Expense) ([]models.Expense, error) {
	switch c.Query("range") {
	case "", "all":
		return expenses, nil
	case "month":
		return report.FilterMonth(expenses, time.Now()), nil
	case "year":
		return report.FilterYear(expenses, time.Now()), nil
	default:
		return nil, ErrInvalidRange
	}
}

func categoryExists(categories []models.Category, id string) bool {
	return slices.ContainsFunc(categories, func(category models.Category) bool {
		return category.ID == id
	})
}
