package controllers

import (
	"net/http"
	"time"

	"github.com/budgetbuddy/backend/internal/httputil"
	"github.com/budgetbuddy/backend/internal/models"
	"github.com/budgetbuddy/backend/internal/report"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GoalEditable represents all user configurable parameters of a spending
// goal.
type GoalEditable struct {
	Category string          `json:"category" example:"food"` // a category ID or "overall"
	Amount   decimal.Decimal `json:"amount" example:"400"`
	Period   models.Period   `json:"period" example:"monthly"`
}

func (editable GoalEditable) model() models.SpendingGoal {
	return models.SpendingGoal{
		Category: editable.Category,
		Amount:   editable.Amount,
		Period:   editable.Period,
	}
}

func (editable GoalEditable) validate(categories []models.Category) error {
	if !editable.Period.Valid() {
		return ErrInvalidPeriod
	}

	if editable.Category != models.GoalCategoryOverall && !categoryExists(categories, editable.Category) {
		return ErrUnknownCategory
	}

	return nil
}

// Goal is a spending goal decorated with its progress in the running month.
type Goal struct {
	models.SpendingGoal
	Progress report.Progress `json:"progress"`
}

type GoalResponse struct {
	Data  *models.SpendingGoal `json:"data"`
	Error *string              `json:"error"`
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`
	Error *string `json:"error"`
}

// RegisterGoalRoutes registers the routes for goals with the RouterGroup
// that is passed.
func (co *Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}

	{
		r.OPTIONS("/:id", httputil.OptionsPatchDelete)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}
}

// @Summary		Get goals
// @Description	Returns all goals, each with its progress in the current month
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Router			/v1/goals [get]
func (co *Controller) GetGoals(c *gin.Context) {
	co.mu.Lock()
	goals := co.repo.Goals()
	expenses := co.repo.Expenses()
	co.mu.Unlock()

	// Goal cards always show the running month.
	expenses = report.FilterMonth(expenses, time.Now())

	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, Goal{
			SpendingGoal: goal,
			Progress:     report.GoalProgress(expenses, goal),
		})
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Create goal
// @Description	Creates a new spending goal
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func (co *Controller) CreateGoal(c *gin.Context) {
	var editable GoalEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	err = editable.validate(co.repo.Categories())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	goal, err := co.repo.AddGoal(editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{Data: &goal})
}

// @Summary		Update goal
// @Description	Updates an existing spending goal. Unknown IDs are a no-op.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Param			id		path		string			true	"ID of the goal"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func (co *Controller) UpdateGoal(c *gin.Context) {
	var editable GoalEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	err = editable.validate(co.repo.Categories())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	goal := editable.model()
	goal.ID = c.Param("id")

	err = co.repo.UpdateGoal(goal)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: &goal})
}

// @Summary		Delete goal
// @Description	Deletes a spending goal. Unknown IDs are a no-op.
// @Tags			Goals
// @Success		204
// @Param			id	path	string	true	"ID of the goal"
// @Router			/v1/goals/{id} [delete]
func (co *Controller) DeleteGoal(c *gin.Context) {
	co.mu.Lock()
	defer co.mu.Unlock()

	co.repo.DeleteGoal(c.Param("id"))
	c.JSON(http.StatusNoContent, nil)
}
