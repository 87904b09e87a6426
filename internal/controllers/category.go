package controllers

import (
	"net/http"

	"github.com/budgetbuddy/backend/internal/httputil"
	"github.com/budgetbuddy/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CategoryEditable represents all user configurable parameters of a
// category. The ID is derived from the name and cannot be set directly.
type CategoryEditable struct {
	Name  string `json:"name" example:"Pet Care"`
	Icon  string `json:"icon" example:"🐾"`
	Color string `json:"color" example:"#facc15"`
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:  editable.Name,
		Icon:  editable.Icon,
		Color: editable.Color,
	}
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`
	Error *string          `json:"error"`
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`
	Error *string           `json:"error"`
}

// RegisterCategoryRoutes registers the routes for categories with the
// RouterGroup that is passed.
func (co *Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	{
		r.OPTIONS("/:id", httputil.OptionsPatchDelete)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Get categories
// @Description	Returns the list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func (co *Controller) GetCategories(c *gin.Context) {
	co.mu.Lock()
	categories := co.repo.Categories()
	co.mu.Unlock()

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Create category
// @Description	Creates a new category. The ID is derived from the name.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		409			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co *Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		return
	}

	if models.CategoryID(editable.Name) == "" {
		s := ErrNameRequired.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &s})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	category, err := co.repo.AddCategory(editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// @Summary		Update category
// @Description	Updates an existing category. Unknown IDs are a no-op.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Param			id			path		string				true	"ID of the category"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func (co *Controller) UpdateCategory(c *gin.Context) {
	var editable CategoryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		return
	}

	category := editable.model()
	category.ID = c.Param("id")

	co.mu.Lock()
	defer co.mu.Unlock()

	co.repo.UpdateCategory(category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Delete category
// @Description	Deletes a category and every goal referencing it. Refused
// @Description	while expenses reference the category.
// @Tags			Categories
// @Success		204
// @Failure		409	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/categories/{id} [delete]
func (co *Controller) DeleteCategory(c *gin.Context) {
	co.mu.Lock()
	defer co.mu.Unlock()

	err := co.repo.DeleteCategory(c.Param("id"))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
