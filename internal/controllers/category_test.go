package controllers_test

import (
	"net/http"

	"github.com/budgetbuddy/backend/internal/controllers"
	"github.com/budgetbuddy/backend/internal/httputil"
	"github.com/budgetbuddy/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestCategory(editable controllers.CategoryEditable) controllers.CategoryResponse {
	recorder := suite.request(http.MethodPost, "/v1/categories", editable)
	assertHTTPStatus(suite.T(), recorder, http.StatusCreated)

	var response controllers.CategoryResponse
	decodeResponse(suite.T(), recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestGetCategories() {
	recorder := suite.request(http.MethodGet, "/v1/categories", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response controllers.CategoryListResponse
	decodeResponse(suite.T(), recorder, &response)

	require.Len(suite.T(), response.Data, 10)
	assert.Equal(suite.T(), "food", response.Data[0].ID)
	assert.Equal(suite.T(), "Food & Dining", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestCreateCategory() {
	response := suite.createTestCategory(controllers.CategoryEditable{
		Name:  "Pet Care",
		Icon:  "🐾",
		Color: "#facc15",
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "pet-care", response.Data.ID)
}

func (suite *TestSuiteStandard) TestCreateCategoryBlankName() {
	recorder := suite.request(http.MethodPost, "/v1/categories", controllers.CategoryEditable{Name: "   "})
	assertHTTPStatus(suite.T(), recorder, http.StatusBadRequest)

	var response controllers.CategoryResponse
	decodeResponse(suite.T(), recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), controllers.ErrNameRequired.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestCreateCategoryDuplicate() {
	// "Food" normalizes to the ID of the seeded "Food & Dining" category.
	recorder := suite.request(http.MethodPost, "/v1/categories", controllers.CategoryEditable{Name: "Food"})
	assertHTTPStatus(suite.T(), recorder, http.StatusConflict)

	var response controllers.CategoryResponse
	decodeResponse(suite.T(), recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), models.ErrCategoryExists.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	recorder := suite.request(http.MethodPatch, "/v1/categories/food", controllers.CategoryEditable{
		Name:  "Groceries",
		Icon:  "🥦",
		Color: "#4ade80",
	})
	assertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response controllers.CategoryResponse
	decodeResponse(suite.T(), recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "food", response.Data.ID)
	assert.Equal(suite.T(), "Groceries", response.Data.Name)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	// "travel" has no sample expenses referencing it.
	recorder := suite.request(http.MethodDelete, "/v1/categories/travel", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodGet, "/v1/categories", nil)
	var response controllers.CategoryListResponse
	decodeResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Data, 9)
}

func (suite *TestSuiteStandard) TestDeleteCategoryInUse() {
	recorder := suite.request(http.MethodDelete, "/v1/categories/food", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusConflict)

	var response httputil.HTTPError
	decodeResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), models.ErrCategoryInUse.Error(), response.Error)

	recorder = suite.request(http.MethodGet, "/v1/categories", nil)
	var categories controllers.CategoryListResponse
	decodeResponse(suite.T(), recorder, &categories)
	assert.Len(suite.T(), categories.Data, 10)
}

func (suite *TestSuiteStandard) TestCategoryOptions() {
	recorder := suite.request(http.MethodOptions, "/v1/categories", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodOptions, "/v1/categories/food", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "PATCH, DELETE", recorder.Header().Get("allow"))
}
