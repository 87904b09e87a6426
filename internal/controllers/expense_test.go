package controllers_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/budgetbuddy/backend/internal/controllers"
	"github.com/budgetbuddy/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestExpense(editable controllers.ExpenseEditable) controllers.ExpenseResponse {
	recorder := suite.request(http.MethodPost, "/v1/expenses", editable)
	assertHTTPStatus(suite.T(), recorder, http.StatusCreated)

	var response controllers.ExpenseResponse
	decodeResponse(suite.T(), recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	recorder := suite.request(http.MethodGet, "/v1/expenses", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response controllers.ExpenseListResponse
	decodeResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Data, 10)
}

func (suite *TestSuiteStandard) TestGetExpensesFilterCategory() {
	recorder := suite.request(http.MethodGet, "/v1/expenses?category=food", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response controllers.ExpenseListResponse
	decodeResponse(suite.T(), recorder, &response)

	require.Len(suite.T(), response.Data, 3)
	for _, expense := range response.Data {
		assert.Equal(suite.T(), "food", expense.Category)
	}
}

func (suite *TestSuiteStandard) TestGetExpensesFilterDescription() {
	tests := []struct {
		pattern string
		count   int
	}{
		{"*bill*", 1}, // "Internet bill"
		{"LUNCH*", 1}, // matching is case-insensitive
		{"*", 10},
		{"no-match-*", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.pattern, func(t *testing.T) {
			recorder := suite.request(http.MethodGet, "/v1/expenses?description="+url.QueryEscape(tt.pattern), nil)
			assertHTTPStatus(t, recorder, http.StatusOK)

			var response controllers.ExpenseListResponse
			decodeResponse(t, recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpensesRange() {
	// The sample expenses are dated in the past, only the expense created
	// here falls into the running month.
	created := suite.createTestExpense(controllers.ExpenseEditable{
		Amount:      decimal.NewFromInt(9),
		Category:    "food",
		Date:        types.DateOf(time.Now()),
		Description: "This month's groceries",
	})

	recorder := suite.request(http.MethodGet, "/v1/expenses?range=month", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response controllers.ExpenseListResponse
	decodeResponse(suite.T(), recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), created.Data.ID, response.Data[0].ID)

	recorder = suite.request(http.MethodGet, "/v1/expenses?range=year", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusOK)

	decodeResponse(suite.T(), recorder, &response)
	require.Len(suite.T(), response.Data, 1)

	recorder = suite.request(http.MethodGet, "/v1/expenses?range=all", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusOK)

	decodeResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Data, 11)
}

func (suite *TestSuiteStandard) TestGetExpensesRangeInvalid() {
	recorder := suite.request(http.MethodGet, "/v1/expenses?range=decade", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusBadRequest)

	var response controllers.ExpenseListResponse
	decodeResponse(suite.T(), recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), controllers.ErrInvalidRange.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	response := suite.createTestExpense(controllers.ExpenseEditable{
		Amount:      decimal.NewFromFloat(25.50),
		Category:    "food",
		Date:        types.NewDate(2025, time.April, 4),
		Description: "Lunch at cafe",
	})

	require.NotNil(suite.T(), response.Data)
	assert.NotEmpty(suite.T(), response.Data.ID)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(25.50)))
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	valid := controllers.ExpenseEditable{
		Amount:      decimal.NewFromFloat(25.50),
		Category:    "food",
		Date:        types.NewDate(2025, time.April, 4),
		Description: "Lunch at cafe",
	}

	tests := []struct {
		name   string
		modify func(e *controllers.ExpenseEditable)
		err    error
	}{
		{"zero amount", func(e *controllers.ExpenseEditable) { e.Amount = decimal.Zero }, controllers.ErrAmountNotPositive},
		{"negative amount", func(e *controllers.ExpenseEditable) { e.Amount = decimal.NewFromInt(-10) }, controllers.ErrAmountNotPositive},
		{"blank description", func(e *controllers.ExpenseEditable) { e.Description = "   " }, controllers.ErrDescriptionRequired},
		{"missing date", func(e *controllers.ExpenseEditable) { e.Date = types.Date{} }, controllers.ErrDateRequired},
		{"unknown category", func(e *controllers.ExpenseEditable) { e.Category = "does-not-exist" }, controllers.ErrUnknownCategory},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			editable := valid
			tt.modify(&editable)

			recorder := suite.request(http.MethodPost, "/v1/expenses", editable)
			assertHTTPStatus(t, recorder, http.StatusBadRequest)

			var response controllers.ExpenseResponse
			decodeResponse(t, recorder, &response)
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.err.Error(), *response.Error)
		})
	}

	// None of the attempts may have been stored.
	recorder := suite.request(http.MethodGet, "/v1/expenses", nil)
	var response controllers.ExpenseListResponse
	decodeResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Data, 10)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalidBody() {
	recorder := suite.request(http.MethodPost, "/v1/expenses", `{ "amount": `)
	assertHTTPStatus(suite.T(), recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateExpenseEmptyBody() {
	recorder := suite.request(http.MethodPost, "/v1/expenses", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	created := suite.createTestExpense(controllers.ExpenseEditable{
		Amount:      decimal.NewFromFloat(25.50),
		Category:    "food",
		Date:        types.NewDate(2025, time.April, 4),
		Description: "Lunch at cafe",
	})

	recorder := suite.request(http.MethodPatch, "/v1/expenses/"+created.Data.ID, controllers.ExpenseEditable{
		Amount:      decimal.NewFromInt(30),
		Category:    "food",
		Date:        types.NewDate(2025, time.April, 4),
		Description: "Lunch at cafe, with dessert",
	})
	assertHTTPStatus(suite.T(), recorder, http.StatusOK)

	var response controllers.ExpenseResponse
	decodeResponse(suite.T(), recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), created.Data.ID, response.Data.ID)
	assert.Equal(suite.T(), "Lunch at cafe, with dessert", response.Data.Description)
}

func (suite *TestSuiteStandard) TestUpdateExpenseInvalid() {
	created := suite.createTestExpense(controllers.ExpenseEditable{
		Amount:      decimal.NewFromFloat(25.50),
		Category:    "food",
		Date:        types.NewDate(2025, time.April, 4),
		Description: "Lunch at cafe",
	})

	recorder := suite.request(http.MethodPatch, "/v1/expenses/"+created.Data.ID, controllers.ExpenseEditable{
		Amount:      decimal.Zero,
		Category:    "food",
		Date:        types.NewDate(2025, time.April, 4),
		Description: "Lunch at cafe",
	})
	assertHTTPStatus(suite.T(), recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	created := suite.createTestExpense(controllers.ExpenseEditable{
		Amount:      decimal.NewFromFloat(25.50),
		Category:    "food",
		Date:        types.NewDate(2025, time.April, 4),
		Description: "Lunch at cafe",
	})

	recorder := suite.request(http.MethodDelete, "/v1/expenses/"+created.Data.ID, nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodGet, "/v1/expenses", nil)
	var response controllers.ExpenseListResponse
	decodeResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Data, 10)
}

func (suite *TestSuiteStandard) TestExpenseOptions() {
	recorder := suite.request(http.MethodOptions, "/v1/expenses", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodOptions, "/v1/expenses/some-id", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "PATCH, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExpenseMethodNotAllowed() {
	recorder := suite.request(http.MethodPut, "/v1/expenses", nil)
	assertHTTPStatus(suite.T(), recorder, http.StatusMethodNotAllowed)
}
