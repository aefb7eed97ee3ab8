package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/period"
	"pocketledger/internal/services"
)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	r.GET("/budgets", handler.GetBudgets)
	r.POST("/budgets", handler.SetBudget)
	r.POST("/budgets/copy", handler.CopyBudgets)
	r.GET("/budgets/:id", handler.GetBudgetByID)
	r.PUT("/budgets/:id", handler.UpdateBudget)
	r.DELETE("/budgets/:id", handler.DeleteBudget)
	return r
}

func TestBudgetHandler_GetBudgets(t *testing.T) {
	t.Run("uses the requested month", func(t *testing.T) {
		var got string
		balances := &mockBalanceService{
			budgetsWithActualFn: func(month string) ([]models.BudgetWithActual, error) {
				got = month
				return []models.BudgetWithActual{{
					Budget:       models.Budget{Month: "2024-03-01", CategoryID: 1, LimitAmount: 40000},
					CategoryName: "Food",
					ActualSpent:  50000,
					Remaining:    -10000,
				}}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, balances))
		rec := doRequest(r, "GET", "/budgets?month=2024-03", "")
		assertStatus(t, rec, http.StatusOK)
		if got != "2024-03" {
			t.Errorf("expected month 2024-03, got %q", got)
		}
		budget := parseJSON(t, rec)["budgets"].([]interface{})[0].(map[string]interface{})
		if budget["remaining"].(float64) != -10000 {
			t.Errorf("expected remaining -10000, got %v", budget["remaining"])
		}
	})

	t.Run("defaults to the current month", func(t *testing.T) {
		var got string
		balances := &mockBalanceService{
			budgetsWithActualFn: func(month string) ([]models.BudgetWithActual, error) {
				got = month
				return nil, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, balances))
		assertStatus(t, doRequest(r, "GET", "/budgets", ""), http.StatusOK)
		if got != period.CurrentMonth() {
			t.Errorf("expected %s, got %q", period.CurrentMonth(), got)
		}
	})
}

func TestBudgetHandler_SetBudget(t *testing.T) {
	t.Run("upserts with rounded limit", func(t *testing.T) {
		var got services.BudgetInput
		svc := &mockBudgetService{
			upsertFn: func(input services.BudgetInput) (*models.Budget, error) {
				got = input
				return &models.Budget{Base: models.Base{ID: 1}, Month: "2024-03-01", CategoryID: input.CategoryID, LimitAmount: input.LimitAmount}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockBalanceService{}))
		rec := doRequest(r, "POST", "/budgets", `{"month":"2024-03","category_id":4,"limit_amount":39999.5}`)
		assertStatus(t, rec, http.StatusOK)
		if got.LimitAmount != 40000 || got.CategoryID != 4 || got.Month != "2024-03" {
			t.Errorf("unexpected input %+v", got)
		}
	})

	t.Run("rejects a malformed month", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockBalanceService{}))
		rec := doRequest(r, "POST", "/budgets", `{"month":"March","category_id":4,"limit_amount":1}`)
		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("unknown category is 404", func(t *testing.T) {
		svc := &mockBudgetService{
			upsertFn: func(services.BudgetInput) (*models.Budget, error) { return nil, apperrors.ErrCategoryNotFound },
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockBalanceService{}))
		rec := doRequest(r, "POST", "/budgets", `{"month":"2024-03","category_id":4,"limit_amount":1}`)
		assertStatus(t, rec, http.StatusNotFound)
	})
}

func TestBudgetHandler_ByID(t *testing.T) {
	t.Run("get missing is 404", func(t *testing.T) {
		balances := &mockBalanceService{
			budgetWithActualFn: func(uint) (*models.BudgetWithActual, error) { return nil, apperrors.ErrBudgetNotFound },
		}
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, balances))
		rec := doRequest(r, "GET", "/budgets/2", "")
		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_NOT_FOUND")
	})

	t.Run("update missing is 404", func(t *testing.T) {
		svc := &mockBudgetService{updateFn: func(uint, int64) (*models.Budget, error) { return nil, nil }}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockBalanceService{}))
		rec := doRequest(r, "PUT", "/budgets/2", `{"limit_amount":100}`)
		assertStatus(t, rec, http.StatusNotFound)
	})

	t.Run("update requires a limit", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockBalanceService{}))
		rec := doRequest(r, "PUT", "/budgets/2", `{}`)
		assertStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("delete missing is 404", func(t *testing.T) {
		svc := &mockBudgetService{deleteFn: func(uint) (bool, error) { return false, nil }}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockBalanceService{}))
		assertStatus(t, doRequest(r, "DELETE", "/budgets/2", ""), http.StatusNotFound)
	})
}

func TestBudgetHandler_CopyBudgets(t *testing.T) {
	var from, to string
	svc := &mockBudgetService{
		copyFn: func(fromMonth, toMonth string) ([]models.Budget, error) {
			from, to = fromMonth, toMonth
			return []models.Budget{{Month: "2025-01-01", CategoryID: 1}}, nil
		},
	}
	r := setupBudgetRouter(NewBudgetHandler(svc, &mockBalanceService{}))
	rec := doRequest(r, "POST", "/budgets/copy", `{"from_month":"2024-12","to_month":"2025-01"}`)
	assertStatus(t, rec, http.StatusOK)
	if from != "2024-12" || to != "2025-01" {
		t.Errorf("unexpected months %s -> %s", from, to)
	}
	if len(parseJSON(t, rec)["budgets"].([]interface{})) != 1 {
		t.Error("expected one created budget")
	}
}

func TestBudgetHandler_LimitOutOfRange(t *testing.T) {
	called := false
	svc := &mockBudgetService{
		upsertFn: func(services.BudgetInput) (*models.Budget, error) {
			called = true
			return &models.Budget{}, nil
		},
		updateFn: func(uint, int64) (*models.Budget, error) {
			called = true
			return &models.Budget{}, nil
		},
	}
	r := setupBudgetRouter(NewBudgetHandler(svc, &mockBalanceService{}))

	rec := doRequest(r, "POST", "/budgets", `{"month":"2024-03","category_id":4,"limit_amount":18446744073709551716}`)
	assertStatus(t, rec, http.StatusBadRequest)
	assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")

	rec = doRequest(r, "PUT", "/budgets/2", `{"limit_amount":9223372036854775808}`)
	assertStatus(t, rec, http.StatusBadRequest)
	assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")

	if called {
		t.Error("service must not be called with an out-of-range limit")
	}
}
