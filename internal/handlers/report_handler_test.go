package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/models"
)

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	r := gin.New()
	r.GET("/reports/net-worth", handler.GetNetWorth)
	r.GET("/reports/totals", handler.GetTotals)
	r.GET("/reports/spending", handler.GetSpending)
	r.GET("/reports/dashboard", handler.GetDashboard)
	return r
}

func TestReportHandler_GetNetWorth(t *testing.T) {
	balances := &mockBalanceService{netWorthFn: func() (int64, error) { return 70000, nil }}
	r := setupReportRouter(NewReportHandler(balances))
	rec := doRequest(r, "GET", "/reports/net-worth", "")
	assertStatus(t, rec, http.StatusOK)
	if parseJSON(t, rec)["net_worth"].(float64) != 70000 {
		t.Error("expected net worth 70000")
	}
}

func TestReportHandler_GetTotals(t *testing.T) {
	t.Run("returns income, expenses and net", func(t *testing.T) {
		balances := &mockBalanceService{
			totalIncomeFn:   func(string, string) (int64, error) { return 100000, nil },
			totalExpensesFn: func(string, string) (int64, error) { return 35000, nil },
		}
		r := setupReportRouter(NewReportHandler(balances))
		rec := doRequest(r, "GET", "/reports/totals?start=2024-03-01&end=2024-04-01", "")
		assertStatus(t, rec, http.StatusOK)
		result := parseJSON(t, rec)
		if result["net"].(float64) != 65000 {
			t.Errorf("expected net 65000, got %v", result["net"])
		}
	})

	t.Run("requires a range", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockBalanceService{}))
		rec := doRequest(r, "GET", "/reports/totals", "")
		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestReportHandler_GetSpending(t *testing.T) {
	balances := &mockBalanceService{
		spendingFn: func(start, end string) ([]models.CategorySpending, error) {
			return []models.CategorySpending{
				{CategoryID: 2, CategoryName: "Rent", Total: 90000},
				{CategoryID: 1, CategoryName: "Food", Total: 12000},
			}, nil
		},
	}
	r := setupReportRouter(NewReportHandler(balances))
	rec := doRequest(r, "GET", "/reports/spending?start=2024-03-01&end=2024-04-01", "")
	assertStatus(t, rec, http.StatusOK)
	spending := parseJSON(t, rec)["spending"].([]interface{})
	if spending[0].(map[string]interface{})["category_name"] != "Rent" {
		t.Errorf("expected Rent first, got %v", spending[0])
	}
}

func TestReportHandler_GetDashboard(t *testing.T) {
	var got string
	balances := &mockBalanceService{
		dashboardFn: func(month string) (*models.DashboardSummary, error) {
			got = month
			return &models.DashboardSummary{Month: "2024-03-01", TotalIncome: 10, TotalExpenses: 4, Net: 6}, nil
		},
	}
	r := setupReportRouter(NewReportHandler(balances))
	rec := doRequest(r, "GET", "/reports/dashboard?month=2024-03", "")
	assertStatus(t, rec, http.StatusOK)
	if got != "2024-03" {
		t.Errorf("expected month 2024-03, got %q", got)
	}
	if parseJSON(t, rec)["net"].(float64) != 6 {
		t.Error("expected net 6")
	}
}
