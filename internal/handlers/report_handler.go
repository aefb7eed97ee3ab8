package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/period"
	"pocketledger/internal/services"
)

// ReportHandler serves figures derived from the whole ledger.
type ReportHandler struct {
	balanceService services.BalanceServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(balanceService services.BalanceServicer) *ReportHandler {
	return &ReportHandler{balanceService: balanceService}
}

// TotalsResponse holds income and expense totals over a date range.
type TotalsResponse struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	TotalIncome   int64  `json:"total_income"`
	TotalExpenses int64  `json:"total_expenses"`
	Net           int64  `json:"net"`
}

// GetNetWorth returns the signed sum of every ledger row
// @Summary     Net worth
// @Tags        reports
// @Produce     json
// @Success     200 {object} map[string]int64 "Net worth"
// @Router      /reports/net-worth [get]
func (h *ReportHandler) GetNetWorth(c *gin.Context) {
	netWorth, err := h.balanceService.GetNetWorth()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"net_worth": netWorth})
}

// GetTotals returns income and expenses in [start, end)
// @Summary     Income and expense totals
// @Tags        reports
// @Produce     json
// @Param       start query string true "Inclusive start date (YYYY-MM-DD)"
// @Param       end   query string true "Exclusive end date (YYYY-MM-DD)"
// @Success     200 {object} TotalsResponse "Totals"
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Router      /reports/totals [get]
func (h *ReportHandler) GetTotals(c *gin.Context) {
	var q DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	income, err := h.balanceService.GetTotalIncome(q.Start, q.End)
	if err != nil {
		respondWithError(c, err)
		return
	}
	expenses, err := h.balanceService.GetTotalExpenses(q.Start, q.End)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TotalsResponse{
		Start:         q.Start,
		End:           q.End,
		TotalIncome:   income,
		TotalExpenses: expenses,
		Net:           income - expenses,
	})
}

// GetSpending returns expense totals per category in [start, end)
// @Summary     Spending by category
// @Tags        reports
// @Produce     json
// @Param       start query string true "Inclusive start date (YYYY-MM-DD)"
// @Param       end   query string true "Exclusive end date (YYYY-MM-DD)"
// @Success     200 {array} models.CategorySpending "Spending, largest first"
// @Router      /reports/spending [get]
func (h *ReportHandler) GetSpending(c *gin.Context) {
	var q DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	spending, err := h.balanceService.GetSpendingByCategory(q.Start, q.End)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"spending": spending})
}

// GetDashboard returns the overview for a month
// @Summary     Dashboard summary
// @Tags        reports
// @Produce     json
// @Param       month query string false "Month (YYYY-MM), defaults to the current month"
// @Success     200 {object} models.DashboardSummary "Summary"
// @Router      /reports/dashboard [get]
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	month := c.DefaultQuery("month", period.CurrentMonth())

	summary, err := h.balanceService.GetDashboardSummary(month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
