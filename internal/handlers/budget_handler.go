package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/period"
	"pocketledger/internal/services"
)

// BudgetHandler handles budget-related requests
type BudgetHandler struct {
	budgetService  services.BudgetServicer
	balanceService services.BalanceServicer
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService services.BudgetServicer, balanceService services.BalanceServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, balanceService: balanceService}
}

// SetBudgetRequest sets the limit of a category for a month, creating the
// budget if it does not exist yet.
type SetBudgetRequest struct {
	Month       string           `json:"month" binding:"required,month_key"`
	CategoryID  uint             `json:"category_id" binding:"required"`
	LimitAmount *decimal.Decimal `json:"limit_amount" binding:"required"`
}

// UpdateBudgetRequest changes the limit of an existing budget.
type UpdateBudgetRequest struct {
	LimitAmount *decimal.Decimal `json:"limit_amount" binding:"required"`
}

// CopyBudgetsRequest copies one month's budgets into another.
type CopyBudgetsRequest struct {
	FromMonth string `json:"from_month" binding:"required,month_key"`
	ToMonth   string `json:"to_month" binding:"required,month_key"`
}

// GetBudgets lists the budgets of a month with actual spending
// @Summary     List budgets for a month
// @Tags        budgets
// @Produce     json
// @Param       month query string false "Month (YYYY-MM), defaults to the current month"
// @Success     200 {array} models.BudgetWithActual "Budgets"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	month := c.DefaultQuery("month", period.CurrentMonth())

	budgets, err := h.balanceService.GetBudgetsWithActual(month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// SetBudget creates or updates the budget for a category and month
// @Summary     Set a budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body SetBudgetRequest true "Budget details"
// @Success     200 {object} models.Budget "Budget saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /budgets [post]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	limit, err := toMinorUnits(*req.LimitAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.UpsertBudget(services.BudgetInput{
		Month:       req.Month,
		CategoryID:  req.CategoryID,
		LimitAmount: limit,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetBudgetByID returns one budget with its actual spending
// @Summary     Get budget by ID
// @Tags        budgets
// @Produce     json
// @Param       id path int true "Budget ID"
// @Success     200 {object} models.BudgetWithActual "Budget"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudgetByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.balanceService.GetBudgetWithActual(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget changes a budget's limit
// @Summary     Update a budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       id      path int                 true "Budget ID"
// @Param       request body UpdateBudgetRequest true "New limit"
// @Success     200 {object} models.Budget "Budget updated"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	limit, err := toMinorUnits(*req.LimitAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.UpdateBudget(id, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if budget == nil {
		respondWithError(c, apperrors.ErrBudgetNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget deletes a budget
// @Summary     Delete a budget
// @Tags        budgets
// @Produce     json
// @Param       id path int true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.budgetService.DeleteBudget(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !deleted {
		respondWithError(c, apperrors.ErrBudgetNotFound)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Budget deleted successfully"})
}

// CopyBudgets copies budgets missing from the target month
// @Summary     Copy budgets between months
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body CopyBudgetsRequest true "Source and target months"
// @Success     200 {array} models.Budget "Budgets created"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Router      /budgets/copy [post]
func (h *BudgetHandler) CopyBudgets(c *gin.Context) {
	var req CopyBudgetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	created, err := h.budgetService.CopyBudgetsToMonth(req.FromMonth, req.ToMonth)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": created})
}
