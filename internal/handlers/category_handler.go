package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
	balanceService  services.BalanceServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer, balanceService services.BalanceServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, balanceService: balanceService}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name string              `json:"name" binding:"required,min=1,max=100"`
	Type models.CategoryType `json:"type" binding:"required,category_type"`
}

// UpdateCategoryRequest represents the request payload for renaming a category.
// A category's type is fixed at creation.
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// DateRangeQuery is a half-open [start, end) range of YYYY-MM-DD dates.
type DateRangeQuery struct {
	Start string `form:"start" binding:"required,ymd_date"`
	End   string `form:"end" binding:"required,ymd_date"`
}

// CategorySpentResponse is the expense total of one category over a range.
type CategorySpentResponse struct {
	CategoryID uint   `json:"category_id"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Spent      int64  `json:"spent"`
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate category"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// GetCategories handles the retrieval of all categories
// @Summary     List categories
// @Tags        categories
// @Produce     json
// @Param       type query string false "Filter by category type (income/expense)"
// @Success     200 {array} models.Category "List of categories"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var categoryType *models.CategoryType
	if raw := c.Query("type"); raw != "" {
		t := models.CategoryType(raw)
		if !t.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense"))
			return
		}
		categoryType = &t
	}

	categories, err := h.categoryService.GetCategories(categoryType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategoryByID handles the retrieval of a specific category
// @Summary     Get category by ID
// @Tags        categories
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} models.Category "Category details"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// UpdateCategory handles renaming a category
// @Summary     Rename a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id      path int                   true "Category ID"
// @Param       request body UpdateCategoryRequest true "New name"
// @Success     200 {object} models.Category "Category updated"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	category, err := h.categoryService.UpdateCategory(id, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if category == nil {
		respondWithError(c, apperrors.ErrCategoryNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory handles the deletion of a category and its budgets
// @Summary     Delete a category
// @Tags        categories
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Category in use"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.categoryService.DeleteCategory(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !deleted {
		respondWithError(c, apperrors.ErrCategoryNotFound)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Category deleted successfully"})
}

// GetCategorySpent returns the expense total of a category in [start, end)
// @Summary     Get category spending
// @Tags        categories
// @Produce     json
// @Param       id    path  int    true "Category ID"
// @Param       start query string true "Inclusive start date (YYYY-MM-DD)"
// @Param       end   query string true "Exclusive end date (YYYY-MM-DD)"
// @Success     200 {object} CategorySpentResponse "Spending"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id}/spent [get]
func (h *CategoryHandler) GetCategorySpent(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	if _, err := h.categoryService.GetCategoryByID(id); err != nil {
		respondWithError(c, err)
		return
	}

	spent, err := h.balanceService.GetCategorySpent(id, q.Start, q.End)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategorySpentResponse{CategoryID: id, Start: q.Start, End: q.End, Spent: spent})
}
