package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/services"
)

// SavingsBucketHandler handles savings bucket requests.
type SavingsBucketHandler struct {
	bucketService  services.SavingsBucketServicer
	balanceService services.BalanceServicer
}

// NewSavingsBucketHandler creates a new SavingsBucketHandler.
func NewSavingsBucketHandler(bucketService services.SavingsBucketServicer, balanceService services.BalanceServicer) *SavingsBucketHandler {
	return &SavingsBucketHandler{bucketService: bucketService, balanceService: balanceService}
}

// SavingsBucketRequest is the payload for creating or renaming a bucket.
type SavingsBucketRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CreateSavingsBucket creates a savings bucket
// @Summary     Create a savings bucket
// @Tags        savings-buckets
// @Accept      json
// @Produce     json
// @Param       request body SavingsBucketRequest true "Bucket details"
// @Success     201 {object} models.SavingsBucket "Bucket created"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Router      /savings-buckets [post]
func (h *SavingsBucketHandler) CreateSavingsBucket(c *gin.Context) {
	var req SavingsBucketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	bucket, err := h.bucketService.CreateSavingsBucket(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"savings_bucket": bucket})
}

// GetSavingsBuckets lists buckets with the total allocated to each
// @Summary     List savings buckets
// @Tags        savings-buckets
// @Produce     json
// @Success     200 {array} models.SavingsBucketWithTotal "Buckets"
// @Router      /savings-buckets [get]
func (h *SavingsBucketHandler) GetSavingsBuckets(c *gin.Context) {
	buckets, err := h.balanceService.GetSavingsBucketsWithTotals()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savings_buckets": buckets})
}

// GetSavingsBucketByID returns one bucket
// @Summary     Get savings bucket by ID
// @Tags        savings-buckets
// @Produce     json
// @Param       id path int true "Bucket ID"
// @Success     200 {object} models.SavingsBucket "Bucket"
// @Failure     404 {object} ErrorResponse "Bucket not found"
// @Router      /savings-buckets/{id} [get]
func (h *SavingsBucketHandler) GetSavingsBucketByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bucket, err := h.bucketService.GetSavingsBucketByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savings_bucket": bucket})
}

// UpdateSavingsBucket renames a bucket
// @Summary     Rename a savings bucket
// @Tags        savings-buckets
// @Accept      json
// @Produce     json
// @Param       id      path int                  true "Bucket ID"
// @Param       request body SavingsBucketRequest true "New name"
// @Success     200 {object} models.SavingsBucket "Bucket updated"
// @Failure     404 {object} ErrorResponse "Bucket not found"
// @Router      /savings-buckets/{id} [put]
func (h *SavingsBucketHandler) UpdateSavingsBucket(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SavingsBucketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	bucket, err := h.bucketService.UpdateSavingsBucket(id, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if bucket == nil {
		respondWithError(c, apperrors.ErrSavingsBucketNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savings_bucket": bucket})
}

// DeleteSavingsBucket deletes a bucket with no allocations
// @Summary     Delete a savings bucket
// @Tags        savings-buckets
// @Produce     json
// @Param       id path int true "Bucket ID"
// @Success     200 {object} MessageResponse "Bucket deleted"
// @Failure     404 {object} ErrorResponse "Bucket not found"
// @Failure     409 {object} ErrorResponse "Bucket in use"
// @Router      /savings-buckets/{id} [delete]
func (h *SavingsBucketHandler) DeleteSavingsBucket(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.bucketService.DeleteSavingsBucket(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !deleted {
		respondWithError(c, apperrors.ErrSavingsBucketNotFound)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Savings bucket deleted successfully"})
}
