package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/services"
)

// TransferHandler handles transfers between wallets.
type TransferHandler struct {
	transferService services.TransferServicer
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferService services.TransferServicer) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// CreateTransferRequest represents the request payload for a transfer.
// Wallet and amount checks are left to the transfer service so callers get
// its specific error codes.
type CreateTransferRequest struct {
	FromWalletID uint             `json:"from_wallet_id" binding:"required"`
	ToWalletID   uint             `json:"to_wallet_id" binding:"required"`
	Amount       *decimal.Decimal `json:"amount" binding:"required"`
	Date         string           `json:"date" binding:"required,ymd_date"`
	Note         *string          `json:"note" binding:"omitempty,max=500"`
}

// CreateTransfer moves money between two wallets as one paired entry
// @Summary     Create a transfer
// @Tags        transfers
// @Accept      json
// @Produce     json
// @Param       request body CreateTransferRequest true "Transfer details"
// @Success     201 {object} models.Transfer "Transfer created"
// @Failure     400 {object} ErrorResponse "Same wallet or non-positive amount"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Router      /transfers [post]
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	amount, err := toMinorUnits(*req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transfer, err := h.transferService.CreateTransfer(services.CreateTransferInput{
		FromWalletID: req.FromWalletID,
		ToWalletID:   req.ToWalletID,
		Amount:       amount,
		Date:         req.Date,
		Note:         req.Note,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transfer": transfer})
}

// GetTransfer returns both legs of a transfer
// @Summary     Get transfer legs
// @Tags        transfers
// @Produce     json
// @Param       id path string true "Transfer ID"
// @Success     200 {array} models.Transaction "Legs, outgoing first"
// @Failure     404 {object} ErrorResponse "Transfer not found"
// @Router      /transfers/{id} [get]
func (h *TransferHandler) GetTransfer(c *gin.Context) {
	transferID := c.Param("id")

	legs, err := h.transferService.GetTransactionsByTransferID(transferID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if len(legs) == 0 {
		respondWithError(c, apperrors.ErrTransferNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": transferID, "transactions": legs})
}

// DeleteTransfer removes both legs of a transfer
// @Summary     Delete a transfer
// @Tags        transfers
// @Produce     json
// @Param       id path string true "Transfer ID"
// @Success     200 {object} MessageResponse "Transfer deleted"
// @Failure     404 {object} ErrorResponse "Transfer not found"
// @Router      /transfers/{id} [delete]
func (h *TransferHandler) DeleteTransfer(c *gin.Context) {
	deleted, err := h.transferService.DeleteTransfer(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !deleted {
		respondWithError(c, apperrors.ErrTransferNotFound)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Transfer deleted successfully"})
}
