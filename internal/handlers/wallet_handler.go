package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/services"
)

// WalletHandler handles wallet-related requests.
type WalletHandler struct {
	walletService  services.WalletServicer
	balanceService services.BalanceServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService services.WalletServicer, balanceService services.BalanceServicer) *WalletHandler {
	return &WalletHandler{walletService: walletService, balanceService: balanceService}
}

// WalletRequest is the payload for creating or renaming a wallet.
type WalletRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// WalletBalanceResponse is the derived balance of one wallet.
type WalletBalanceResponse struct {
	WalletID uint  `json:"wallet_id"`
	Balance  int64 `json:"balance"`
}

// CreateWallet handles the creation of a new wallet
// @Summary     Create a wallet
// @Tags        wallets
// @Accept      json
// @Produce     json
// @Param       request body WalletRequest true "Wallet details"
// @Success     201 {object} models.Wallet "Wallet created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Router      /wallets [post]
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	var req WalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	wallet, err := h.walletService.CreateWallet(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"wallet": wallet})
}

// GetWallets lists every wallet with its derived balance, ordered by name
// @Summary     List wallets
// @Tags        wallets
// @Produce     json
// @Success     200 {array} models.WalletWithBalance "Wallets"
// @Router      /wallets [get]
func (h *WalletHandler) GetWallets(c *gin.Context) {
	wallets, err := h.balanceService.GetAllWalletsWithBalances()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallets": wallets})
}

// GetWalletByID handles the retrieval of a specific wallet
// @Summary     Get wallet by ID
// @Tags        wallets
// @Produce     json
// @Param       id path int true "Wallet ID"
// @Success     200 {object} models.Wallet "Wallet details"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Router      /wallets/{id} [get]
func (h *WalletHandler) GetWalletByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	wallet, err := h.walletService.GetWalletByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallet": wallet})
}

// UpdateWallet renames a wallet
// @Summary     Rename a wallet
// @Tags        wallets
// @Accept      json
// @Produce     json
// @Param       id      path int           true "Wallet ID"
// @Param       request body WalletRequest true "New name"
// @Success     200 {object} models.Wallet "Wallet updated"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Router      /wallets/{id} [put]
func (h *WalletHandler) UpdateWallet(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req WalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	wallet, err := h.walletService.UpdateWallet(id, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if wallet == nil {
		respondWithError(c, apperrors.ErrWalletNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallet": wallet})
}

// DeleteWallet deletes a wallet that has no transactions
// @Summary     Delete a wallet
// @Tags        wallets
// @Produce     json
// @Param       id path int true "Wallet ID"
// @Success     200 {object} MessageResponse "Wallet deleted"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Failure     409 {object} ErrorResponse "Wallet in use"
// @Router      /wallets/{id} [delete]
func (h *WalletHandler) DeleteWallet(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.walletService.DeleteWallet(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !deleted {
		respondWithError(c, apperrors.ErrWalletNotFound)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Wallet deleted successfully"})
}

// GetWalletBalance returns the derived balance of one wallet
// @Summary     Get wallet balance
// @Tags        wallets
// @Produce     json
// @Param       id path int true "Wallet ID"
// @Success     200 {object} WalletBalanceResponse "Balance"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Router      /wallets/{id}/balance [get]
func (h *WalletHandler) GetWalletBalance(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, err := h.walletService.GetWalletByID(id); err != nil {
		respondWithError(c, err)
		return
	}

	balance, err := h.balanceService.GetWalletBalance(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, WalletBalanceResponse{WalletID: id, Balance: balance})
}
