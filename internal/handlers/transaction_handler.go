package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
	"pocketledger/internal/services"
)

// TransactionHandler handles ledger row requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	walletService      services.WalletServicer
	categoryService    services.CategoryServicer
	bucketService      services.SavingsBucketServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(
	transactionService services.TransactionServicer,
	walletService services.WalletServicer,
	categoryService services.CategoryServicer,
	bucketService services.SavingsBucketServicer,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		walletService:      walletService,
		categoryService:    categoryService,
		bucketService:      bucketService,
	}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. Amount is a decimal in minor units and is rounded to an integer.
type CreateTransactionRequest struct {
	Type            models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount          *decimal.Decimal       `json:"amount" binding:"required"`
	Date            string                 `json:"date" binding:"required,ymd_date"`
	Note            *string                `json:"note" binding:"omitempty,max=500"`
	WalletID        uint                   `json:"wallet_id" binding:"required"`
	CategoryID      *uint                  `json:"category_id"`
	SavingsBucketID *uint                  `json:"savings_bucket_id"`
}

// UpdateTransactionRequest represents the request payload for patching a
// transaction. Omitted fields are left unchanged.
type UpdateTransactionRequest struct {
	Type            *models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
	Amount          *decimal.Decimal        `json:"amount"`
	Date            *string                 `json:"date" binding:"omitempty,ymd_date"`
	Note            *string                 `json:"note" binding:"omitempty,max=500"`
	WalletID        *uint                   `json:"wallet_id"`
	CategoryID      *uint                   `json:"category_id"`
	SavingsBucketID *uint                   `json:"savings_bucket_id"`
}

// CreateTransaction handles the creation of an income, expense or savings row
// @Summary     Create a transaction
// @Description Transfers are rejected here; use POST /transfers.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Referenced wallet, category or bucket not found"
// @Failure     422 {object} ErrorResponse "Transfer type not allowed"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	amount, err := toMinorUnits(*req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(services.CreateTransactionInput{
		Type:            req.Type,
		Amount:          amount,
		Date:            req.Date,
		Note:            req.Note,
		WalletID:        req.WalletID,
		CategoryID:      req.CategoryID,
		SavingsBucketID: req.SavingsBucketID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions lists ledger rows, newest first
// @Summary     List transactions
// @Tags        transactions
// @Produce     json
// @Param       page              query int    false "Page number"
// @Param       page_size         query int    false "Page size"
// @Param       start             query string false "Inclusive start date"
// @Param       end               query string false "Exclusive end date"
// @Param       type              query string false "Transaction type"
// @Param       wallet_id         query int    false "Wallet ID"
// @Param       category_id       query int    false "Category ID"
// @Param       savings_bucket_id query int    false "Savings bucket ID"
// @Param       transfer_id       query string false "Transfer ID"
// @Param       q                 query string false "Search in notes"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetTransactions(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	filter.StartDate = optionalQuery(c, "start")
	filter.EndDate = optionalQuery(c, "end")
	filter.TransferID = optionalQuery(c, "transfer_id")
	filter.Search = optionalQuery(c, "q")

	if v := c.Query("type"); v != "" {
		txType := models.TransactionType(v)
		if !txType.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income, expense, transfer, or savings")
		}
		filter.Type = &txType
	}

	var err error
	if filter.WalletID, err = parseQueryID(c, "wallet_id"); err != nil {
		return filter, err
	}
	if filter.CategoryID, err = parseQueryID(c, "category_id"); err != nil {
		return filter, err
	}
	if filter.SavingsBucketID, err = parseQueryID(c, "savings_bucket_id"); err != nil {
		return filter, err
	}

	return filter, nil
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction applies a partial update to a non-transfer row
// @Summary     Update a transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path int                      true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to change"
// @Success     200 {object} models.Transaction "Transaction updated"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     422 {object} ErrorResponse "Transfer legs cannot be edited"
// @Router      /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	patch := services.TransactionPatch{
		Type:            req.Type,
		Date:            req.Date,
		Note:            req.Note,
		WalletID:        req.WalletID,
		CategoryID:      req.CategoryID,
		SavingsBucketID: req.SavingsBucketID,
	}
	if req.Amount != nil {
		amount, err := toMinorUnits(*req.Amount)
		if err != nil {
			respondWithError(c, err)
			return
		}
		patch.Amount = &amount
	}

	transaction, err := h.transactionService.UpdateTransaction(id, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if transaction == nil {
		respondWithError(c, apperrors.ErrTransactionNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction deletes a row; deleting a transfer leg removes both legs
// @Summary     Delete a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.transactionService.DeleteTransaction(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !deleted {
		respondWithError(c, apperrors.ErrTransactionNotFound)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted successfully"})
}

// ExportTransactions streams the filtered ledger as an XLSX workbook
// @Summary     Export transactions
// @Tags        transactions
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       start query string false "Inclusive start date"
// @Param       end   query string false "Exclusive end date"
// @Success     200 {file} file "Workbook"
// @Router      /transactions/export.xlsx [get]
func (h *TransactionHandler) ExportTransactions(c *gin.Context) {
	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.transactionService.GetAllTransactions(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	names, err := h.lookupNames()
	if err != nil {
		respondWithError(c, err)
		return
	}

	f, err := buildLedgerWorkbook(rows, names)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer func() { _ = f.Close() }()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename()+`"`)
	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

func (h *TransactionHandler) lookupNames() (ledgerNames, error) {
	names := ledgerNames{
		wallets:    map[uint]string{},
		categories: map[uint]string{},
		buckets:    map[uint]string{},
	}

	wallets, err := h.walletService.GetWallets()
	if err != nil {
		return names, err
	}
	for _, w := range wallets {
		names.wallets[w.ID] = w.Name
	}

	categories, err := h.categoryService.GetCategories(nil)
	if err != nil {
		return names, err
	}
	for _, cat := range categories {
		names.categories[cat.ID] = cat.Name
	}

	buckets, err := h.bucketService.GetSavingsBuckets()
	if err != nil {
		return names, err
	}
	for _, b := range buckets {
		names.buckets[b.ID] = b.Name
	}
	return names, nil
}
