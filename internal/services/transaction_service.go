package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
	"pocketledger/internal/period"
)

// transactionService is the ledger store: it persists individual rows and
// routes deletes of transfer legs through the paired transfer path.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction inserts one income, expense or savings row. Transfers
// must go through TransferServicer so both legs are written together.
func (s *transactionService) CreateTransaction(input CreateTransactionInput) (*models.Transaction, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.Type == models.TransactionTypeTransfer {
		return nil, apperrors.ErrUseTransferEndpoint
	}
	if !input.Type.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if err := period.ValidateDate(input.Date); err != nil {
		return nil, err
	}
	note, err := normalizeNote(input.Note)
	if err != nil {
		return nil, err
	}
	if input.WalletID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "wallet ID is required")
	}

	transaction := &models.Transaction{
		Type:            input.Type,
		Amount:          input.Amount,
		Date:            input.Date,
		Note:            note,
		WalletID:        input.WalletID,
		CategoryID:      input.CategoryID,
		SavingsBucketID: input.SavingsBucketID,
	}
	if err := s.checkReferences(transaction); err != nil {
		return nil, err
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, translateWriteError(err, nil, referencedRowMissing)
	}
	return transaction, nil
}

// checkReferences verifies the row's wallet, category and savings bucket
// exist and that the type-specific references are present.
func (s *transactionService) checkReferences(t *models.Transaction) error {
	if t.Type == models.TransactionTypeExpense && t.CategoryID == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category ID is required for expense transactions")
	}
	if t.Type == models.TransactionTypeSavings && t.SavingsBucketID == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "savings bucket ID is required for savings transactions")
	}

	if err := ensureExists(s.db, &models.Wallet{}, t.WalletID, apperrors.ErrWalletNotFound); err != nil {
		return err
	}
	if t.CategoryID != nil {
		if err := ensureExists(s.db, &models.Category{}, *t.CategoryID, apperrors.ErrCategoryNotFound); err != nil {
			return err
		}
	}
	if t.SavingsBucketID != nil {
		if err := ensureExists(s.db, &models.SavingsBucket{}, *t.SavingsBucketID, apperrors.ErrSavingsBucketNotFound); err != nil {
			return err
		}
	}
	return nil
}

// GetTransactionByID retrieves a single ledger row.
func (s *transactionService) GetTransactionByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, storageError(err)
	}
	return &transaction, nil
}

// GetTransactions retrieves a paginated, filtered list of ledger rows, newest first.
func (s *transactionService) GetTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	page.Defaults()

	// Session makes base safe to reuse for both the count and the page query.
	base := applyTransactionFilters(s.db.Model(&models.Transaction{}), filter).Session(&gorm.Session{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, storageError(err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").Order("id DESC").
		Find(&transactions).Error; err != nil {
		return nil, storageError(err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAllTransactions returns every row matching filter in chronological order.
func (s *transactionService) GetAllTransactions(filter TransactionFilter) ([]models.Transaction, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}

	transactions := []models.Transaction{}
	if err := applyTransactionFilters(s.db.Model(&models.Transaction{}), filter).
		Order("date ASC").Order("id ASC").
		Find(&transactions).Error; err != nil {
		return nil, storageError(err)
	}
	return transactions, nil
}

func (f TransactionFilter) validate() error {
	if f.StartDate != nil {
		if err := period.ValidateDate(*f.StartDate); err != nil {
			return err
		}
	}
	if f.EndDate != nil {
		if err := period.ValidateDate(*f.EndDate); err != nil {
			return err
		}
	}
	if f.Type != nil && !f.Type.Valid() {
		return apperrors.ErrInvalidTransactionType
	}
	return nil
}

// applyTransactionFilters adds one parameterized predicate per set filter field.
func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.StartDate != nil {
		q = q.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date < ?", *f.EndDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.WalletID != nil {
		q = q.Where("wallet_id = ?", *f.WalletID)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.SavingsBucketID != nil {
		q = q.Where("savings_bucket_id = ?", *f.SavingsBucketID)
	}
	if f.TransferID != nil {
		q = q.Where("transfer_id = ?", *f.TransferID)
	}
	if f.Search != nil && *f.Search != "" {
		q = q.Where("LOWER(note) LIKE LOWER(?)", "%"+*f.Search+"%")
	}
	return q
}

// UpdateTransaction applies the supplied fields to a non-transfer row. It
// returns nil, nil when the row does not exist. Transfer legs cannot be
// edited and no row may be turned into a transfer.
func (s *transactionService) UpdateTransaction(id uint, patch TransactionPatch) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if transaction.IsTransferLeg() {
		return nil, apperrors.ErrTransactionNotEditable
	}

	updates := make(map[string]interface{})
	merged := *transaction

	if patch.Type != nil {
		if *patch.Type == models.TransactionTypeTransfer {
			return nil, apperrors.ErrInvalidTypeChange
		}
		if !patch.Type.Valid() {
			return nil, apperrors.ErrInvalidTransactionType
		}
		merged.Type = *patch.Type
		updates["type"] = *patch.Type
	}
	if patch.Amount != nil {
		if err := validateAmount(*patch.Amount); err != nil {
			return nil, err
		}
		merged.Amount = *patch.Amount
		updates["amount"] = *patch.Amount
	}
	if patch.Date != nil {
		if err := period.ValidateDate(*patch.Date); err != nil {
			return nil, err
		}
		merged.Date = *patch.Date
		updates["date"] = *patch.Date
	}
	if patch.Note != nil {
		note, err := normalizeNote(patch.Note)
		if err != nil {
			return nil, err
		}
		merged.Note = note
		updates["note"] = note
	}
	if patch.WalletID != nil {
		merged.WalletID = *patch.WalletID
		updates["wallet_id"] = *patch.WalletID
	}
	if patch.CategoryID != nil {
		merged.CategoryID = patch.CategoryID
		updates["category_id"] = *patch.CategoryID
	}
	if patch.SavingsBucketID != nil {
		merged.SavingsBucketID = patch.SavingsBucketID
		updates["savings_bucket_id"] = *patch.SavingsBucketID
	}

	if len(updates) == 0 {
		return transaction, nil
	}
	if err := s.checkReferences(&merged); err != nil {
		return nil, err
	}

	if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
		return nil, translateWriteError(err, nil, referencedRowMissing)
	}
	return s.GetTransactionByID(id)
}

// DeleteTransaction removes a ledger row. Deleting either leg of a transfer
// removes both legs in the same database transaction. It reports whether
// anything was deleted.
func (s *transactionService) DeleteTransaction(id uint) (bool, error) {
	var deleted bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var transaction models.Transaction
		if err := tx.First(&transaction, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return storageError(err)
		}

		if transaction.IsTransferLeg() && transaction.TransferID != nil {
			n, err := deleteTransferLegs(tx, *transaction.TransferID)
			if err != nil {
				return err
			}
			deleted = n > 0
			return nil
		}

		result := tx.Delete(&models.Transaction{}, id)
		if result.Error != nil {
			return storageError(result.Error)
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
