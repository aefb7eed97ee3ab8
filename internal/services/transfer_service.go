package services

import (
	"gorm.io/gorm"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/period"
	"pocketledger/internal/uuid"
)

// transferService writes and removes the two ledger rows of a transfer as a
// single unit.
type transferService struct {
	db *gorm.DB
}

// NewTransferService creates a new TransferServicer.
func NewTransferService(db *gorm.DB) TransferServicer {
	return &transferService{db: db}
}

// CreateTransfer moves amount from one wallet to another. The outgoing leg
// is stored as -amount and the incoming leg as +amount under one shared
// transfer ID; both inserts commit together or not at all.
func (s *transferService) CreateTransfer(input CreateTransferInput) (*models.Transfer, error) {
	if input.FromWalletID == input.ToWalletID {
		return nil, apperrors.ErrSameWalletTransfer
	}
	if input.Amount <= 0 {
		return nil, apperrors.ErrNonPositiveTransfer
	}
	if err := period.ValidateDate(input.Date); err != nil {
		return nil, err
	}
	note, err := normalizeNote(input.Note)
	if err != nil {
		return nil, err
	}

	if err := ensureExists(s.db, &models.Wallet{}, input.FromWalletID,
		apperrors.WithMessage(apperrors.ErrWalletNotFound, "Source wallet not found")); err != nil {
		return nil, err
	}
	if err := ensureExists(s.db, &models.Wallet{}, input.ToWalletID,
		apperrors.WithMessage(apperrors.ErrWalletNotFound, "Destination wallet not found")); err != nil {
		return nil, err
	}

	transferID := uuid.NewTransferID()
	from := &models.Transaction{
		Type:       models.TransactionTypeTransfer,
		Amount:     -input.Amount,
		Date:       input.Date,
		Note:       note,
		WalletID:   input.FromWalletID,
		TransferID: &transferID,
	}
	to := &models.Transaction{
		Type:       models.TransactionTypeTransfer,
		Amount:     input.Amount,
		Date:       input.Date,
		Note:       note,
		WalletID:   input.ToWalletID,
		TransferID: &transferID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(from).Error; err != nil {
			return translateWriteError(err, nil, referencedRowMissing)
		}
		if err := tx.Create(to).Error; err != nil {
			return translateWriteError(err, nil, referencedRowMissing)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.Transfer{
		ID:              transferID,
		FromTransaction: from,
		ToTransaction:   to,
	}, nil
}

// DeleteTransfer removes every row sharing transferID and reports whether
// any existed.
func (s *transferService) DeleteTransfer(transferID string) (bool, error) {
	transferID, err := uuid.Normalize(transferID)
	if err != nil {
		return false, nil
	}

	var n int64
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		n, err = deleteTransferLegs(tx, transferID)
		return err
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetTransactionsByTransferID returns the legs of a transfer, outgoing leg
// first. The result is empty, not nil, when no rows match.
func (s *transferService) GetTransactionsByTransferID(transferID string) ([]models.Transaction, error) {
	legs := []models.Transaction{}
	transferID, err := uuid.Normalize(transferID)
	if err != nil {
		return legs, nil
	}
	if err := s.db.Where("transfer_id = ?", transferID).
		Order("amount ASC").Order("id ASC").
		Find(&legs).Error; err != nil {
		return nil, storageError(err)
	}
	return legs, nil
}

// deleteTransferLegs deletes both legs of a transfer using tx, which the
// caller must have opened so the pair disappears atomically.
func deleteTransferLegs(tx *gorm.DB, transferID string) (int64, error) {
	result := tx.Where("transfer_id = ? AND type = ?", transferID, models.TransactionTypeTransfer).
		Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, storageError(result.Error)
	}
	return result.RowsAffected, nil
}
