package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
)

// walletService handles wallet-related business logic.
type walletService struct {
	db *gorm.DB
}

// NewWalletService creates a new WalletServicer.
func NewWalletService(db *gorm.DB) WalletServicer {
	return &walletService{db: db}
}

// CreateWallet creates a wallet with a unique name.
func (s *walletService) CreateWallet(name string) (*models.Wallet, error) {
	name, err := normalizeName("wallet", name)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Wallet{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, storageError(err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateWallet
	}

	wallet := &models.Wallet{Name: name}
	if err := s.db.Create(wallet).Error; err != nil {
		return nil, translateWriteError(err, apperrors.ErrDuplicateWallet, nil)
	}
	return wallet, nil
}

// GetWallets returns every wallet ordered by name.
func (s *walletService) GetWallets() ([]models.Wallet, error) {
	wallets := []models.Wallet{}
	if err := s.db.Order("name ASC").Find(&wallets).Error; err != nil {
		return nil, storageError(err)
	}
	return wallets, nil
}

// GetWalletByID retrieves a wallet by ID.
func (s *walletService) GetWalletByID(id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := s.db.First(&wallet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWalletNotFound
		}
		return nil, storageError(err)
	}
	return &wallet, nil
}

// UpdateWallet renames a wallet. It returns nil, nil when the wallet does not exist.
func (s *walletService) UpdateWallet(id uint, name string) (*models.Wallet, error) {
	name, err := normalizeName("wallet", name)
	if err != nil {
		return nil, err
	}

	wallet, err := s.GetWalletByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrWalletNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if wallet.Name == name {
		return wallet, nil
	}

	var count int64
	if err := s.db.Model(&models.Wallet{}).Where("name = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
		return nil, storageError(err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateWallet
	}

	if err := s.db.Model(wallet).Update("name", name).Error; err != nil {
		return nil, translateWriteError(err, apperrors.ErrDuplicateWallet, nil)
	}
	wallet.Name = name
	return wallet, nil
}

// DeleteWallet removes a wallet that has no ledger rows. It reports false when
// the wallet does not exist and ErrWalletInUse when rows still reference it.
func (s *walletService) DeleteWallet(id uint) (bool, error) {
	return deleteUnreferenced(s.db, &models.Wallet{}, id, "wallet_id", apperrors.ErrWalletInUse)
}
