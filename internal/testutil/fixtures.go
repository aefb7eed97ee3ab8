package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"pocketledger/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestWallet creates a wallet with a unique name.
func CreateTestWallet(t *testing.T, db *gorm.DB) *models.Wallet {
	t.Helper()

	wallet := &models.Wallet{Name: fmt.Sprintf("Test Wallet %d", nextID())}
	if err := db.Create(wallet).Error; err != nil {
		t.Fatalf("failed to create test wallet: %v", err)
	}
	return wallet
}

// CreateTestCategory creates a category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: fmt.Sprintf("Test Category %d", nextID()),
		Type: categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestSavingsBucket creates a savings bucket with a unique name.
func CreateTestSavingsBucket(t *testing.T, db *gorm.DB) *models.SavingsBucket {
	t.Helper()

	bucket := &models.SavingsBucket{Name: fmt.Sprintf("Test Bucket %d", nextID())}
	if err := db.Create(bucket).Error; err != nil {
		t.Fatalf("failed to create test savings bucket: %v", err)
	}
	return bucket
}

// CreateTestTransaction inserts a ledger row directly, bypassing service
// validation. Transfer rows need a transfer ID; use CreateTestTransferLegs.
func CreateTestTransaction(t *testing.T, db *gorm.DB, walletID uint, txType models.TransactionType, amount int64, date string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:     txType,
		Amount:   amount,
		Date:     date,
		WalletID: walletID,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestExpense inserts an expense row for the given category.
func CreateTestExpense(t *testing.T, db *gorm.DB, walletID, categoryID uint, amount int64, date string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:       models.TransactionTypeExpense,
		Amount:     amount,
		Date:       date,
		WalletID:   walletID,
		CategoryID: &categoryID,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return tx
}

// CreateTestSavings inserts a savings allocation into the given bucket.
func CreateTestSavings(t *testing.T, db *gorm.DB, walletID, bucketID uint, amount int64, date string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:            models.TransactionTypeSavings,
		Amount:          amount,
		Date:            date,
		WalletID:        walletID,
		SavingsBucketID: &bucketID,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test savings row: %v", err)
	}
	return tx
}

// CreateTestBudget creates a budget for the given category and month key.
func CreateTestBudget(t *testing.T, db *gorm.DB, categoryID uint, month string, limit int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Month:       month,
		CategoryID:  categoryID,
		LimitAmount: limit,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CountTransactions returns the number of ledger rows.
func CountTransactions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count transactions: %v", err)
	}
	return count
}
