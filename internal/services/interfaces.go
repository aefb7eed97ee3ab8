package services

import (
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
)

// WalletServicer defines the contract for wallet-related business logic.
type WalletServicer interface {
	CreateWallet(name string) (*models.Wallet, error)
	GetWallets() ([]models.Wallet, error)
	GetWalletByID(id uint) (*models.Wallet, error)
	UpdateWallet(id uint, name string) (*models.Wallet, error)
	DeleteWallet(id uint) (bool, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name string, categoryType models.CategoryType) (*models.Category, error)
	GetCategories(categoryType *models.CategoryType) ([]models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
	UpdateCategory(id uint, name string) (*models.Category, error)
	DeleteCategory(id uint) (bool, error)
}

// SavingsBucketServicer defines the contract for savings bucket business logic.
type SavingsBucketServicer interface {
	CreateSavingsBucket(name string) (*models.SavingsBucket, error)
	GetSavingsBuckets() ([]models.SavingsBucket, error)
	GetSavingsBucketByID(id uint) (*models.SavingsBucket, error)
	UpdateSavingsBucket(id uint, name string) (*models.SavingsBucket, error)
	DeleteSavingsBucket(id uint) (bool, error)
}

// CreateTransactionInput holds the fields of a new non-transfer ledger row.
type CreateTransactionInput struct {
	Type            models.TransactionType
	Amount          int64
	Date            string
	Note            *string
	WalletID        uint
	CategoryID      *uint
	SavingsBucketID *uint
}

// TransactionPatch holds the fields to change on an existing ledger row.
// Nil fields are left untouched.
type TransactionPatch struct {
	Type            *models.TransactionType
	Amount          *int64
	Date            *string
	Note            *string
	WalletID        *uint
	CategoryID      *uint
	SavingsBucketID *uint
}

// TransactionFilter holds optional filter parameters for listing transactions.
// StartDate is inclusive and EndDate exclusive.
type TransactionFilter struct {
	StartDate       *string
	EndDate         *string
	Type            *models.TransactionType
	WalletID        *uint
	CategoryID      *uint
	SavingsBucketID *uint
	TransferID      *string
	Search          *string
}

// TransactionServicer defines the contract for ledger row storage.
type TransactionServicer interface {
	CreateTransaction(input CreateTransactionInput) (*models.Transaction, error)
	GetTransactionByID(id uint) (*models.Transaction, error)
	GetTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetAllTransactions(filter TransactionFilter) ([]models.Transaction, error)
	UpdateTransaction(id uint, patch TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(id uint) (bool, error)
}

// CreateTransferInput holds the fields of a transfer between two wallets.
type CreateTransferInput struct {
	FromWalletID uint
	ToWalletID   uint
	Amount       int64
	Date         string
	Note         *string
}

// TransferServicer defines the contract for paired transfer rows.
type TransferServicer interface {
	CreateTransfer(input CreateTransferInput) (*models.Transfer, error)
	DeleteTransfer(transferID string) (bool, error)
	GetTransactionsByTransferID(transferID string) ([]models.Transaction, error)
}

// BalanceServicer defines the read-side aggregates derived from the ledger.
// Date ranges are half-open: start inclusive, end exclusive.
type BalanceServicer interface {
	GetWalletBalance(walletID uint) (int64, error)
	GetAllWalletsWithBalances() ([]models.WalletWithBalance, error)
	GetNetWorth() (int64, error)
	GetTotalIncome(start, end string) (int64, error)
	GetTotalExpenses(start, end string) (int64, error)
	GetSpendingByCategory(start, end string) ([]models.CategorySpending, error)
	GetCategorySpent(categoryID uint, start, end string) (int64, error)
	GetBudgetsWithActual(month string) ([]models.BudgetWithActual, error)
	GetBudgetWithActual(id uint) (*models.BudgetWithActual, error)
	GetSavingsBucketsWithTotals() ([]models.SavingsBucketWithTotal, error)
	GetDashboardSummary(month string) (*models.DashboardSummary, error)
}

// BudgetInput holds the fields of a budget to create or upsert.
type BudgetInput struct {
	Month       string
	CategoryID  uint
	LimitAmount int64
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(input BudgetInput) (*models.Budget, error)
	GetBudgets(month string) ([]models.Budget, error)
	GetBudgetByID(id uint) (*models.Budget, error)
	UpdateBudget(id uint, limitAmount int64) (*models.Budget, error)
	DeleteBudget(id uint) (bool, error)
	UpsertBudget(input BudgetInput) (*models.Budget, error)
	CopyBudgetsToMonth(fromMonth, toMonth string) ([]models.Budget, error)
}
