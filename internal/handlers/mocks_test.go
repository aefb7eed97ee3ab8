package handlers

import (
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
	"pocketledger/internal/services"
)

// --- mock wallet service ---

type mockWalletService struct {
	createWalletFn  func(name string) (*models.Wallet, error)
	getWalletsFn    func() ([]models.Wallet, error)
	getWalletByIDFn func(id uint) (*models.Wallet, error)
	updateWalletFn  func(id uint, name string) (*models.Wallet, error)
	deleteWalletFn  func(id uint) (bool, error)
}

func (m *mockWalletService) CreateWallet(name string) (*models.Wallet, error) {
	if m.createWalletFn != nil {
		return m.createWalletFn(name)
	}
	return &models.Wallet{Name: name}, nil
}

func (m *mockWalletService) GetWallets() ([]models.Wallet, error) {
	if m.getWalletsFn != nil {
		return m.getWalletsFn()
	}
	return []models.Wallet{}, nil
}

func (m *mockWalletService) GetWalletByID(id uint) (*models.Wallet, error) {
	if m.getWalletByIDFn != nil {
		return m.getWalletByIDFn(id)
	}
	return &models.Wallet{Base: models.Base{ID: id}}, nil
}

func (m *mockWalletService) UpdateWallet(id uint, name string) (*models.Wallet, error) {
	if m.updateWalletFn != nil {
		return m.updateWalletFn(id, name)
	}
	return &models.Wallet{Base: models.Base{ID: id}, Name: name}, nil
}

func (m *mockWalletService) DeleteWallet(id uint) (bool, error) {
	if m.deleteWalletFn != nil {
		return m.deleteWalletFn(id)
	}
	return true, nil
}

var _ services.WalletServicer = (*mockWalletService)(nil)

// --- mock category service ---

type mockCategoryService struct {
	createCategoryFn  func(name string, categoryType models.CategoryType) (*models.Category, error)
	getCategoriesFn   func(categoryType *models.CategoryType) ([]models.Category, error)
	getCategoryByIDFn func(id uint) (*models.Category, error)
	updateCategoryFn  func(id uint, name string) (*models.Category, error)
	deleteCategoryFn  func(id uint) (bool, error)
}

func (m *mockCategoryService) CreateCategory(name string, categoryType models.CategoryType) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(name, categoryType)
	}
	return &models.Category{Name: name, Type: categoryType}, nil
}

func (m *mockCategoryService) GetCategories(categoryType *models.CategoryType) ([]models.Category, error) {
	if m.getCategoriesFn != nil {
		return m.getCategoriesFn(categoryType)
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) GetCategoryByID(id uint) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(id)
	}
	return &models.Category{Base: models.Base{ID: id}}, nil
}

func (m *mockCategoryService) UpdateCategory(id uint, name string) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(id, name)
	}
	return &models.Category{Base: models.Base{ID: id}, Name: name}, nil
}

func (m *mockCategoryService) DeleteCategory(id uint) (bool, error) {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(id)
	}
	return true, nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

// --- mock savings bucket service ---

type mockSavingsBucketService struct {
	createFn  func(name string) (*models.SavingsBucket, error)
	getAllFn  func() ([]models.SavingsBucket, error)
	getByIDFn func(id uint) (*models.SavingsBucket, error)
	updateFn  func(id uint, name string) (*models.SavingsBucket, error)
	deleteFn  func(id uint) (bool, error)
}

func (m *mockSavingsBucketService) CreateSavingsBucket(name string) (*models.SavingsBucket, error) {
	if m.createFn != nil {
		return m.createFn(name)
	}
	return &models.SavingsBucket{Name: name}, nil
}

func (m *mockSavingsBucketService) GetSavingsBuckets() ([]models.SavingsBucket, error) {
	if m.getAllFn != nil {
		return m.getAllFn()
	}
	return []models.SavingsBucket{}, nil
}

func (m *mockSavingsBucketService) GetSavingsBucketByID(id uint) (*models.SavingsBucket, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return &models.SavingsBucket{Base: models.Base{ID: id}}, nil
}

func (m *mockSavingsBucketService) UpdateSavingsBucket(id uint, name string) (*models.SavingsBucket, error) {
	if m.updateFn != nil {
		return m.updateFn(id, name)
	}
	return &models.SavingsBucket{Base: models.Base{ID: id}, Name: name}, nil
}

func (m *mockSavingsBucketService) DeleteSavingsBucket(id uint) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return true, nil
}

var _ services.SavingsBucketServicer = (*mockSavingsBucketService)(nil)

// --- mock transaction service ---

type mockTransactionService struct {
	createFn  func(input services.CreateTransactionInput) (*models.Transaction, error)
	getByIDFn func(id uint) (*models.Transaction, error)
	listFn    func(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getAllFn  func(filter services.TransactionFilter) ([]models.Transaction, error)
	updateFn  func(id uint, patch services.TransactionPatch) (*models.Transaction, error)
	deleteFn  func(id uint) (bool, error)
}

func (m *mockTransactionService) CreateTransaction(input services.CreateTransactionInput) (*models.Transaction, error) {
	if m.createFn != nil {
		return m.createFn(input)
	}
	return &models.Transaction{Type: input.Type, Amount: input.Amount, Date: input.Date, WalletID: input.WalletID}, nil
}

func (m *mockTransactionService) GetTransactionByID(id uint) (*models.Transaction, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return &models.Transaction{Base: models.Base{ID: id}}, nil
}

func (m *mockTransactionService) GetTransactions(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.listFn != nil {
		return m.listFn(page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, pagination.DefaultPageSize, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetAllTransactions(filter services.TransactionFilter) ([]models.Transaction, error) {
	if m.getAllFn != nil {
		return m.getAllFn(filter)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(id uint, patch services.TransactionPatch) (*models.Transaction, error) {
	if m.updateFn != nil {
		return m.updateFn(id, patch)
	}
	return &models.Transaction{Base: models.Base{ID: id}}, nil
}

func (m *mockTransactionService) DeleteTransaction(id uint) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return true, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

// --- mock transfer service ---

type mockTransferService struct {
	createFn  func(input services.CreateTransferInput) (*models.Transfer, error)
	deleteFn  func(transferID string) (bool, error)
	getLegsFn func(transferID string) ([]models.Transaction, error)
}

func (m *mockTransferService) CreateTransfer(input services.CreateTransferInput) (*models.Transfer, error) {
	if m.createFn != nil {
		return m.createFn(input)
	}
	return &models.Transfer{ID: "t-1"}, nil
}

func (m *mockTransferService) DeleteTransfer(transferID string) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(transferID)
	}
	return true, nil
}

func (m *mockTransferService) GetTransactionsByTransferID(transferID string) ([]models.Transaction, error) {
	if m.getLegsFn != nil {
		return m.getLegsFn(transferID)
	}
	return []models.Transaction{}, nil
}

var _ services.TransferServicer = (*mockTransferService)(nil)

// --- mock balance service ---

type mockBalanceService struct {
	walletBalanceFn       func(walletID uint) (int64, error)
	walletsWithBalancesFn func() ([]models.WalletWithBalance, error)
	netWorthFn            func() (int64, error)
	totalIncomeFn         func(start, end string) (int64, error)
	totalExpensesFn       func(start, end string) (int64, error)
	spendingFn            func(start, end string) ([]models.CategorySpending, error)
	categorySpentFn       func(categoryID uint, start, end string) (int64, error)
	budgetsWithActualFn   func(month string) ([]models.BudgetWithActual, error)
	budgetWithActualFn    func(id uint) (*models.BudgetWithActual, error)
	bucketsWithTotalsFn   func() ([]models.SavingsBucketWithTotal, error)
	dashboardFn           func(month string) (*models.DashboardSummary, error)
}

func (m *mockBalanceService) GetWalletBalance(walletID uint) (int64, error) {
	if m.walletBalanceFn != nil {
		return m.walletBalanceFn(walletID)
	}
	return 0, nil
}

func (m *mockBalanceService) GetAllWalletsWithBalances() ([]models.WalletWithBalance, error) {
	if m.walletsWithBalancesFn != nil {
		return m.walletsWithBalancesFn()
	}
	return []models.WalletWithBalance{}, nil
}

func (m *mockBalanceService) GetNetWorth() (int64, error) {
	if m.netWorthFn != nil {
		return m.netWorthFn()
	}
	return 0, nil
}

func (m *mockBalanceService) GetTotalIncome(start, end string) (int64, error) {
	if m.totalIncomeFn != nil {
		return m.totalIncomeFn(start, end)
	}
	return 0, nil
}

func (m *mockBalanceService) GetTotalExpenses(start, end string) (int64, error) {
	if m.totalExpensesFn != nil {
		return m.totalExpensesFn(start, end)
	}
	return 0, nil
}

func (m *mockBalanceService) GetSpendingByCategory(start, end string) ([]models.CategorySpending, error) {
	if m.spendingFn != nil {
		return m.spendingFn(start, end)
	}
	return []models.CategorySpending{}, nil
}

func (m *mockBalanceService) GetCategorySpent(categoryID uint, start, end string) (int64, error) {
	if m.categorySpentFn != nil {
		return m.categorySpentFn(categoryID, start, end)
	}
	return 0, nil
}

func (m *mockBalanceService) GetBudgetsWithActual(month string) ([]models.BudgetWithActual, error) {
	if m.budgetsWithActualFn != nil {
		return m.budgetsWithActualFn(month)
	}
	return []models.BudgetWithActual{}, nil
}

func (m *mockBalanceService) GetBudgetWithActual(id uint) (*models.BudgetWithActual, error) {
	if m.budgetWithActualFn != nil {
		return m.budgetWithActualFn(id)
	}
	return &models.BudgetWithActual{}, nil
}

func (m *mockBalanceService) GetSavingsBucketsWithTotals() ([]models.SavingsBucketWithTotal, error) {
	if m.bucketsWithTotalsFn != nil {
		return m.bucketsWithTotalsFn()
	}
	return []models.SavingsBucketWithTotal{}, nil
}

func (m *mockBalanceService) GetDashboardSummary(month string) (*models.DashboardSummary, error) {
	if m.dashboardFn != nil {
		return m.dashboardFn(month)
	}
	return &models.DashboardSummary{Month: month}, nil
}

var _ services.BalanceServicer = (*mockBalanceService)(nil)

// --- mock budget service ---

type mockBudgetService struct {
	createFn  func(input services.BudgetInput) (*models.Budget, error)
	listFn    func(month string) ([]models.Budget, error)
	getByIDFn func(id uint) (*models.Budget, error)
	updateFn  func(id uint, limitAmount int64) (*models.Budget, error)
	deleteFn  func(id uint) (bool, error)
	upsertFn  func(input services.BudgetInput) (*models.Budget, error)
	copyFn    func(fromMonth, toMonth string) ([]models.Budget, error)
}

func (m *mockBudgetService) CreateBudget(input services.BudgetInput) (*models.Budget, error) {
	if m.createFn != nil {
		return m.createFn(input)
	}
	return &models.Budget{Month: input.Month, CategoryID: input.CategoryID, LimitAmount: input.LimitAmount}, nil
}

func (m *mockBudgetService) GetBudgets(month string) ([]models.Budget, error) {
	if m.listFn != nil {
		return m.listFn(month)
	}
	return []models.Budget{}, nil
}

func (m *mockBudgetService) GetBudgetByID(id uint) (*models.Budget, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return &models.Budget{Base: models.Base{ID: id}}, nil
}

func (m *mockBudgetService) UpdateBudget(id uint, limitAmount int64) (*models.Budget, error) {
	if m.updateFn != nil {
		return m.updateFn(id, limitAmount)
	}
	return &models.Budget{Base: models.Base{ID: id}, LimitAmount: limitAmount}, nil
}

func (m *mockBudgetService) DeleteBudget(id uint) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return true, nil
}

func (m *mockBudgetService) UpsertBudget(input services.BudgetInput) (*models.Budget, error) {
	if m.upsertFn != nil {
		return m.upsertFn(input)
	}
	return &models.Budget{Month: input.Month, CategoryID: input.CategoryID, LimitAmount: input.LimitAmount}, nil
}

func (m *mockBudgetService) CopyBudgetsToMonth(fromMonth, toMonth string) ([]models.Budget, error) {
	if m.copyFn != nil {
		return m.copyFn(fromMonth, toMonth)
	}
	return []models.Budget{}, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)
