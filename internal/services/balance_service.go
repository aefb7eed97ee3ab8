package services

import (
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/period"
)

// balanceService derives balances and totals from the ledger. Nothing it
// returns is stored; every figure is summed from transactions on each call.
type balanceService struct {
	db *gorm.DB
}

// NewBalanceService creates a new BalanceServicer.
func NewBalanceService(db *gorm.DB) BalanceServicer {
	return &balanceService{db: db}
}

// signedTotal is the scan target of a grouped signed sum.
type signedTotal struct {
	ID    uint
	Total int64
}

// GetWalletBalance returns the signed sum of every row of the wallet, 0 when
// it has none.
func (s *balanceService) GetWalletBalance(walletID uint) (int64, error) {
	expr, args := signedSumExpr("")
	var balance int64
	if err := s.db.Model(&models.Transaction{}).
		Select(expr, args...).
		Where("wallet_id = ?", walletID).
		Scan(&balance).Error; err != nil {
		return 0, storageError(err)
	}
	return balance, nil
}

// GetAllWalletsWithBalances returns every wallet with its derived balance,
// ordered by name.
func (s *balanceService) GetAllWalletsWithBalances() ([]models.WalletWithBalance, error) {
	var wallets []models.Wallet
	if err := s.db.Order("name ASC").Find(&wallets).Error; err != nil {
		return nil, storageError(err)
	}

	expr, args := signedSumExpr("")
	var totals []signedTotal
	if err := s.db.Model(&models.Transaction{}).
		Select("wallet_id AS id, "+expr+" AS total", args...).
		Group("wallet_id").
		Scan(&totals).Error; err != nil {
		return nil, storageError(err)
	}
	byWallet := make(map[uint]int64, len(totals))
	for _, t := range totals {
		byWallet[t.ID] = t.Total
	}

	result := make([]models.WalletWithBalance, 0, len(wallets))
	for _, w := range wallets {
		result = append(result, models.WalletWithBalance{Wallet: w, Balance: byWallet[w.ID]})
	}
	return result, nil
}

// GetNetWorth returns the signed sum of the whole ledger. Transfer legs
// cancel out, so transfers never change it.
func (s *balanceService) GetNetWorth() (int64, error) {
	expr, args := signedSumExpr("")
	var total int64
	if err := s.db.Model(&models.Transaction{}).Select(expr, args...).Scan(&total).Error; err != nil {
		return 0, storageError(err)
	}
	return total, nil
}

// GetTotalIncome sums income amounts dated in [start, end).
func (s *balanceService) GetTotalIncome(start, end string) (int64, error) {
	return s.sumByType(models.TransactionTypeIncome, start, end)
}

// GetTotalExpenses sums expense amounts dated in [start, end) as a positive
// magnitude.
func (s *balanceService) GetTotalExpenses(start, end string) (int64, error) {
	return s.sumByType(models.TransactionTypeExpense, start, end)
}

func (s *balanceService) sumByType(t models.TransactionType, start, end string) (int64, error) {
	if err := validateRange(start, end); err != nil {
		return 0, err
	}
	var total int64
	if err := s.db.Model(&models.Transaction{}).
		Select("CAST(COALESCE(SUM(amount), 0) AS BIGINT)").
		Where("type = ? AND date >= ? AND date < ?", t, start, end).
		Scan(&total).Error; err != nil {
		return 0, storageError(err)
	}
	return total, nil
}

// GetSpendingByCategory returns the expense total of each expense category
// with spending in [start, end), largest first. Categories without spending
// are left out.
func (s *balanceService) GetSpendingByCategory(start, end string) ([]models.CategorySpending, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	spending := []models.CategorySpending{}
	if err := s.db.Table("transactions AS t").
		Select("c.id AS category_id, c.name AS category_name, CAST(SUM(t.amount) AS BIGINT) AS total").
		Joins("JOIN categories c ON c.id = t.category_id").
		Where("t.type = ? AND c.type = ? AND t.date >= ? AND t.date < ?",
			models.TransactionTypeExpense, models.CategoryTypeExpense, start, end).
		Group("c.id, c.name").
		Having("SUM(t.amount) > 0").
		Order("total DESC").Order("c.name ASC").
		Scan(&spending).Error; err != nil {
		return nil, storageError(err)
	}
	return spending, nil
}

// GetCategorySpent sums the expense rows of one category dated in [start, end).
func (s *balanceService) GetCategorySpent(categoryID uint, start, end string) (int64, error) {
	if err := validateRange(start, end); err != nil {
		return 0, err
	}
	var total int64
	if err := s.db.Model(&models.Transaction{}).
		Select("CAST(COALESCE(SUM(amount), 0) AS BIGINT)").
		Where("type = ? AND category_id = ? AND date >= ? AND date < ?",
			models.TransactionTypeExpense, categoryID, start, end).
		Scan(&total).Error; err != nil {
		return 0, storageError(err)
	}
	return total, nil
}

// GetBudgetsWithActual returns the budgets of month with the month's expense
// total of each budget's category.
func (s *balanceService) GetBudgetsWithActual(month string) ([]models.BudgetWithActual, error) {
	month, err := period.MonthKey(month)
	if err != nil {
		return nil, err
	}

	var budgets []models.Budget
	if err := s.db.Where("month = ?", month).Order("id ASC").Find(&budgets).Error; err != nil {
		return nil, storageError(err)
	}
	return s.withActual(month, budgets)
}

// GetBudgetWithActual returns one budget with its actual spending.
func (s *balanceService) GetBudgetWithActual(id uint) (*models.BudgetWithActual, error) {
	var budget models.Budget
	if err := s.db.First(&budget, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, storageError(err)
	}

	result, err := s.withActual(budget.Month, []models.Budget{budget})
	if err != nil {
		return nil, err
	}
	return &result[0], nil
}

// withActual joins budgets of one month with their category names and the
// category expense totals over [month, next month).
func (s *balanceService) withActual(month string, budgets []models.Budget) ([]models.BudgetWithActual, error) {
	result := make([]models.BudgetWithActual, 0, len(budgets))
	if len(budgets) == 0 {
		return result, nil
	}

	start, end, err := period.MonthRange(month)
	if err != nil {
		return nil, err
	}

	categoryIDs := make([]uint, 0, len(budgets))
	for _, b := range budgets {
		categoryIDs = append(categoryIDs, b.CategoryID)
	}

	var categories []models.Category
	if err := s.db.Where("id IN ?", categoryIDs).Find(&categories).Error; err != nil {
		return nil, storageError(err)
	}
	names := make(map[uint]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	var totals []signedTotal
	if err := s.db.Model(&models.Transaction{}).
		Select("category_id AS id, CAST(SUM(amount) AS BIGINT) AS total").
		Where("type = ? AND category_id IN ? AND date >= ? AND date < ?",
			models.TransactionTypeExpense, categoryIDs, start, end).
		Group("category_id").
		Scan(&totals).Error; err != nil {
		return nil, storageError(err)
	}
	spent := make(map[uint]int64, len(totals))
	for _, t := range totals {
		spent[t.ID] = t.Total
	}

	for _, b := range budgets {
		actual := spent[b.CategoryID]
		result = append(result, models.BudgetWithActual{
			Budget:       b,
			CategoryName: names[b.CategoryID],
			ActualSpent:  actual,
			Remaining:    b.LimitAmount - actual,
		})
	}
	return result, nil
}

// GetSavingsBucketsWithTotals returns every savings bucket with the sum of
// the savings rows allocated to it, ordered by name.
func (s *balanceService) GetSavingsBucketsWithTotals() ([]models.SavingsBucketWithTotal, error) {
	var buckets []models.SavingsBucket
	if err := s.db.Order("name ASC").Find(&buckets).Error; err != nil {
		return nil, storageError(err)
	}

	var totals []signedTotal
	if err := s.db.Model(&models.Transaction{}).
		Select("savings_bucket_id AS id, CAST(SUM(amount) AS BIGINT) AS total").
		Where("type = ? AND savings_bucket_id IS NOT NULL", models.TransactionTypeSavings).
		Group("savings_bucket_id").
		Scan(&totals).Error; err != nil {
		return nil, storageError(err)
	}
	byBucket := make(map[uint]int64, len(totals))
	for _, t := range totals {
		byBucket[t.ID] = t.Total
	}

	result := make([]models.SavingsBucketWithTotal, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, models.SavingsBucketWithTotal{SavingsBucket: b, Total: byBucket[b.ID]})
	}
	return result, nil
}

// GetDashboardSummary computes the overview figures for month. The
// independent aggregates run concurrently and the first error is returned.
func (s *balanceService) GetDashboardSummary(month string) (*models.DashboardSummary, error) {
	month, err := period.MonthKey(month)
	if err != nil {
		return nil, err
	}
	start, end, err := period.MonthRange(month)
	if err != nil {
		return nil, err
	}

	summary := &models.DashboardSummary{Month: month}
	var g errgroup.Group

	g.Go(func() error {
		v, err := s.GetTotalIncome(start, end)
		summary.TotalIncome = v
		return err
	})
	g.Go(func() error {
		v, err := s.GetTotalExpenses(start, end)
		summary.TotalExpenses = v
		return err
	})
	g.Go(func() error {
		v, err := s.GetNetWorth()
		summary.NetWorth = v
		return err
	})
	g.Go(func() error {
		v, err := s.GetAllWalletsWithBalances()
		summary.Wallets = v
		return err
	})
	g.Go(func() error {
		v, err := s.GetSpendingByCategory(start, end)
		summary.Spending = v
		return err
	})
	g.Go(func() error {
		v, err := s.GetBudgetsWithActual(month)
		summary.Budgets = v
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	summary.Net = summary.TotalIncome - summary.TotalExpenses
	return summary, nil
}
