package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/period"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// normalize validates input and rewrites its month to the first-of-month key.
func (s *budgetService) normalize(input BudgetInput) (BudgetInput, error) {
	month, err := period.MonthKey(input.Month)
	if err != nil {
		return input, err
	}
	input.Month = month

	if input.LimitAmount < 0 {
		return input, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit amount must not be negative")
	}
	if input.CategoryID == 0 {
		return input, apperrors.WithMessage(apperrors.ErrInvalidInput, "category ID is required")
	}
	if err := ensureExists(s.db, &models.Category{}, input.CategoryID, apperrors.ErrCategoryNotFound); err != nil {
		return input, err
	}
	return input, nil
}

// CreateBudget creates a budget for a category and month. A second budget for
// the same pair is rejected with ErrDuplicateBudget.
func (s *budgetService) CreateBudget(input BudgetInput) (*models.Budget, error) {
	input, err := s.normalize(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.findBudget(s.db, input.Month, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateBudget
	}

	budget := &models.Budget{
		Month:       input.Month,
		CategoryID:  input.CategoryID,
		LimitAmount: input.LimitAmount,
	}
	if err := s.db.Create(budget).Error; err != nil {
		return nil, translateWriteError(err, apperrors.ErrDuplicateBudget, apperrors.ErrCategoryNotFound)
	}
	return budget, nil
}

// findBudget returns the budget for (month, categoryID) or nil when none exists.
func (s *budgetService) findBudget(db *gorm.DB, month string, categoryID uint) (*models.Budget, error) {
	var budget models.Budget
	err := db.Where("month = ? AND category_id = ?", month, categoryID).First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageError(err)
	}
	return &budget, nil
}

// GetBudgets returns the budgets of one month.
func (s *budgetService) GetBudgets(month string) ([]models.Budget, error) {
	month, err := period.MonthKey(month)
	if err != nil {
		return nil, err
	}

	budgets := []models.Budget{}
	if err := s.db.Where("month = ?", month).Order("id ASC").Find(&budgets).Error; err != nil {
		return nil, storageError(err)
	}
	return budgets, nil
}

// GetBudgetByID returns a budget by ID.
func (s *budgetService) GetBudgetByID(id uint) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.First(&budget, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, storageError(err)
	}
	return &budget, nil
}

// UpdateBudget changes a budget's limit. It returns nil, nil when the budget
// does not exist.
func (s *budgetService) UpdateBudget(id uint, limitAmount int64) (*models.Budget, error) {
	if limitAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit amount must not be negative")
	}

	budget, err := s.GetBudgetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBudgetNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := s.db.Model(budget).Update("limit_amount", limitAmount).Error; err != nil {
		return nil, storageError(err)
	}
	budget.LimitAmount = limitAmount
	return budget, nil
}

// DeleteBudget removes a budget and reports whether it existed.
func (s *budgetService) DeleteBudget(id uint) (bool, error) {
	result := s.db.Delete(&models.Budget{}, id)
	if result.Error != nil {
		return false, storageError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// UpsertBudget sets the limit for (month, category), creating the budget when
// it does not exist yet. The lookup and the write are separate statements;
// this relies on the single-writer deployment and the unique index on
// (month, category_id) rejects any racing duplicate.
func (s *budgetService) UpsertBudget(input BudgetInput) (*models.Budget, error) {
	input, err := s.normalize(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.findBudget(s.db, input.Month, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.db.Model(existing).Update("limit_amount", input.LimitAmount).Error; err != nil {
			return nil, storageError(err)
		}
		existing.LimitAmount = input.LimitAmount
		return existing, nil
	}

	budget := &models.Budget{
		Month:       input.Month,
		CategoryID:  input.CategoryID,
		LimitAmount: input.LimitAmount,
	}
	if err := s.db.Create(budget).Error; err != nil {
		return nil, translateWriteError(err, apperrors.ErrDuplicateBudget, apperrors.ErrCategoryNotFound)
	}
	return budget, nil
}

// CopyBudgetsToMonth copies every budget of fromMonth into toMonth, skipping
// categories that already have a budget in toMonth. Existing target budgets
// are never overwritten. It returns only the budgets it created.
func (s *budgetService) CopyBudgetsToMonth(fromMonth, toMonth string) ([]models.Budget, error) {
	from, err := period.MonthKey(fromMonth)
	if err != nil {
		return nil, err
	}
	to, err := period.MonthKey(toMonth)
	if err != nil {
		return nil, err
	}

	created := []models.Budget{}
	if from == to {
		return created, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var source []models.Budget
		if err := tx.Where("month = ?", from).Order("id ASC").Find(&source).Error; err != nil {
			return storageError(err)
		}
		if len(source) == 0 {
			return nil
		}

		var taken []uint
		if err := tx.Model(&models.Budget{}).Where("month = ?", to).Pluck("category_id", &taken).Error; err != nil {
			return storageError(err)
		}
		exists := make(map[uint]bool, len(taken))
		for _, id := range taken {
			exists[id] = true
		}

		for _, b := range source {
			if exists[b.CategoryID] {
				continue
			}
			budget := models.Budget{
				Month:       to,
				CategoryID:  b.CategoryID,
				LimitAmount: b.LimitAmount,
			}
			if err := tx.Create(&budget).Error; err != nil {
				return translateWriteError(err, apperrors.ErrDuplicateBudget, apperrors.ErrCategoryNotFound)
			}
			created = append(created, budget)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
