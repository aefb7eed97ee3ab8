package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category. The same name may exist once per type.
func (s *categoryService) CreateCategory(name string, categoryType models.CategoryType) (*models.Category, error) {
	name, err := normalizeName("category", name)
	if err != nil {
		return nil, err
	}
	if !categoryType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category type must be income or expense")
	}

	// Check if a category with the same name and type already exists
	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("name = ? AND type = ?", name, categoryType).
		Count(&count).Error; err != nil {
		return nil, storageError(err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.Category{
		Name: name,
		Type: categoryType,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, translateWriteError(err, apperrors.ErrDuplicateCategory, nil)
	}

	return category, nil
}

// GetCategories lists categories ordered by type then name, optionally
// restricted to one type.
func (s *categoryService) GetCategories(categoryType *models.CategoryType) ([]models.Category, error) {
	q := s.db.Model(&models.Category{})
	if categoryType != nil {
		q = q.Where("type = ?", *categoryType)
	}

	categories := []models.Category{}
	if err := q.Order("type ASC").Order("name ASC").Find(&categories).Error; err != nil {
		return nil, storageError(err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID
func (s *categoryService) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, storageError(err)
	}
	return &category, nil
}

// UpdateCategory renames a category, keeping its type. It returns nil, nil
// when the category does not exist.
func (s *categoryService) UpdateCategory(id uint, name string) (*models.Category, error) {
	name, err := normalizeName("category", name)
	if err != nil {
		return nil, err
	}

	category, err := s.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if category.Name == name {
		return category, nil
	}

	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("name = ? AND type = ? AND id <> ?", name, category.Type, id).
		Count(&count).Error; err != nil {
		return nil, storageError(err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	if err := s.db.Model(category).Update("name", name).Error; err != nil {
		return nil, translateWriteError(err, apperrors.ErrDuplicateCategory, nil)
	}
	category.Name = name
	return category, nil
}

// DeleteCategory deletes a category and, through the schema's cascade, its
// budgets. Categories referenced by ledger rows are rejected with
// ErrCategoryInUse; a missing category reports false.
func (s *categoryService) DeleteCategory(id uint) (bool, error) {
	return deleteUnreferenced(s.db, &models.Category{}, id, "category_id", apperrors.ErrCategoryInUse)
}
