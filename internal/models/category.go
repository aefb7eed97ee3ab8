package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category labels income and expense transactions. The (name, type) pair is
// unique, so "Gifts" may exist once as income and once as expense.
type Category struct {
	Base
	Name string       `gorm:"size:100;not null" json:"name"`
	Type CategoryType `gorm:"not null" json:"type"`
}

// CategorySpending is the expense total of one category over a date range.
type CategorySpending struct {
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
	Total        int64  `json:"total"`
}
