package models

// Budget caps expense spending for one category in one month. Month is the
// first day of the month as YYYY-MM-01; (month, category) is unique.
type Budget struct {
	Base
	Month       string `gorm:"size:10;not null" json:"month"`
	CategoryID  uint   `gorm:"not null" json:"category_id"`
	LimitAmount int64  `gorm:"not null" json:"limit_amount"`
}

// BudgetWithActual is a budget joined with the month's expense total for its
// category. Remaining goes negative on overspend.
type BudgetWithActual struct {
	Budget
	CategoryName string `json:"category_name"`
	ActualSpent  int64  `json:"actual_spent"`
	Remaining    int64  `json:"remaining"`
}
