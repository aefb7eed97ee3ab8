package models

import "time"

// Base contains common columns for all tables. Rows are hard-deleted so the
// storage engine's foreign keys can protect referenced wallets, categories
// and savings buckets.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
