package models

// SavingsBucket is a named goal that savings transactions allocate money to.
type SavingsBucket struct {
	Base
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

// SavingsBucketWithTotal is a bucket joined with the sum of its allocations.
type SavingsBucketWithTotal struct {
	SavingsBucket
	Total int64 `json:"total"`
}
