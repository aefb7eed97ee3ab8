// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"pocketledger/internal/models"
	"pocketledger/internal/period"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("category_type", validateCategoryType)
		_ = v.RegisterValidation("ymd_date", validateDate)
		_ = v.RegisterValidation("month_key", validateMonthKey)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

func validateCategoryType(fl validator.FieldLevel) bool {
	return models.CategoryType(fl.Field().String()).Valid()
}

func validateDate(fl validator.FieldLevel) bool {
	return period.ValidateDate(fl.Field().String()) == nil
}

// validateMonthKey accepts YYYY-MM or a full date inside the month.
func validateMonthKey(fl validator.FieldLevel) bool {
	_, err := period.MonthKey(fl.Field().String())
	return err == nil
}
