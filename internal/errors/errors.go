// Package errors provides custom error types for the pocketledger API.
// All service-layer errors should use AppError so that callers can classify
// a failure by Kind and the route layer can map it to a status code without
// leaking storage details to clients.
package errors

import (
	stderrors "errors"
	"net/http"
)

// Kind classifies an AppError independently of its specific code.
type Kind string

const (
	// KindInvalidArgument means caller-supplied data violates a precondition.
	KindInvalidArgument Kind = "invalid_argument"
	// KindNotFound means a referenced entity does not exist.
	KindNotFound Kind = "not_found"
	// KindConstraintViolation covers dependent rows and duplicate unique keys.
	KindConstraintViolation Kind = "constraint_violation"
	// KindInvalidOperation means the action is structurally disallowed.
	KindInvalidOperation Kind = "invalid_operation"
	// KindStorage is anything from the storage engine not classified above.
	KindStorage Kind = "storage_error"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, kind, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Kind       Kind   `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so that
// copies produced by Wrap and WithMessage still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Kind:       sentinel.Kind,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Kind:       sentinel.Kind,
		Internal:   sentinel.Internal,
	}
}

// KindOf returns the Kind of err. Errors that are not AppErrors are storage errors.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest, Kind: KindInvalidArgument}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError, Kind: KindStorage}
)

// Wallet errors.
var (
	ErrWalletNotFound  = &AppError{Code: "WALLET_NOT_FOUND", Message: "Wallet not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrWalletInUse     = &AppError{Code: "WALLET_IN_USE", Message: "Wallet has existing transactions", StatusCode: http.StatusConflict, Kind: KindConstraintViolation}
	ErrDuplicateWallet = &AppError{Code: "DUPLICATE_WALLET", Message: "A wallet with this name already exists", StatusCode: http.StatusConflict, Kind: KindConstraintViolation}
)

// Category errors.
var (
	ErrCategoryNotFound  = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrCategoryInUse     = &AppError{Code: "CATEGORY_IN_USE", Message: "Category is used by existing transactions", StatusCode: http.StatusConflict, Kind: KindConstraintViolation}
	ErrDuplicateCategory = &AppError{Code: "DUPLICATE_CATEGORY", Message: "A category with this name and type already exists", StatusCode: http.StatusConflict, Kind: KindConstraintViolation}
)

// Savings bucket errors.
var (
	ErrSavingsBucketNotFound  = &AppError{Code: "SAVINGS_BUCKET_NOT_FOUND", Message: "Savings bucket not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrSavingsBucketInUse     = &AppError{Code: "SAVINGS_BUCKET_IN_USE", Message: "Savings bucket has existing transactions", StatusCode: http.StatusConflict, Kind: KindConstraintViolation}
	ErrDuplicateSavingsBucket = &AppError{Code: "DUPLICATE_SAVINGS_BUCKET", Message: "A savings bucket with this name already exists", StatusCode: http.StatusConflict, Kind: KindConstraintViolation}
)

// Transaction errors.
var (
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest, Kind: KindInvalidArgument}
	ErrInvalidDate            = &AppError{Code: "INVALID_DATE", Message: "Date must be formatted as YYYY-MM-DD", StatusCode: http.StatusBadRequest, Kind: KindInvalidArgument}
	ErrTransactionNotEditable = &AppError{Code: "TRANSACTION_NOT_EDITABLE", Message: "Transfer transactions cannot be edited; delete and recreate the transfer", StatusCode: http.StatusUnprocessableEntity, Kind: KindInvalidOperation}
	ErrInvalidTypeChange      = &AppError{Code: "INVALID_TYPE_CHANGE", Message: "Cannot change a transaction into a transfer", StatusCode: http.StatusUnprocessableEntity, Kind: KindInvalidOperation}
	ErrUseTransferEndpoint    = &AppError{Code: "USE_TRANSFER", Message: "Transfers must be created as a pair", StatusCode: http.StatusUnprocessableEntity, Kind: KindInvalidOperation}
)

// Transfer errors.
var (
	ErrSameWalletTransfer  = &AppError{Code: "SAME_WALLET_TRANSFER", Message: "Source and destination wallets must be different", StatusCode: http.StatusBadRequest, Kind: KindInvalidArgument}
	ErrNonPositiveTransfer = &AppError{Code: "NON_POSITIVE_TRANSFER", Message: "Transfer amount must be positive", StatusCode: http.StatusBadRequest, Kind: KindInvalidArgument}
	ErrTransferNotFound    = &AppError{Code: "TRANSFER_NOT_FOUND", Message: "Transfer not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
)

// Budget errors.
var (
	ErrBudgetNotFound  = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrDuplicateBudget = &AppError{Code: "DUPLICATE_BUDGET", Message: "A budget for this category and month already exists", StatusCode: http.StatusConflict, Kind: KindConstraintViolation}
	ErrInvalidMonth    = &AppError{Code: "INVALID_MONTH", Message: "Month must be formatted as YYYY-MM or YYYY-MM-DD", StatusCode: http.StatusBadRequest, Kind: KindInvalidArgument}
)
