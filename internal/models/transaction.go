package models

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
	TransactionTypeSavings  TransactionType = "savings"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer, TransactionTypeSavings:
		return true
	}
	return false
}

// MaxNoteLength bounds the optional transaction note.
const MaxNoteLength = 500

// Transaction is one ledger row. Amounts are integer minor units. Transfer
// legs are stored signed (outgoing negative, incoming positive) and share a
// TransferID; every other row stores the positive amount it was created with.
type Transaction struct {
	Base
	Type            TransactionType `gorm:"not null" json:"type"`
	Amount          int64           `gorm:"not null" json:"amount"`
	Date            string          `gorm:"size:10;not null;index" json:"date"`
	Note            *string         `gorm:"size:500" json:"note,omitempty"`
	WalletID        uint            `gorm:"not null;index" json:"wallet_id"`
	CategoryID      *uint           `gorm:"index" json:"category_id,omitempty"`
	TransferID      *string         `gorm:"index" json:"transfer_id,omitempty"`
	SavingsBucketID *uint           `gorm:"index" json:"savings_bucket_id,omitempty"`
}

// IsTransferLeg reports whether the row is one half of a transfer.
func (t *Transaction) IsTransferLeg() bool {
	return t.Type == TransactionTypeTransfer
}

// Transfer is the pair of ledger rows created by a single transfer.
type Transfer struct {
	ID              string       `json:"id"`
	FromTransaction *Transaction `json:"from_transaction"`
	ToTransaction   *Transaction `json:"to_transaction"`
}
