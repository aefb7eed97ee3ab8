package models

// MaxNameLength bounds wallet, category and savings bucket names.
const MaxNameLength = 100

// Wallet is a place money lives (cash, bank account, card). Its balance is
// never stored; see WalletWithBalance.
type Wallet struct {
	Base
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

// WalletWithBalance is a wallet joined with the signed sum of its ledger rows.
type WalletWithBalance struct {
	Wallet
	Balance int64 `json:"balance"`
}
