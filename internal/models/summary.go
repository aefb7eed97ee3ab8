package models

// DashboardSummary aggregates the figures shown on the overview page for one
// month. Every figure is recomputed from the ledger on each request.
type DashboardSummary struct {
	Month         string              `json:"month"`
	TotalIncome   int64               `json:"total_income"`
	TotalExpenses int64               `json:"total_expenses"`
	Net           int64               `json:"net"`
	NetWorth      int64               `json:"net_worth"`
	Wallets       []WalletWithBalance `json:"wallets"`
	Spending      []CategorySpending  `json:"spending"`
	Budgets       []BudgetWithActual  `json:"budgets"`
}
