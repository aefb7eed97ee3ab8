package services

import (
	"strings"

	"pocketledger/internal/models"
)

// transactionSigns is the single source of the sign rule used by every
// balance derivation. Transfer legs are already stored signed, so they are
// summed as-is; savings allocations leave spendable net worth.
var transactionSigns = map[models.TransactionType]int64{
	models.TransactionTypeIncome:   1,
	models.TransactionTypeExpense:  -1,
	models.TransactionTypeTransfer: 1,
	models.TransactionTypeSavings:  -1,
}

// signOrder fixes the iteration order so generated SQL is stable.
var signOrder = []models.TransactionType{
	models.TransactionTypeIncome,
	models.TransactionTypeExpense,
	models.TransactionTypeTransfer,
	models.TransactionTypeSavings,
}

// Sign returns the multiplier applied to a stored amount of type t. Unknown
// types contribute nothing.
func Sign(t models.TransactionType) int64 {
	return transactionSigns[t]
}

// SignedAmount returns the contribution of one stored row to a balance.
func SignedAmount(t models.TransactionType, amount int64) int64 {
	return Sign(t) * amount
}

// signedSumExpr renders the sign table as a parameterized SQL aggregate over
// the type and amount columns of the table aliased by prefix ("" for none).
// The result is always an integer, 0 when no rows match.
func signedSumExpr(prefix string) (string, []interface{}) {
	col := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}

	var b strings.Builder
	args := make([]interface{}, 0, 2*len(signOrder))
	b.WriteString("CAST(COALESCE(SUM(CASE ")
	b.WriteString(col("type"))
	for _, t := range signOrder {
		b.WriteString(" WHEN ? THEN ")
		b.WriteString(col("amount"))
		b.WriteString(" * ?")
		args = append(args, string(t), transactionSigns[t])
	}
	b.WriteString(" ELSE 0 END), 0) AS BIGINT)")
	return b.String(), args
}
