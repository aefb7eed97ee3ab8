package handlers

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"pocketledger/internal/models"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ledgerSheet     = "Transactions"
)

var ledgerHeaders = []string{"Date", "Type", "Wallet", "Category", "Savings Bucket", "Amount", "Note", "Transfer ID"}

// ledgerNames resolves foreign keys to display names for the export.
type ledgerNames struct {
	wallets    map[uint]string
	categories map[uint]string
	buckets    map[uint]string
}

func exportFilename() string {
	return fmt.Sprintf("transactions_%s.xlsx", time.Now().Format("20060102"))
}

// buildLedgerWorkbook writes rows to a single-sheet workbook. Amounts are the
// stored integer minor units, so transfer legs keep their sign.
func buildLedgerWorkbook(rows []models.Transaction, names ledgerNames) (*excelize.File, error) {
	f := excelize.NewFile()

	// A new workbook starts with one default sheet; rename it in place.
	if err := f.SetSheetName(f.GetSheetName(0), ledgerSheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, h := range ledgerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(ledgerSheet, cell, h); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	for idx, t := range rows {
		row := idx + 2

		values := []interface{}{
			t.Date,
			string(t.Type),
			names.wallets[t.WalletID],
			lookupName(names.categories, t.CategoryID),
			lookupName(names.buckets, t.SavingsBucketID),
			t.Amount,
			derefString(t.Note),
			derefString(t.TransferID),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(ledgerSheet, cell, v); err != nil {
				_ = f.Close()
				return nil, err
			}
		}
	}

	widths := []float64{12, 10, 18, 18, 18, 12, 40, 38}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(ledgerSheet, col, col, w)
	}

	return f, nil
}

func lookupName(names map[uint]string, id *uint) string {
	if id == nil {
		return ""
	}
	return names[*id]
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
