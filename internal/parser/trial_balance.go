package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osmanekinci26/cashguardtr/internal/model"
	"github.com/osmanekinci26/cashguardtr/internal/normalize"
	"github.com/osmanekinci26/cashguardtr/internal/tdhp"
)

// parseTrialBalanceSheet extracts ledger rows below the detected header.
// Malformed codes and non-numeric balances skip the single row; the scan ends
// after the empty-row streak limit.
func parseTrialBalanceSheet(sheet string, rows [][]string, layout *TrialBalanceLayout) ([]model.TrialBalanceRow, []model.LineItemObservation, error) {
	hasNet := layout.BalanceCol >= 0
	hasDebitCredit := layout.DebitCol >= 0 && layout.CreditCol >= 0
	if !hasNet && !hasDebitCredit {
		return nil, nil, fmt.Errorf("sheet %q: 'Hesap Kodu' header found but no balance column (Bakiye or Borç/Alacak)", sheet)
	}

	var (
		out      []model.TrialBalanceRow
		obs      []model.LineItemObservation
		emptyRun int
	)

	for r := layout.HeaderRow + 1; r < len(rows); r++ {
		if rowIsEmpty(rows, r) {
			emptyRun++
			if emptyRun >= emptyStreakLimit {
				break
			}
			continue
		}
		emptyRun = 0

		code := strings.TrimSpace(cellAt(rows, r, layout.CodeCol))
		if code == "" {
			continue
		}
		name := strings.TrimSpace(cellAt(rows, r, layout.NameCol))

		balance, ok := trialBalanceValue(rows, r, layout, hasNet)
		if !ok {
			continue
		}

		row, ok := tdhp.ResolveRow(code, name, balance)
		if !ok {
			continue
		}
		out = append(out, row)

		entry := model.LineItemObservation{
			Sheet:      sheet,
			Row:        r + 1,
			RawLabel:   code + " " + name,
			Normalized: normalize.Normalize(name),
			Value:      row.Balance,
		}
		if key, ok := tdhp.PrimaryKey(row.CodePrefix3); ok {
			entry.ResolvedKey = key
		}
		obs = append(obs, entry)
	}

	return out, obs, nil
}

// trialBalanceValue reads the row's net balance: the single Bakiye column, or
// debit minus credit when the export splits them.
func trialBalanceValue(rows [][]string, r int, layout *TrialBalanceLayout, hasNet bool) (decimal.Decimal, bool) {
	if hasNet {
		cell := ClassifyCell(cellAt(rows, r, layout.BalanceCol))
		if cell.Kind != CellNumber {
			return decimal.Zero, false
		}
		return cell.Number, true
	}

	debit := ClassifyCell(cellAt(rows, r, layout.DebitCol))
	credit := ClassifyCell(cellAt(rows, r, layout.CreditCol))
	if debit.Kind != CellNumber && credit.Kind != CellNumber {
		return decimal.Zero, false
	}
	d, c := decimal.Zero, decimal.Zero
	if debit.Kind == CellNumber {
		d = debit.Number
	}
	if credit.Kind == CellNumber {
		c = credit.Number
	}
	return d.Sub(c), true
}
