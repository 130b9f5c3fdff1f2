package tdhp

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osmanekinci26/cashguardtr/internal/model"
	"github.com/osmanekinci26/cashguardtr/internal/normalize"
)

// ParseCode extracts the leading digit run from an account code. Codes like
// "102.01.003" classify by their first three digits. Requires at least three
// leading digits.
func ParseCode(code string) (prefix3, digitLen int, ok bool) {
	s := strings.TrimSpace(code)
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n < 3 {
		return 0, 0, false
	}
	prefix3 = int(s[0]-'0')*100 + int(s[1]-'0')*10 + int(s[2]-'0')
	return prefix3, n, true
}

// ResolveRow classifies one trial balance row. Balance is signed debit minus
// credit. Contra accounts (by prefix or a "(-)" name marker) are forced to the
// sign opposite their class convention. Rows below the negligible epsilon are
// dropped; the second return is false for those and for malformed codes.
func ResolveRow(code, name string, balance decimal.Decimal) (model.TrialBalanceRow, bool) {
	prefix3, digitLen, ok := ParseCode(code)
	if !ok {
		return model.TrialBalanceRow{}, false
	}
	if balance.Abs().LessThan(model.NegligibleEpsilon) {
		return model.TrialBalanceRow{}, false
	}

	// Contra handling applies to balance sheet classes only. Income statement
	// accounts (600+) conventionally carry "(-)" in their names, but their raw
	// signed balances are exactly what the derivation composes.
	signed := balance
	if prefix3 < 600 && (contraPrefixes[prefix3] || strings.Contains(name, "(-)")) {
		mag := balance.Abs()
		if isLiabilityOrEquityClass(prefix3) {
			// Credit classes carry raw credit balances as negatives; a contra
			// line must instead reduce the section after orientation.
			signed = mag
		} else {
			signed = mag.Neg()
		}
	}

	return model.TrialBalanceRow{
		Code:        code,
		Name:        name,
		Balance:     signed,
		CodePrefix3: prefix3,
		DigitLength: digitLen,
	}, true
}

// PrimaryKey returns the most specific balance sheet key covering a prefix,
// for the mapping log. Narrower ranges and non-aggregate keys win over the
// section totals that span them. Income classes (600+) have no single key.
func PrimaryKey(prefix int) (model.CanonicalKey, bool) {
	best := model.CanonicalKey("")
	bestWidth := -1
	for key, ranges := range balanceRules {
		for _, r := range ranges {
			if !r.Contains(prefix) {
				continue
			}
			width := r.End - r.Start
			switch {
			case bestWidth < 0, width < bestWidth:
				best, bestWidth = key, width
			case width == bestWidth && !key.IsAggregate() && best.IsAggregate():
				best = key
			case width == bestWidth && key.IsAggregate() == best.IsAggregate() && key < best:
				best = key
			}
		}
	}
	return best, bestWidth >= 0
}

// Consolidate groups rows by 3-digit prefix. When a prefix has rows with
// exactly three digits, only those are summed: the account's own posted
// balance already subsumes its sub-ledger detail. Otherwise all rows under
// the prefix contribute.
func Consolidate(rows []model.TrialBalanceRow) map[int]decimal.Decimal {
	hasExact := make(map[int]bool)
	for _, r := range rows {
		if r.DigitLength == 3 {
			hasExact[r.CodePrefix3] = true
		}
	}

	buckets := make(map[int]decimal.Decimal)
	for _, r := range rows {
		if hasExact[r.CodePrefix3] && r.DigitLength != 3 {
			continue
		}
		buckets[r.CodePrefix3] = buckets[r.CodePrefix3].Add(r.Balance)
	}
	return buckets
}

// BalanceSheet maps consolidated buckets onto balance sheet canonical keys.
// Liability and equity classes are reported credit-positive.
func BalanceSheet(buckets map[int]decimal.Decimal) model.CanonicalStatement {
	out := model.CanonicalStatement{}
	for key, ranges := range balanceRules {
		total := decimal.Zero
		matched := false
		for prefix, bal := range buckets {
			for _, r := range ranges {
				if r.Contains(prefix) {
					total = total.Add(bal)
					matched = true
					break
				}
			}
		}
		if !matched {
			continue
		}
		if len(ranges) > 0 && isLiabilityOrEquityClass(ranges[0].Start) {
			total = total.Neg()
		}
		out[key] = total
	}
	return out
}

// IncomeStatement derives income statement line items from trial balance
// buckets. Used only as a fallback when no dedicated income sheet yields
// usable data. Revenue classes carry credit balances, so the composition
// flips signs to report economically positive figures.
func IncomeStatement(buckets map[int]decimal.Decimal, rows []model.TrialBalanceRow) model.CanonicalStatement {
	sumRange := func(r RangeRule) decimal.Decimal {
		total := decimal.Zero
		for prefix, bal := range buckets {
			if r.Contains(prefix) {
				total = total.Add(bal)
			}
		}
		return total
	}

	gross := sumRange(ruleGrossSales)
	discounts := sumRange(ruleSalesDiscounts)
	revenue := gross.Add(discounts).Neg()

	cogs := sumRange(ruleCOGS)
	opex := sumRange(ruleOpex)
	otherOpIncome := sumRange(ruleOtherOpIncome).Neg()
	otherOpExpense := sumRange(ruleOtherOpExpense)
	financeExpense := sumRange(ruleFinanceExpense)

	ebit := revenue.Sub(cogs).Sub(opex).Add(otherOpIncome).Sub(otherOpExpense)
	depreciation := depreciationFromRows(rows)

	out := model.CanonicalStatement{
		model.KeyRevenue:         revenue,
		model.KeyCOGS:            cogs,
		model.KeyGrossProfit:     revenue.Sub(cogs),
		model.KeyOpex:            opex,
		model.KeyEBIT:            ebit,
		model.KeyFinanceExpense:  financeExpense,
		model.KeyInterestExpense: financeExpense,
		model.KeyEBITDA:          ebit.Add(depreciation),
	}
	if !depreciation.IsZero() {
		out[model.KeyDepreciation] = depreciation
	}
	return out
}

// depreciationFromRows collects amortization charges from income and expense
// class rows (600-799) by name signal. TDHP posts the charge in cost accounts
// whose codes alone do not isolate it.
func depreciationFromRows(rows []model.TrialBalanceRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		if r.CodePrefix3 < 600 || r.CodePrefix3 > 799 {
			continue
		}
		n := normalize.Normalize(r.Name)
		if strings.Contains(n, "amortisman") || strings.Contains(n, "itfa") {
			total = total.Add(r.Balance.Abs())
		}
	}
	return total
}
