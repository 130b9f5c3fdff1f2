// Package tdhp resolves Turkish Uniform Chart of Accounts codes to canonical
// financial line items.
package tdhp

import (
	"github.com/osmanekinci26/cashguardtr/internal/model"
)

// RangeRule is an inclusive 3-digit account prefix range.
type RangeRule struct {
	Start int
	End   int
}

// Contains reports whether prefix falls inside the range.
func (r RangeRule) Contains(prefix int) bool {
	return r.Start <= prefix && prefix <= r.End
}

// balanceRules maps balance sheet canonical keys to their TDHP prefix ranges.
// Ranges overlap deliberately: section totals span the detail ranges below them.
var balanceRules = map[model.CanonicalKey][]RangeRule{
	// Current assets: 100-199.
	model.KeyCashAndEquivalents: {{100, 108}},
	model.KeyTradeReceivables:   {{120, 129}},
	model.KeyOtherReceivables:   {{131, 139}},
	model.KeyInventories:        {{150, 159}},
	model.KeyPrepaidExpenses:    {{180, 181}},
	model.KeyOtherCurrentAssets: {{190, 199}},
	model.KeyCurrentAssetsTotal: {{100, 199}},

	// Non-current assets: 220-299.
	model.KeyFinancialInvestments:  {{240, 249}},
	model.KeyPPE:                   {{250, 259}},
	model.KeyIntangibleAssets:      {{260, 269}},
	model.KeyOtherNonCurrentAssets: {{270, 299}},
	model.KeyNonCurrentAssetsTotal: {{220, 299}},

	// Short-term liabilities: 300-399.
	model.KeyShortTermLiabilities: {{300, 399}},
	model.KeyShortTermFinDebt:     {{300, 309}},
	model.KeyTradePayables:        {{320, 329}},
	model.KeyTaxLiabilities:       {{360, 369}},
	model.KeyProvisionsST:         {{370, 379}},

	// Long-term liabilities: 400-499.
	model.KeyLongTermLiabilities: {{400, 499}},
	model.KeyLongTermFinDebt:     {{400, 409}},
	model.KeyProvisionsLT:        {{470, 479}},

	// Equity: 500-599.
	model.KeyEquityTotal:      {{500, 599}},
	model.KeyPaidInCapital:    {{500, 503}},
	model.KeyRetainedEarnings: {{570, 580}},
	model.KeyNetProfit:        {{590, 591}},
}

// Income statement account classes used by the fallback derivation.
var (
	ruleGrossSales     = RangeRule{600, 602}
	ruleSalesDiscounts = RangeRule{610, 612}
	ruleCOGS           = RangeRule{620, 623}
	ruleOpex           = RangeRule{630, 632}
	ruleOtherOpIncome  = RangeRule{640, 649}
	ruleOtherOpExpense = RangeRule{653, 659}
	ruleFinanceExpense = RangeRule{660, 661}
)

// contraPrefixes are accounts whose natural balance sign opposes their class
// convention: provisions against receivables, accumulated depreciation,
// unpaid capital, accumulated losses.
var contraPrefixes = map[int]bool{
	103: true, // verilen çekler (-)
	119: true,
	122: true,
	129: true, // şüpheli ticari alacaklar karşılığı (-)
	137: true,
	139: true,
	158: true,
	199: true,
	241: true,
	257: true, // birikmiş amortismanlar (-)
	268: true,
	278: true,
	298: true,
	299: true,
	501: true, // ödenmemiş sermaye (-)
	580: true, // geçmiş yıllar zararları (-)
}

// isLiabilityOrEquityClass reports whether a prefix belongs to classes whose
// natural balance is a credit (reported positive after orientation).
func isLiabilityOrEquityClass(prefix int) bool {
	return prefix >= 300 && prefix <= 599
}
