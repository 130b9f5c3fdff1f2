package model

// CanonicalKey identifies one standardized financial statement line item.
// The set is closed: parsers never invent keys, unmapped labels stay unmapped.
type CanonicalKey string

// Balance sheet keys.
const (
	KeyCashAndEquivalents    CanonicalKey = "cash_and_equivalents"
	KeyTradeReceivables      CanonicalKey = "trade_receivables"
	KeyOtherReceivables      CanonicalKey = "other_receivables"
	KeyInventories           CanonicalKey = "inventories"
	KeyPrepaidExpenses       CanonicalKey = "prepaid_expenses"
	KeyOtherCurrentAssets    CanonicalKey = "other_current_assets"
	KeyCurrentAssetsTotal    CanonicalKey = "current_assets_total"
	KeyPPE                   CanonicalKey = "ppe"
	KeyIntangibleAssets      CanonicalKey = "intangible_assets"
	KeyRightOfUseAssets      CanonicalKey = "right_of_use_assets"
	KeyInvestmentProperties  CanonicalKey = "investment_properties"
	KeyFinancialInvestments  CanonicalKey = "financial_investments"
	KeyOtherNonCurrentAssets CanonicalKey = "other_noncurrent_assets"
	KeyNonCurrentAssetsTotal CanonicalKey = "non_current_assets_total"
	KeyTotalAssets           CanonicalKey = "total_assets"

	KeyShortTermLiabilities CanonicalKey = "short_term_liabilities"
	KeyLongTermLiabilities  CanonicalKey = "long_term_liabilities"
	KeyTradePayables        CanonicalKey = "trade_payables"
	KeyShortTermFinDebt     CanonicalKey = "short_term_fin_debt"
	KeyLongTermFinDebt      CanonicalKey = "long_term_fin_debt"
	KeyLeaseLiabilitiesST   CanonicalKey = "lease_liabilities_st"
	KeyLeaseLiabilitiesLT   CanonicalKey = "lease_liabilities_lt"
	KeyTaxLiabilities       CanonicalKey = "tax_liabilities"
	KeyProvisionsST         CanonicalKey = "provisions_st"
	KeyProvisionsLT         CanonicalKey = "provisions_lt"
	KeyTotalLiabilities     CanonicalKey = "total_liabilities"

	KeyEquityTotal               CanonicalKey = "equity_total"
	KeyPaidInCapital             CanonicalKey = "paid_in_capital"
	KeyRetainedEarnings          CanonicalKey = "retained_earnings"
	KeyNetProfit                 CanonicalKey = "net_profit"
	KeyTotalLiabilitiesAndEquity CanonicalKey = "total_liabilities_and_equity"
)

// Income statement keys.
const (
	KeyRevenue         CanonicalKey = "revenue"
	KeyCOGS            CanonicalKey = "cogs"
	KeyGrossProfit     CanonicalKey = "gross_profit"
	KeyOpex            CanonicalKey = "opex"
	KeyEBITDA          CanonicalKey = "ebitda"
	KeyEBIT            CanonicalKey = "ebit"
	KeyDepreciation    CanonicalKey = "depreciation_amortization"
	KeyFinanceIncome   CanonicalKey = "finance_income"
	KeyFinanceExpense  CanonicalKey = "finance_expense"
	KeyInterestExpense CanonicalKey = "interest_expense"
	KeyFxGainLoss      CanonicalKey = "fx_gain_loss"
	KeyTaxExpense      CanonicalKey = "tax_expense"
	KeyNetProfitIS     CanonicalKey = "net_profit_is"
)

// keyLabels maps every canonical key to its human-readable label.
var keyLabels = map[CanonicalKey]string{
	KeyCashAndEquivalents:    "Nakit ve Nakit Benzerleri",
	KeyTradeReceivables:      "Ticari Alacaklar",
	KeyOtherReceivables:      "Diğer Alacaklar",
	KeyInventories:           "Stoklar",
	KeyPrepaidExpenses:       "Peşin Ödenmiş Giderler",
	KeyOtherCurrentAssets:    "Diğer Dönen Varlıklar",
	KeyCurrentAssetsTotal:    "Dönen Varlıklar Toplamı",
	KeyPPE:                   "Maddi Duran Varlıklar",
	KeyIntangibleAssets:      "Maddi Olmayan Duran Varlıklar",
	KeyRightOfUseAssets:      "Kullanım Hakkı Varlıkları",
	KeyInvestmentProperties:  "Yatırım Amaçlı Gayrimenkuller",
	KeyFinancialInvestments:  "Finansal Yatırımlar",
	KeyOtherNonCurrentAssets: "Diğer Duran Varlıklar",
	KeyNonCurrentAssetsTotal: "Duran Varlıklar Toplamı",
	KeyTotalAssets:           "Toplam Varlıklar / Aktif Toplamı",

	KeyShortTermLiabilities: "Kısa Vadeli Yükümlülükler",
	KeyLongTermLiabilities:  "Uzun Vadeli Yükümlülükler",
	KeyTradePayables:        "Ticari Borçlar",
	KeyShortTermFinDebt:     "Kısa Vadeli Finansal Borçlar",
	KeyLongTermFinDebt:      "Uzun Vadeli Finansal Borçlar",
	KeyLeaseLiabilitiesST:   "Kısa Vadeli Kiralama Yükümlülüğü",
	KeyLeaseLiabilitiesLT:   "Uzun Vadeli Kiralama Yükümlülüğü",
	KeyTaxLiabilities:       "Vergi Yükümlülükleri",
	KeyProvisionsST:         "Kısa Vadeli Karşılıklar",
	KeyProvisionsLT:         "Uzun Vadeli Karşılıklar",
	KeyTotalLiabilities:     "Toplam Yükümlülükler / Borçlar Toplamı",

	KeyEquityTotal:               "Özkaynaklar",
	KeyPaidInCapital:             "Ödenmiş Sermaye",
	KeyRetainedEarnings:          "Geçmiş Yıllar Kâr/Zararları",
	KeyNetProfit:                 "Dönem Net Kâr/Zararı",
	KeyTotalLiabilitiesAndEquity: "Toplam Kaynaklar / Pasif Toplamı",

	KeyRevenue:         "Hasılat / Net Satışlar",
	KeyCOGS:            "Satışların Maliyeti",
	KeyGrossProfit:     "Brüt Kâr",
	KeyOpex:            "Faaliyet Giderleri",
	KeyEBITDA:          "FAVÖK",
	KeyEBIT:            "Faaliyet Kârı (EBIT)",
	KeyDepreciation:    "Amortisman ve İtfa Payları",
	KeyFinanceIncome:   "Finansman Gelirleri",
	KeyFinanceExpense:  "Finansman Giderleri",
	KeyInterestExpense: "Faiz Gideri",
	KeyFxGainLoss:      "Kur Farkı Gelir/Gider",
	KeyTaxExpense:      "Vergi Gideri",
	KeyNetProfitIS:     "Net Dönem Kârı/Zararı (Gelir Tablosu)",
}

// aggregateKeys are statement-level totals. A mapped row may only land on one of
// these when the row itself is structurally a total line (see mapping package).
var aggregateKeys = map[CanonicalKey]bool{
	KeyCurrentAssetsTotal:        true,
	KeyNonCurrentAssetsTotal:     true,
	KeyTotalAssets:               true,
	KeyShortTermLiabilities:      true,
	KeyLongTermLiabilities:       true,
	KeyTotalLiabilities:          true,
	KeyEquityTotal:               true,
	KeyTotalLiabilitiesAndEquity: true,
}

// Label returns the human-readable label for a key, or the key itself when unknown.
func (k CanonicalKey) Label() string {
	if label, ok := keyLabels[k]; ok {
		return label
	}
	return string(k)
}

// IsAggregate reports whether the key designates a statement-level total.
func (k CanonicalKey) IsAggregate() bool {
	return aggregateKeys[k]
}

// AllKeys returns every canonical key. The slice is rebuilt per call; callers own it.
func AllKeys() []CanonicalKey {
	keys := make([]CanonicalKey, 0, len(keyLabels))
	for k := range keyLabels {
		keys = append(keys, k)
	}
	return keys
}
