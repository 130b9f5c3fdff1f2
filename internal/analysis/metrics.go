// Package analysis derives ratios and advisor commentary from a parsed
// financial model. Pure computation: no I/O, deterministic for a given input.
package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/osmanekinci26/cashguardtr/internal/model"
)

// figures are the raw statement amounts the ratio set draws on, resolved with
// their fallback chains. Kept as a struct so narrative generation can comment
// on the inputs, not only the ratios.
type figures struct {
	Cash        decimal.Decimal
	Receivables decimal.Decimal
	Inventories decimal.Decimal

	CurrentAssets      decimal.Decimal
	CurrentLiabilities decimal.Decimal

	ShortTermDebt  decimal.Decimal
	LongTermDebt   decimal.Decimal
	ShortTermLease decimal.Decimal
	Equity         decimal.Decimal

	Revenue        decimal.Decimal
	COGS           decimal.Decimal
	EBIT           decimal.Decimal
	EBITDA         decimal.Decimal
	FinanceExpense decimal.Decimal
}

// Analyze computes the ratio set and commentary for a model's default year.
func Analyze(m *model.FinancialModel, sector model.Sector) *model.AnalysisResult {
	bs := m.BalanceSheet()
	inc := m.IncomeStatement()

	fig := resolveFigures(bs, inc)
	metrics := computeMetrics(fig)
	metrics.Year = m.DefaultYear

	return &model.AnalysisResult{
		Metrics:        metrics,
		Bullets:        buildBullets(fig, metrics, sector),
		MappingLog:     m.MappingLog,
		UnmappedLabels: m.UnmappedLabels,
	}
}

// resolveFigures applies the fallback chains. A reported section total wins;
// when the sheet never carried one, the section is proxied by its components.
func resolveFigures(bs, inc model.CanonicalStatement) figures {
	f := figures{
		Cash:           bs.Get(model.KeyCashAndEquivalents),
		Receivables:    bs.Get(model.KeyTradeReceivables),
		Inventories:    bs.Get(model.KeyInventories),
		ShortTermDebt:  bs.Get(model.KeyShortTermFinDebt),
		LongTermDebt:   bs.Get(model.KeyLongTermFinDebt),
		ShortTermLease: bs.Get(model.KeyLeaseLiabilitiesST),
		Equity:         bs.Get(model.KeyEquityTotal),
		Revenue:        inc.Get(model.KeyRevenue),
		COGS:           inc.Get(model.KeyCOGS),
		EBIT:           inc.Get(model.KeyEBIT),
		EBITDA:         inc.Get(model.KeyEBITDA),
		FinanceExpense: inc.Get(model.KeyFinanceExpense),
	}

	f.CurrentAssets = bs.Get(model.KeyCurrentAssetsTotal)
	if f.CurrentAssets.IsZero() {
		f.CurrentAssets = f.Cash.
			Add(f.Receivables).
			Add(f.Inventories).
			Add(bs.Get(model.KeyOtherReceivables)).
			Add(bs.Get(model.KeyPrepaidExpenses)).
			Add(bs.Get(model.KeyOtherCurrentAssets))
	}

	f.CurrentLiabilities = bs.Get(model.KeyShortTermLiabilities)
	if f.CurrentLiabilities.IsZero() {
		f.CurrentLiabilities = bs.Get(model.KeyTradePayables).
			Add(f.ShortTermDebt).
			Add(f.ShortTermLease).
			Add(bs.Get(model.KeyTaxLiabilities)).
			Add(bs.Get(model.KeyProvisionsST))
	}

	if f.FinanceExpense.IsZero() {
		f.FinanceExpense = inc.Get(model.KeyInterestExpense)
	}
	if f.EBITDA.IsZero() && !f.EBIT.IsZero() {
		f.EBITDA = f.EBIT.Add(inc.Get(model.KeyDepreciation).Abs())
	}
	return f
}

// computeMetrics derives the ratio set. A nil pointer means the denominator
// was missing or non-positive; callers must not read nil as zero.
func computeMetrics(f figures) model.Metrics {
	m := model.Metrics{
		NetDebt: f.ShortTermDebt.Add(f.LongTermDebt).Sub(f.Cash),
		NWC:     f.CurrentAssets.Sub(f.CurrentLiabilities),
	}

	if f.CurrentLiabilities.IsPositive() {
		m.CurrentRatio = ratio(f.CurrentAssets, f.CurrentLiabilities)
		m.QuickRatio = ratio(f.CurrentAssets.Sub(f.Inventories), f.CurrentLiabilities)
	}
	if f.Equity.IsPositive() {
		m.DebtToEquity = ratio(f.ShortTermDebt.Add(f.LongTermDebt), f.Equity)
	}
	if !f.FinanceExpense.IsZero() {
		m.InterestCover = ratio(f.EBIT, f.FinanceExpense.Abs())
	}
	if !f.Revenue.IsZero() {
		m.GrossMargin = ratio(f.Revenue.Sub(f.COGS), f.Revenue)
	}

	// Debt service proxy: the year's finance cost plus principal due within
	// twelve months.
	service := f.FinanceExpense.Abs().Add(f.ShortTermDebt).Add(f.ShortTermLease)
	if service.IsPositive() && !f.EBITDA.IsZero() {
		m.DSCR = ratio(f.EBITDA, service)
	}
	return m
}

func ratio(num, den decimal.Decimal) *float64 {
	v, _ := num.Div(den).Float64()
	return &v
}
