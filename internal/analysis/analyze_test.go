package analysis

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/osmanekinci26/cashguardtr/internal/model"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func modelWith(bs, inc model.CanonicalStatement) *model.FinancialModel {
	return &model.FinancialModel{
		BalanceSheetByYear:    map[string]model.CanonicalStatement{"2025": bs},
		IncomeStatementByYear: map[string]model.CanonicalStatement{"2025": inc},
		DefaultYear:           "2025",
	}
}

func TestAnalyzeRatios(t *testing.T) {
	bs := model.CanonicalStatement{
		model.KeyCurrentAssetsTotal:   dec("300"),
		model.KeyInventories:          dec("100"),
		model.KeyCashAndEquivalents:   dec("50"),
		model.KeyShortTermLiabilities: dec("200"),
		model.KeyShortTermFinDebt:     dec("80"),
		model.KeyLongTermFinDebt:      dec("120"),
		model.KeyEquityTotal:          dec("100"),
	}
	inc := model.CanonicalStatement{
		model.KeyRevenue:        dec("1000"),
		model.KeyCOGS:           dec("600"),
		model.KeyEBIT:           dec("90"),
		model.KeyFinanceExpense: dec("30"),
	}

	res := Analyze(modelWith(bs, inc), model.SectorDefense)
	m := res.Metrics

	if m.CurrentRatio == nil || *m.CurrentRatio != 1.5 {
		t.Fatalf("current ratio = %v, want 1.5", m.CurrentRatio)
	}
	if m.QuickRatio == nil || *m.QuickRatio != 1.0 {
		t.Fatalf("quick ratio = %v, want 1.0", m.QuickRatio)
	}
	if !m.NetDebt.Equal(dec("150")) {
		t.Fatalf("net debt = %s, want 150", m.NetDebt)
	}
	if m.DebtToEquity == nil || *m.DebtToEquity != 2.0 {
		t.Fatalf("debt/equity = %v, want 2.0", m.DebtToEquity)
	}
	if m.InterestCover == nil || *m.InterestCover != 3.0 {
		t.Fatalf("interest cover = %v, want 3.0", m.InterestCover)
	}
	if m.GrossMargin == nil || *m.GrossMargin != 0.4 {
		t.Fatalf("gross margin = %v, want 0.4", m.GrossMargin)
	}
	if !m.NWC.Equal(dec("100")) {
		t.Fatalf("nwc = %s, want 100", m.NWC)
	}
	if m.Year != "2025" {
		t.Fatalf("year = %q, want 2025", m.Year)
	}
}

func TestAnalyzeCurrentAssetsProxy(t *testing.T) {
	// No reported section total: components sum into the proxy.
	bs := model.CanonicalStatement{
		model.KeyCashAndEquivalents:   dec("50"),
		model.KeyTradeReceivables:     dec("100"),
		model.KeyInventories:          dec("70"),
		model.KeyPrepaidExpenses:      dec("30"),
		model.KeyShortTermLiabilities: dec("125"),
	}

	res := Analyze(modelWith(bs, model.CanonicalStatement{}), model.SectorDefense)
	if res.Metrics.CurrentRatio == nil || *res.Metrics.CurrentRatio != 2.0 {
		t.Fatalf("current ratio = %v, want 2.0 from component proxy", res.Metrics.CurrentRatio)
	}
}

func TestAnalyzeNilMetrics(t *testing.T) {
	// No liabilities, no equity, no revenue: ratios must be nil, never zero or
	// a division error.
	bs := model.CanonicalStatement{
		model.KeyCashAndEquivalents: dec("50"),
	}
	res := Analyze(modelWith(bs, model.CanonicalStatement{}), model.SectorDefense)
	m := res.Metrics

	if m.CurrentRatio != nil {
		t.Fatalf("current ratio = %v, want nil", *m.CurrentRatio)
	}
	if m.DebtToEquity != nil {
		t.Fatalf("debt/equity = %v, want nil", *m.DebtToEquity)
	}
	if m.InterestCover != nil {
		t.Fatalf("interest cover = %v, want nil", *m.InterestCover)
	}
	if m.GrossMargin != nil {
		t.Fatalf("gross margin = %v, want nil", *m.GrossMargin)
	}
	if m.DSCR != nil {
		t.Fatalf("dscr = %v, want nil", *m.DSCR)
	}

	// Uncomputable ratios still produce explanatory commentary.
	if len(res.Bullets) == 0 {
		t.Fatalf("no bullets produced")
	}
	joined := strings.Join(res.Bullets, "\n")
	if !strings.Contains(joined, "Cari oran hesaplanamadı") {
		t.Fatalf("missing current ratio explanation: %v", res.Bullets)
	}
}

func TestAnalyzeNegativeEquity(t *testing.T) {
	bs := model.CanonicalStatement{
		model.KeyShortTermFinDebt: dec("100"),
		model.KeyEquityTotal:      dec("-50"),
	}
	res := Analyze(modelWith(bs, model.CanonicalStatement{}), model.SectorDefense)
	if res.Metrics.DebtToEquity != nil {
		t.Fatalf("debt/equity = %v, want nil for negative equity", *res.Metrics.DebtToEquity)
	}
}

func TestAnalyzeDSCR(t *testing.T) {
	bs := model.CanonicalStatement{
		model.KeyShortTermFinDebt:   dec("100"),
		model.KeyLeaseLiabilitiesST: dec("20"),
		model.KeyEquityTotal:        dec("500"),
	}
	inc := model.CanonicalStatement{
		model.KeyEBITDA:         dec("300"),
		model.KeyFinanceExpense: dec("30"),
	}
	res := Analyze(modelWith(bs, inc), model.SectorDefense)
	if res.Metrics.DSCR == nil || *res.Metrics.DSCR != 2.0 {
		t.Fatalf("dscr = %v, want 2.0", res.Metrics.DSCR)
	}

	found := false
	for _, b := range res.Bullets {
		if strings.Contains(b, "Borç servis karşılama") {
			found = true
		}
	}
	if !found {
		t.Fatalf("dscr bullet missing: %v", res.Bullets)
	}
}

func TestBulletCap(t *testing.T) {
	// A fully populated model emits every bullet; the cap bounds the count.
	bs := model.CanonicalStatement{
		model.KeyCurrentAssetsTotal:   dec("300"),
		model.KeyInventories:          dec("100"),
		model.KeyCashAndEquivalents:   dec("50"),
		model.KeyTradeReceivables:     dec("400"),
		model.KeyShortTermLiabilities: dec("200"),
		model.KeyShortTermFinDebt:     dec("80"),
		model.KeyLongTermFinDebt:      dec("120"),
		model.KeyEquityTotal:          dec("100"),
	}
	inc := model.CanonicalStatement{
		model.KeyRevenue:        dec("1000"),
		model.KeyCOGS:           dec("600"),
		model.KeyEBIT:           dec("90"),
		model.KeyEBITDA:         dec("150"),
		model.KeyFinanceExpense: dec("30"),
	}

	res := Analyze(modelWith(bs, inc), model.SectorConstruction)
	if len(res.Bullets) == 0 {
		t.Fatalf("no bullets produced")
	}
	if len(res.Bullets) > 11 {
		t.Fatalf("bullet count %d exceeds cap", len(res.Bullets))
	}
}
