package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestStatementAdd(t *testing.T) {
	s := CanonicalStatement{}

	// Component keys accumulate.
	s.Add(KeyTradeReceivables, decimal.NewFromInt(100))
	s.Add(KeyTradeReceivables, decimal.NewFromInt(50))
	if !s.Get(KeyTradeReceivables).Equal(decimal.NewFromInt(150)) {
		t.Fatalf("component sum = %s, want 150", s.Get(KeyTradeReceivables))
	}

	// Aggregate totals restate: the last total line wins.
	s.Add(KeyCurrentAssetsTotal, decimal.NewFromInt(900))
	s.Add(KeyCurrentAssetsTotal, decimal.NewFromInt(1000))
	if !s.Get(KeyCurrentAssetsTotal).Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("aggregate = %s, want 1000", s.Get(KeyCurrentAssetsTotal))
	}
}

func TestDefaultYearFallback(t *testing.T) {
	undated := CanonicalStatement{KeyCashAndEquivalents: decimal.NewFromInt(5)}
	dated := CanonicalStatement{KeyCashAndEquivalents: decimal.NewFromInt(9)}

	m := &FinancialModel{
		BalanceSheetByYear: map[string]CanonicalStatement{"": undated, "2025": dated},
		DefaultYear:        "2025",
	}
	if !m.BalanceSheet().Get(KeyCashAndEquivalents).Equal(decimal.NewFromInt(9)) {
		t.Fatalf("default year statement not selected")
	}

	m.DefaultYear = ""
	if !m.BalanceSheet().Get(KeyCashAndEquivalents).Equal(decimal.NewFromInt(5)) {
		t.Fatalf("undated fallback not selected")
	}
}

func TestParseSector(t *testing.T) {
	if got := ParseSector("construction"); got != SectorConstruction {
		t.Fatalf("ParseSector = %q", got)
	}
	if got := ParseSector("bilinmeyen"); got != SectorDefense {
		t.Fatalf("unknown sector = %q, want defense fallback", got)
	}
}
