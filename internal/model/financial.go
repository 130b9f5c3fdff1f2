package model

import (
	"github.com/shopspring/decimal"
)

// NegligibleEpsilon is the absolute magnitude below which a parsed value is
// treated as non-contributory.
var NegligibleEpsilon = decimal.NewFromFloat(0.01)

// CanonicalStatement maps canonical keys to signed monetary values for one
// statement (balance sheet or income statement) of one fiscal year.
type CanonicalStatement map[CanonicalKey]decimal.Decimal

// Get returns the value for key, or zero when absent.
func (s CanonicalStatement) Get(key CanonicalKey) decimal.Decimal {
	if v, ok := s[key]; ok {
		return v
	}
	return decimal.Zero
}

// Add accumulates value onto key. Aggregate totals overwrite instead of summing:
// a total line restates the whole section, it is never a partial contribution.
func (s CanonicalStatement) Add(key CanonicalKey, value decimal.Decimal) {
	if key.IsAggregate() {
		s[key] = value
		return
	}
	s[key] = s.Get(key).Add(value)
}

// Clone returns an independent copy of the statement.
func (s CanonicalStatement) Clone() CanonicalStatement {
	out := make(CanonicalStatement, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// TrialBalanceRow is one non-zero ledger row from a trial balance export.
// Balance is signed debit minus credit; contra correction is already applied.
type TrialBalanceRow struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	CodePrefix3 int             `json:"codePrefix3"`
	DigitLength int             `json:"digitLength"`
}

// LineItemObservation records how one spreadsheet row was mapped. Rows that
// resolve to no key are kept for diagnostics.
type LineItemObservation struct {
	Sheet       string          `json:"sheet"`
	Row         int             `json:"row"`
	RawLabel    string          `json:"rawLabel"`
	Normalized  string          `json:"normalized"`
	ResolvedKey CanonicalKey    `json:"resolvedKey,omitempty"`
	Value       decimal.Decimal `json:"value"`
}

// FinancialModel is the result of parsing one workbook. Immutable once built.
type FinancialModel struct {
	BalanceSheetByYear    map[string]CanonicalStatement `json:"balanceSheetByYear"`
	IncomeStatementByYear map[string]CanonicalStatement `json:"incomeStatementByYear"`
	DefaultYear           string                        `json:"defaultYear,omitempty"`
	MappingLog            []LineItemObservation         `json:"mappingLog"`
	UnmappedLabels        []string                      `json:"unmappedLabels"`
}

// BalanceSheet returns the default-year balance sheet, or an empty statement.
func (m *FinancialModel) BalanceSheet() CanonicalStatement {
	return m.statementFor(m.BalanceSheetByYear)
}

// IncomeStatement returns the default-year income statement, or an empty statement.
func (m *FinancialModel) IncomeStatement() CanonicalStatement {
	return m.statementFor(m.IncomeStatementByYear)
}

func (m *FinancialModel) statementFor(byYear map[string]CanonicalStatement) CanonicalStatement {
	if byYear == nil {
		return CanonicalStatement{}
	}
	if m.DefaultYear != "" {
		if s, ok := byYear[m.DefaultYear]; ok {
			return s
		}
	}
	// Trial-balance-only parses carry a single undated statement.
	if s, ok := byYear[""]; ok {
		return s
	}
	return CanonicalStatement{}
}

// Metrics holds the derived ratio set. Nil pointers mean the metric could not
// be computed (missing or zero denominator), never a silent zero.
type Metrics struct {
	CurrentRatio  *float64        `json:"currentRatio"`
	QuickRatio    *float64        `json:"quickRatio"`
	NetDebt       decimal.Decimal `json:"netDebt"`
	DebtToEquity  *float64        `json:"debtToEquity"`
	InterestCover *float64        `json:"interestCover"`
	GrossMargin   *float64        `json:"grossMargin"`
	DSCR          *float64        `json:"dscr"`
	NWC           decimal.Decimal `json:"nwc"`
	Year          string          `json:"year,omitempty"`
}

// AnalysisResult is the outcome of analyzing one financial model.
type AnalysisResult struct {
	Metrics        Metrics               `json:"metrics"`
	Bullets        []string              `json:"bullets"`
	MappingLog     []LineItemObservation `json:"mappingLog"`
	UnmappedLabels []string              `json:"unmappedLabels"`
}
