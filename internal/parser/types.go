package parser

// FormatKind classifies what kind of financial layout a worksheet carries.
type FormatKind string

const (
	FormatTrialBalance   FormatKind = "trial_balance"
	FormatFlexibleIncome FormatKind = "flexible_income"
	FormatLegacyKalem    FormatKind = "legacy_kalem"
	FormatUnrecognized   FormatKind = "unrecognized"
)

// Scan bounds. Detection never walks whole sheets; data extraction stops after
// a run of empty rows so trailing junk regions are never consumed.
const (
	maxScanRows      = 80
	maxScanCols      = 20
	emptyStreakLimit = 25

	yearMin = 1900
	yearMax = 2200
)

// TrialBalanceLayout records where the trial balance header landed.
// A column index of -1 means the column is absent.
type TrialBalanceLayout struct {
	HeaderRow  int
	CodeCol    int
	NameCol    int
	BalanceCol int // single net balance column
	DebitCol   int // used as debit-credit when BalanceCol is absent
	CreditCol  int
}

// KalemBlock is one legacy "KALEM + year columns" region. Sheets may carry
// several blocks (asset block, then liability block).
type KalemBlock struct {
	HeaderRow int
	LabelCol  int
	ValueCol  int
	Year      int
	EndRow    int // exclusive; bounds the block before the next header
}

// IncomeLayout records the description and value columns of a flexible
// income statement sheet. Year is zero when no year header was present.
type IncomeLayout struct {
	HeaderRow int
	LabelCol  int
	ValueCol  int
	Year      int
}

// Detection is the per-worksheet recognition result.
type Detection struct {
	Sheet        string
	Kind         FormatKind
	TrialBalance *TrialBalanceLayout
	KalemBlocks  []KalemBlock
	Income       *IncomeLayout
}
