package parser

import "testing"

func TestDetectTrialBalance(t *testing.T) {
	rows := [][]string{
		{"Mizan Dökümü 2025"},
		{},
		{"Hesap Kodu", "Hesap Adı", "Borç", "Alacak", "Bakiye"},
		{"100", "Kasa", "1.000", "", "1.000"},
	}

	d := NewFormatDetector()
	det := d.Detect("MIZAN", rows)
	if det.Kind != FormatTrialBalance {
		t.Fatalf("Detect kind = %q, want trial balance", det.Kind)
	}
	l := det.TrialBalance
	if l.HeaderRow != 2 || l.CodeCol != 0 || l.NameCol != 1 {
		t.Fatalf("layout = %+v", l)
	}
	if l.BalanceCol != 4 || l.DebitCol != 2 || l.CreditCol != 3 {
		t.Fatalf("value columns = %+v", l)
	}
}

func TestDetectTrialBalanceDebitCreditOnly(t *testing.T) {
	rows := [][]string{
		{"Hesap Kodu", "Hesap Adı", "Borç", "Alacak"},
	}
	det := NewFormatDetector().Detect("MIZAN", rows)
	if det.Kind != FormatTrialBalance {
		t.Fatalf("Detect kind = %q, want trial balance", det.Kind)
	}
	if det.TrialBalance.BalanceCol != -1 {
		t.Fatalf("BalanceCol = %d, want -1", det.TrialBalance.BalanceCol)
	}
}

// Legacy BILANCO sheets put two blocks side by side on the same header row:
// assets on the left, liabilities on the right. Each block must keep its own
// year columns.
func TestDetectKalemBlocksSideBySide(t *testing.T) {
	rows := [][]string{
		{},
		{"", "KALEM", "", "2024", "2025", "KALEM", "", "2024", "2025"},
		{"", "Kasa", "", "100", "120", "Satıcılar", "", "80", "90"},
	}
	det := NewFormatDetector().Detect("BILANCO", rows)
	if det.Kind != FormatLegacyKalem {
		t.Fatalf("Detect kind = %q, want legacy kalem", det.Kind)
	}
	if len(det.KalemBlocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(det.KalemBlocks))
	}

	left, right := det.KalemBlocks[0], det.KalemBlocks[1]
	if left.LabelCol != 1 || left.ValueCol != 4 || left.Year != 2025 {
		t.Fatalf("left block = %+v", left)
	}
	if right.LabelCol != 5 || right.ValueCol != 8 || right.Year != 2025 {
		t.Fatalf("right block = %+v", right)
	}
}

func TestDetectKalemStackedBlocks(t *testing.T) {
	rows := [][]string{
		{"", "KALEM", "", "2024", "2025"},
		{"", "Kasa", "", "100", "120"},
		{},
		{"", "KALEM", "", "2024", "2025"},
		{"", "Satıcılar", "", "80", "90"},
	}
	det := NewFormatDetector().Detect("BILANCO", rows)
	if det.Kind != FormatLegacyKalem {
		t.Fatalf("Detect kind = %q, want legacy kalem", det.Kind)
	}
	if len(det.KalemBlocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(det.KalemBlocks))
	}
	if det.KalemBlocks[0].EndRow != 3 {
		t.Fatalf("first block EndRow = %d, want 3", det.KalemBlocks[0].EndRow)
	}
	if det.KalemBlocks[1].EndRow != 5 {
		t.Fatalf("second block EndRow = %d, want 5", det.KalemBlocks[1].EndRow)
	}
}

func TestDetectFlexibleIncomeFromHeader(t *testing.T) {
	rows := [][]string{
		{"GELİR TABLOSU"},
		{"Açıklama", "2024", "2025"},
		{"Net Satışlar", "900.000", "1.000.000"},
	}
	det := NewFormatDetector().Detect("GELIR", rows)
	if det.Kind != FormatFlexibleIncome {
		t.Fatalf("Detect kind = %q, want flexible income", det.Kind)
	}
	l := det.Income
	if l.LabelCol != 0 || l.ValueCol != 2 || l.Year != 2025 {
		t.Fatalf("income layout = %+v", l)
	}
}

// Year headers survive detection even though normalization strips pure-digit
// tokens: the raw cell must be read as a year before the header labels.
func TestDetectFlexibleIncomeYearHeadersOnly(t *testing.T) {
	rows := [][]string{
		{"GELİR TABLOSU"},
		{"Hesap Kalemi", "2023", "2024", "2025"},
		{"Net Satışlar", "800.000", "900.000", "1.000.000"},
	}
	det := NewFormatDetector().Detect("GELIR", rows)
	if det.Kind != FormatFlexibleIncome {
		t.Fatalf("Detect kind = %q, want flexible income", det.Kind)
	}
	l := det.Income
	if l.HeaderRow != 1 || l.LabelCol != 0 {
		t.Fatalf("income layout = %+v", l)
	}
	if l.ValueCol != 3 || l.Year != 2025 {
		t.Fatalf("value column = %+v, want last year column with year 2025", l)
	}
}

func TestDetectFlexibleIncomeFromContent(t *testing.T) {
	// No usable header row: columns are inferred from content statistics.
	rows := [][]string{
		{"GELİR TABLOSU", ""},
		{"Net Satışlar", "1.000.000"},
		{"Satışların Maliyeti", "600.000"},
		{"Brüt Kâr", "400.000"},
	}
	det := NewFormatDetector().Detect("GELIR", rows)
	if det.Kind != FormatFlexibleIncome {
		t.Fatalf("Detect kind = %q, want flexible income", det.Kind)
	}
	l := det.Income
	if l.LabelCol != 0 || l.ValueCol != 1 {
		t.Fatalf("income layout = %+v", l)
	}
}

func TestDetectFlexibleIncomeContentTieBreaksRight(t *testing.T) {
	// Two equally numeric columns: the rightmost carries the latest period.
	rows := [][]string{
		{"GELİR TABLOSU", "", ""},
		{"Net Satışlar", "900.000", "1.000.000"},
		{"Satışların Maliyeti", "500.000", "600.000"},
	}
	det := NewFormatDetector().Detect("GELIR", rows)
	if det.Kind != FormatFlexibleIncome {
		t.Fatalf("Detect kind = %q, want flexible income", det.Kind)
	}
	if det.Income.ValueCol != 2 {
		t.Fatalf("ValueCol = %d, want rightmost column 2", det.Income.ValueCol)
	}
}

func TestDetectKalemYearScanBounded(t *testing.T) {
	// A year cell beyond the scan width must not become the value column.
	header := make([]string, maxScanCols+6)
	header[0] = "KALEM"
	header[maxScanCols+5] = "2025"
	det := NewFormatDetector().Detect("BILANCO", [][]string{header})
	if det.Kind != FormatLegacyKalem {
		t.Fatalf("Detect kind = %q, want legacy kalem", det.Kind)
	}
	if det.KalemBlocks[0].ValueCol != -1 {
		t.Fatalf("ValueCol = %d, want -1 beyond scan bound", det.KalemBlocks[0].ValueCol)
	}
}

func TestDetectUnrecognized(t *testing.T) {
	rows := [][]string{
		{"Personel Listesi"},
		{"Ad", "Soyad"},
		{"Ali", "Veli"},
	}
	det := NewFormatDetector().Detect("Sayfa1", rows)
	if det.Kind != FormatUnrecognized {
		t.Fatalf("Detect kind = %q, want unrecognized", det.Kind)
	}
}
