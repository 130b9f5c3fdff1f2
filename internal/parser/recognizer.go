package parser

import (
	"strconv"
	"strings"

	"github.com/osmanekinci26/cashguardtr/internal/normalize"
)

// incomeKeywords signal an income statement region somewhere in the sheet.
var incomeKeywords = []string{
	"gelir tablosu", "net satis", "satis gelirleri", "hasilat",
	"brut kar", "faaliyet kari", "favok", "faiz", "finansman gider",
}

// FormatDetector classifies worksheets into the supported layouts.
type FormatDetector struct{}

// NewFormatDetector creates a detector.
func NewFormatDetector() *FormatDetector {
	return &FormatDetector{}
}

// Detect inspects the leading region of a worksheet and classifies it.
// Precedence: trial balance, then legacy KALEM, then flexible income.
func (d *FormatDetector) Detect(sheet string, rows [][]string) Detection {
	if layout, ok := d.detectTrialBalance(rows); ok {
		return Detection{Sheet: sheet, Kind: FormatTrialBalance, TrialBalance: layout}
	}
	if blocks, ok := d.detectKalemBlocks(rows); ok {
		return Detection{Sheet: sheet, Kind: FormatLegacyKalem, KalemBlocks: blocks}
	}
	if layout, ok := d.detectFlexibleIncome(rows); ok {
		return Detection{Sheet: sheet, Kind: FormatFlexibleIncome, Income: layout}
	}
	return Detection{Sheet: sheet, Kind: FormatUnrecognized}
}

// detectTrialBalance looks for a header row carrying "hesap kodu" together
// with a name column or balance-type columns.
func (d *FormatDetector) detectTrialBalance(rows [][]string) (*TrialBalanceLayout, bool) {
	for r := 0; r < len(rows) && r < maxScanRows; r++ {
		codeCol := -1
		for c := 0; c < len(rows[r]) && c < maxScanCols; c++ {
			if normalize.Normalize(rows[r][c]) == "hesap kodu" {
				codeCol = c
				break
			}
		}
		if codeCol < 0 {
			continue
		}

		layout := &TrialBalanceLayout{
			HeaderRow:  r,
			CodeCol:    codeCol,
			NameCol:    -1,
			BalanceCol: -1,
			DebitCol:   -1,
			CreditCol:  -1,
		}
		for c := 0; c < len(rows[r]) && c < maxScanCols; c++ {
			if c == codeCol {
				continue
			}
			n := normalize.Normalize(rows[r][c])
			switch {
			case strings.Contains(n, "hesap ad") && layout.NameCol < 0:
				layout.NameCol = c
			case n == "bakiye" && layout.BalanceCol < 0:
				layout.BalanceCol = c
			case n == "borc" && layout.DebitCol < 0:
				layout.DebitCol = c
			case n == "alacak" && layout.CreditCol < 0:
				layout.CreditCol = c
			}
		}

		hasBalance := layout.BalanceCol >= 0 || (layout.DebitCol >= 0 && layout.CreditCol >= 0)
		if layout.NameCol >= 0 || hasBalance {
			return layout, true
		}
	}
	return nil, false
}

// detectKalemBlocks finds every "KALEM" header cell. Each one opens a block;
// year columns sit to its right, possibly interleaved with non-year columns
// (a "%" column does not break the scan). The last year column per block is
// the value column: the most recent reporting year wins.
func (d *FormatDetector) detectKalemBlocks(rows [][]string) ([]KalemBlock, bool) {
	var blocks []KalemBlock
	for r := 0; r < len(rows) && r < maxScanRows; r++ {
		for c := 0; c < len(rows[r]) && c < maxScanCols; c++ {
			if normalize.Normalize(rows[r][c]) != "kalem" {
				continue
			}
			block := KalemBlock{HeaderRow: r, LabelCol: c, ValueCol: -1}
			for cc := c + 1; cc < len(rows[r]) && cc < maxScanCols; cc++ {
				if normalize.Normalize(rows[r][cc]) == "kalem" {
					break // side-by-side blocks: the next header ends this scan
				}
				if y, ok := parseYearCell(rows[r][cc]); ok {
					block.ValueCol = cc
					block.Year = y
				}
			}
			blocks = append(blocks, block)
		}
	}
	if len(blocks) == 0 {
		return nil, false
	}

	// Each block runs until the next header row below it.
	for i := range blocks {
		blocks[i].EndRow = len(rows)
		for j := range blocks {
			if blocks[j].HeaderRow > blocks[i].HeaderRow && blocks[j].HeaderRow < blocks[i].EndRow {
				blocks[i].EndRow = blocks[j].HeaderRow
			}
		}
	}
	return blocks, true
}

// detectFlexibleIncome requires a domain keyword in the scan region, then
// locates the description and value columns from header labels, falling back
// to column content statistics when no usable header row exists.
func (d *FormatDetector) detectFlexibleIncome(rows [][]string) (*IncomeLayout, bool) {
	if !d.hasIncomeKeyword(rows) {
		return nil, false
	}

	if layout, ok := d.incomeLayoutFromHeader(rows); ok {
		return layout, true
	}
	if layout, ok := d.incomeLayoutFromContent(rows); ok {
		return layout, true
	}
	return nil, false
}

func (d *FormatDetector) hasIncomeKeyword(rows [][]string) bool {
	for r := 0; r < len(rows) && r < maxScanRows; r++ {
		for c := 0; c < len(rows[r]) && c < maxScanCols; c++ {
			n := normalize.Normalize(rows[r][c])
			if n == "" {
				continue
			}
			for _, kw := range incomeKeywords {
				if strings.Contains(n, kw) {
					return true
				}
			}
		}
	}
	return false
}

func (d *FormatDetector) incomeLayoutFromHeader(rows [][]string) (*IncomeLayout, bool) {
	for r := 0; r < len(rows) && r < maxScanRows; r++ {
		labelCol := -1
		valueCol := -1
		year := 0
		for c := 0; c < len(rows[r]) && c < maxScanCols; c++ {
			// Year cells must be checked on the raw text: normalization strips
			// pure-digit tokens as row-prefix noise and would blank them.
			if y, ok := parseYearCell(rows[r][c]); ok {
				valueCol = c
				year = y
				continue
			}
			n := normalize.Normalize(rows[r][c])
			if n == "" {
				continue
			}
			switch {
			case labelCol < 0 && (n == "kalem" || n == "aciklama" || strings.Contains(n, "hesap") || strings.Contains(n, "gelir tablosu")):
				labelCol = c
			case n == "tutar" || n == "deger" || strings.HasPrefix(n, "tutar "):
				// A labeled amount column wins over year columns seen earlier.
				valueCol = c
				year = 0
			}
		}
		if labelCol >= 0 && valueCol >= 0 {
			return &IncomeLayout{HeaderRow: r, LabelCol: labelCol, ValueCol: valueCol, Year: year}, true
		}
	}
	return nil, false
}

// incomeLayoutFromContent picks the column with the most text cells as the
// description column and the most numeric column to its right as the value
// column. Used for headerless exports.
func (d *FormatDetector) incomeLayoutFromContent(rows [][]string) (*IncomeLayout, bool) {
	textCount := make([]int, maxScanCols)
	numCount := make([]int, maxScanCols)
	limit := len(rows)
	if limit > maxScanRows {
		limit = maxScanRows
	}
	for r := 0; r < limit; r++ {
		for c := 0; c < len(rows[r]) && c < maxScanCols; c++ {
			switch ClassifyCell(rows[r][c]).Kind {
			case CellText:
				textCount[c]++
			case CellNumber:
				numCount[c]++
			}
		}
	}

	labelCol := -1
	for c, n := range textCount {
		if labelCol < 0 || n > textCount[labelCol] {
			if n > 0 {
				labelCol = c
			}
		}
	}
	if labelCol < 0 {
		return nil, false
	}
	valueCol := -1
	for c := labelCol + 1; c < maxScanCols; c++ {
		// Ties break rightward: with equally numeric columns the rightmost is
		// the most recent reporting period.
		if numCount[c] > 0 && (valueCol < 0 || numCount[c] >= numCount[valueCol]) {
			valueCol = c
		}
	}
	if valueCol < 0 {
		return nil, false
	}
	return &IncomeLayout{HeaderRow: -1, LabelCol: labelCol, ValueCol: valueCol}, true
}

// parseYearCell reads a cell as a plausible reporting year.
func parseYearCell(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, ".0") // numeric cells may render with a decimal tail
	if len(s) != 4 {
		return 0, false
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if y < yearMin || y > yearMax {
		return 0, false
	}
	return y, true
}
