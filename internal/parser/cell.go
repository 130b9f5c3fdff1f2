package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CellKind classifies a spreadsheet cell at the boundary. Business logic only
// ever sees this closed variant, never raw mixed-type cell content.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
)

// CellValue is the normalized form of one cell.
type CellValue struct {
	Kind   CellKind
	Number decimal.Decimal
	Text   string
}

// ClassifyCell converts a raw cell string into the closed cell variant.
// Numeric detection accepts Turkish ("1.234.567,89") and English
// ("1,234,567.89") digit grouping plus plain machine formats.
func ClassifyCell(raw string) CellValue {
	s := strings.TrimSpace(raw)
	if s == "" {
		return CellValue{Kind: CellEmpty}
	}
	if n, ok := ParseAmount(s); ok {
		return CellValue{Kind: CellNumber, Number: n, Text: s}
	}
	return CellValue{Kind: CellText, Text: s}
}

// ParseAmount parses a monetary cell. Currency markers are tolerated;
// parenthesized values are negative. Returns false for non-numeric text.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	for _, marker := range []string{"₺", "TL", "tl", "TRY"} {
		s = strings.ReplaceAll(s, marker, "")
	}
	s = strings.ReplaceAll(s, " ", "")
	if s == "" || s == "-" {
		return decimal.Zero, false
	}

	s = normalizeSeparators(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if neg {
		d = d.Neg()
	}
	return d, true
}

// normalizeSeparators rewrites digit grouping to machine format. When both
// separators appear, the rightmost one is the decimal mark. A lone separator
// followed by exactly three digits is read as grouping (Turkish exports write
// "1.000" for one thousand, legacy sheets write "1,000,000").
func normalizeSeparators(s string) string {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 && len(s)-lastComma-1 != 3 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastDot >= 0:
		if strings.Count(s, ".") == 1 && len(s)-lastDot-1 != 3 {
			// decimal point as-is
		} else {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	return s
}

// cellAt returns the raw cell at (row, col) from a GetRows matrix, or "".
func cellAt(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) {
		return ""
	}
	r := rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// rowIsEmpty reports whether every cell in the row is blank.
func rowIsEmpty(rows [][]string, row int) bool {
	if row < 0 || row >= len(rows) {
		return true
	}
	for _, c := range rows[row] {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
