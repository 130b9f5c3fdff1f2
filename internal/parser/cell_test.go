package parser

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"1234567.89", "1234567.89", true},
		{"1.234.567,89", "1234567.89", true},
		{"1,234,567.89", "1234567.89", true},
		{"1.000", "1000", true},
		{"1,000", "1000", true},
		{"12,5", "12.5", true},
		{"12.5", "12.5", true},
		{"(1.000)", "-1000", true},
		{"-250,75", "-250.75", true},
		{"₺ 5.000", "5000", true},
		{"1.500 TL", "1500", true},
		{"", "", false},
		{"-", "", false},
		{"Ticari Alacaklar", "", false},
		{"1.2.3,4,5", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseAmount(tt.in)
		if ok != tt.wantOK {
			t.Fatalf("ParseAmount(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
		}
		if !ok {
			continue
		}
		want, _ := decimal.NewFromString(tt.want)
		if !got.Equal(want) {
			t.Fatalf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestClassifyCell(t *testing.T) {
	tests := []struct {
		in   string
		want CellKind
	}{
		{"", CellEmpty},
		{"   ", CellEmpty},
		{"1.234,56", CellNumber},
		{"Stoklar", CellText},
		{"2024", CellNumber},
	}
	for _, tt := range tests {
		if got := ClassifyCell(tt.in).Kind; got != tt.want {
			t.Fatalf("ClassifyCell(%q).Kind = %v, want %v", tt.in, got, tt.want)
		}
	}
}
