package mapping

import (
	"testing"

	"github.com/osmanekinci26/cashguardtr/internal/model"
)

func newTestMapper(t *testing.T) *Mapper {
	t.Helper()
	return NewMapper(NewIndex())
}

func TestMapLabelExact(t *testing.T) {
	m := newTestMapper(t)

	tests := []struct {
		label string
		want  model.CanonicalKey
	}{
		{"Ticari Alacaklar", model.KeyTradeReceivables},
		{"STOKLAR", model.KeyInventories},
		{"Nakit ve Nakit Benzerleri", model.KeyCashAndEquivalents},
		{"I. DÖNEN VARLIKLAR", model.KeyCurrentAssetsTotal},
		{"Kısa Vadeli Yükümlülükler", model.KeyShortTermLiabilities},
		{"Özkaynaklar", model.KeyEquityTotal},
		{"Satışların Maliyeti", model.KeyCOGS},
	}
	for _, tt := range tests {
		got, ok := m.MapLabel(tt.label)
		if !ok {
			t.Fatalf("MapLabel(%q): no match", tt.label)
		}
		if got != tt.want {
			t.Fatalf("MapLabel(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

// A component row carrying an aggregate's phrase must never land on the
// aggregate key. "Diğer dönen varlıklar" is the historical false positive.
func TestMapLabelAggregateGuard(t *testing.T) {
	m := newTestMapper(t)

	got, ok := m.MapLabel("Diğer Dönen Varlıklar")
	if !ok {
		t.Fatalf("MapLabel: no match for component row")
	}
	if got != model.KeyOtherCurrentAssets {
		t.Fatalf("MapLabel = %q, want %q", got, model.KeyOtherCurrentAssets)
	}
	if got.IsAggregate() {
		t.Fatalf("component row resolved to aggregate key %q", got)
	}
}

func TestMapLabelTotalRows(t *testing.T) {
	m := newTestMapper(t)

	tests := []struct {
		label string
		want  model.CanonicalKey
	}{
		{"DÖNEN VARLIKLAR TOPLAMI", model.KeyCurrentAssetsTotal},
		{"Toplam Varlıklar", model.KeyTotalAssets},
		{"AKTİF TOPLAMI", model.KeyTotalAssets},
		// Bare section headers count as total rows without the word "toplam".
		{"DÖNEN VARLIKLAR", model.KeyCurrentAssetsTotal},
		{"KISA VADELİ YABANCI KAYNAKLAR", model.KeyShortTermLiabilities},
	}
	for _, tt := range tests {
		got, ok := m.MapLabel(tt.label)
		if !ok {
			t.Fatalf("MapLabel(%q): no match", tt.label)
		}
		if got != tt.want {
			t.Fatalf("MapLabel(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestMapLabelFuzzy(t *testing.T) {
	m := newTestMapper(t)

	// Close misspellings should still resolve through the fuzzy tier.
	tests := []struct {
		label string
		want  model.CanonicalKey
	}{
		{"Ticari Alacakla", model.KeyTradeReceivables},
		{"Maddi Duran Varlıklr", model.KeyPPE},
	}
	for _, tt := range tests {
		got, ok := m.MapLabel(tt.label)
		if !ok {
			t.Fatalf("MapLabel(%q): no fuzzy match", tt.label)
		}
		if got != tt.want {
			t.Fatalf("MapLabel(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestMapLabelNoMatch(t *testing.T) {
	m := newTestMapper(t)

	for _, label := range []string{"", "   ", "xyzqw", "Şube Kira Kontratları Dosyası"} {
		if key, ok := m.MapLabel(label); ok {
			t.Fatalf("MapLabel(%q) unexpectedly matched %q", label, key)
		}
	}
}
