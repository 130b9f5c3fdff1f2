package normalize

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"turkish letters fold", "DÖNEN VARLIKLAR", "donen varliklar"},
		{"dotted capital I", "TİCARİ ALACAKLAR", "ticari alacaklar"},
		{"punctuation collapses", "Nakit ve Nakit Benzerleri  (TL)", "nakit ve nakit benzerleri tl"},
		{"roman prefix stripped", "I. DÖNEN VARLIKLAR", "donen varliklar"},
		{"letter prefix stripped", "A) Hazır Değerler", "hazir degerler"},
		{"numeric prefix stripped", "3 Stoklar", "stoklar"},
		{"stacked prefixes stripped", "II. B. 1 Ticari Alacaklar", "ticari alacaklar"},
		{"empty", "", ""},
		{"only noise", "I.", ""},
		{"circumflex stripped", "kâr", "kar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"I. DÖNEN VARLIKLAR",
		"Ticari Alacaklar",
		"KISA VADELİ YÜKÜMLÜLÜKLER TOPLAMI",
		"Peşin Ödenmiş Giderler",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
