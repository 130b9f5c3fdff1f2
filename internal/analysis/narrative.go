package analysis

import (
	"fmt"

	"github.com/osmanekinci26/cashguardtr/internal/model"
)

// maxBullets caps the commentary. The debt service bullet, when computable,
// rides above the base cap so it never crowds out the standing advice line.
const maxBullets = 10

// sectorProfile tunes commentary tone per industry.
type sectorProfile struct {
	WorkingCapitalRisk string // "high" or "medium"
	MarginExpectation  string // "low" or "medium"
}

var sectorProfiles = map[model.Sector]sectorProfile{
	model.SectorDefense:      {WorkingCapitalRisk: "medium", MarginExpectation: "medium"},
	model.SectorConstruction: {WorkingCapitalRisk: "high", MarginExpectation: "low"},
	model.SectorElectrical:   {WorkingCapitalRisk: "high", MarginExpectation: "medium"},
	model.SectorEnergy:       {WorkingCapitalRisk: "medium", MarginExpectation: "low"},
}

func profileFor(sector model.Sector) sectorProfile {
	if p, ok := sectorProfiles[sector]; ok {
		return p
	}
	return sectorProfiles[model.SectorDefense]
}

// buildBullets renders the Turkish advisor commentary. Order is fixed;
// uncomputable metrics produce an explanatory line instead of disappearing.
func buildBullets(f figures, m model.Metrics, sector model.Sector) []string {
	prof := profileFor(sector)
	var b []string

	switch {
	case m.CurrentRatio == nil:
		b = append(b, "Cari oran hesaplanamadı (kısa vadeli yükümlülük bulunamadı).")
	case *m.CurrentRatio < 1:
		b = append(b, fmt.Sprintf("Cari oran düşük (%.2f). Kısa vadeli ödeme baskısı riski var.", *m.CurrentRatio))
	case *m.CurrentRatio < 1.5:
		b = append(b, fmt.Sprintf("Cari oran sınırda (%.2f). Nakit tamponu güçlendirilebilir.", *m.CurrentRatio))
	default:
		b = append(b, fmt.Sprintf("Cari oran iyi (%.2f). Kısa vadeli likidite daha rahat görünüyor.", *m.CurrentRatio))
	}

	if m.QuickRatio != nil {
		if *m.QuickRatio < 0.8 {
			b = append(b, fmt.Sprintf("Asit-test oranı düşük (%.2f). Stoksuz çevrimde zorlanma riski.", *m.QuickRatio))
		} else {
			b = append(b, fmt.Sprintf("Asit-test oranı kabul edilebilir (%.2f).", *m.QuickRatio))
		}
	}

	b = append(b, fmt.Sprintf("Net borç (finansal borç - nakit): %s (yaklaşık).", m.NetDebt.Round(0).String()))

	switch {
	case m.DebtToEquity == nil:
		b = append(b, "Borç/Özkaynak hesaplanamadı (özkaynak bulunamadı veya negatif).")
	case *m.DebtToEquity > 2.0:
		b = append(b, fmt.Sprintf("Borç/Özkaynak yüksek (%.2f). Finansal kaldıraç riski artmış.", *m.DebtToEquity))
	case *m.DebtToEquity > 1.0:
		b = append(b, fmt.Sprintf("Borç/Özkaynak orta (%.2f). Borç yönetimi disiplin gerektiriyor.", *m.DebtToEquity))
	default:
		b = append(b, fmt.Sprintf("Borç/Özkaynak makul (%.2f).", *m.DebtToEquity))
	}

	switch {
	case m.InterestCover == nil:
		b = append(b, "Faiz karşılama oranı hesaplanamadı (finansman gideri bulunamadı/0).")
	case *m.InterestCover < 1.5:
		b = append(b, fmt.Sprintf("Faiz karşılama zayıf (%.2f). Faiz yükü operasyonu sıkıştırıyor olabilir.", *m.InterestCover))
	case *m.InterestCover < 3:
		b = append(b, fmt.Sprintf("Faiz karşılama sınırda (%.2f). Faiz şoklarına hassasiyet var.", *m.InterestCover))
	default:
		b = append(b, fmt.Sprintf("Faiz karşılama iyi (%.2f).", *m.InterestCover))
	}

	if m.GrossMargin != nil {
		gm := *m.GrossMargin * 100
		if gm < 10 && prof.MarginExpectation != "low" {
			b = append(b, fmt.Sprintf("Brüt marj düşük (%%%.1f). Fiyatlama/iskonto/kur etkisi kontrol edilmeli.", gm))
		} else {
			b = append(b, fmt.Sprintf("Brüt marj yaklaşık %%%.1f. (Sektör kıyasına göre yorumlanmalı.)", gm))
		}
	}

	nwcNegative := m.NWC.IsNegative()
	if prof.WorkingCapitalRisk == "high" {
		if nwcNegative {
			b = append(b, "Net işletme sermayesi negatif. Proje/taahhüt işlerinde nakit kırılması riski yüksek.")
		} else {
			b = append(b, "Net işletme sermayesi pozitif; yine de proje tahsilat/avans dengesi yakından izlenmeli.")
		}
	} else {
		if nwcNegative {
			b = append(b, "Net işletme sermayesi negatif. Vade yönetimi ve kısa vade refinansman planı kritik.")
		} else {
			b = append(b, "Net işletme sermayesi pozitif. Vade makası bozulursa tampon azalabilir.")
		}
	}

	if !f.Cash.IsPositive() {
		b = append(b, "Nakit kalemi düşük/0 görünüyor. Günlük nakit akışı takibi şart.")
	} else {
		b = append(b, "Nakit var; kritik soru: bu nakit, kısa vadeli borç ve faaliyet giderlerini kaç ay taşır?")
	}

	highReceivables := f.Receivables.IsPositive() && f.Revenue.IsPositive() &&
		f.Receivables.Div(f.Revenue).InexactFloat64() > 0.35
	if highReceivables {
		b = append(b, "Alacakların ciroya oranı yüksek görünüyor. Tahsilat disiplini ve müşteri limitleri önemli.")
	} else {
		b = append(b, "Alacak/ciro oranı makul seviyede görünüyor (veri uygunsa).")
	}

	b = append(b, "Öneri: Haftalık 13-hafta nakit projeksiyonu + borç vade haritası çıkarıp tek sayfada izleyelim.")

	limit := maxBullets
	if m.DSCR != nil {
		if *m.DSCR < 1 {
			b = append(b, fmt.Sprintf("Borç servis karşılama oranı 1'in altında (%.2f). Mevcut FAVÖK borç servisini karşılamıyor.", *m.DSCR))
		} else {
			b = append(b, fmt.Sprintf("Borç servis karşılama oranı %.2f. Borç servisi FAVÖK ile karşılanabilir görünüyor.", *m.DSCR))
		}
		limit++
	}

	if len(b) > limit {
		b = b[:limit]
	}
	return b
}
