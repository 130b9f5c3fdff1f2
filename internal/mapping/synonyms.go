package mapping

import "github.com/osmanekinci26/cashguardtr/internal/model"

// synonyms lists the raw spelling variants seen in accountant spreadsheets for
// each canonical key. Entries are normalized at index build time, so diacritics
// and casing here are free. The canonical label and the key string itself are
// appended automatically (some exports carry the key verbatim).
var synonyms = map[model.CanonicalKey][]string{
	model.KeyCashAndEquivalents: {
		"nakit", "kasa", "kasa ve banka", "kasa banka", "bankalar", "banka", "mevduat",
		"vadesiz mevduat", "vadeli mevduat", "hazir degerler",
		"cash", "cash equivalents", "cash and cash equivalents",
		"repo", "ters repo", "para piyasasi fonu", "likit fon",
		"kasa bankalar", "nakit ve nakit benzerleri",
	},
	model.KeyTradeReceivables: {
		"ticari alacaklar", "musteri alacaklari", "alici hesaplari",
		"cekler", "senetli alacaklar", "alacak senetleri",
		"accounts receivable", "trade receivables", "ar",
		"sozlesme varligi", "contract assets",
		"hak edis", "hak edis alacaklari", "hakedis alacagi", "hakediş alacağı",
		"alacaklar (ticari)", "ticari alacak senetleri",
	},
	model.KeyOtherReceivables: {
		"diger alacaklar", "ortaklardan alacaklar", "iliskili taraflardan alacaklar",
		"verilen depozito ve teminatlar", "depozitolar", "teminatlar",
		"other receivables",
		"personelden alacaklar", "kamu alacaklari",
	},
	model.KeyInventories: {
		"stoklar", "ham madde", "yari mamul", "yarimamul", "mamul", "ticari mallar",
		"inventories", "work in progress", "wip",
		"devam eden insaatlar", "devam eden projeler", "proje maliyetleri",
		"insaat maliyetleri", "taahhut maliyetleri",
	},
	model.KeyPrepaidExpenses: {
		"pesin odenmis giderler", "gelecek aylara ait giderler", "gelecek aylara ait gider",
		"prepaid expenses", "advance payments",
		"kira pesin", "sigorta pesin",
	},
	model.KeyOtherCurrentAssets: {
		"diger donen varliklar", "diger cari varliklar",
		"devreden kdv", "indirilecek kdv", "kdv", "kdv alacagi",
		"gelir tahakkuklari", "tahakkuk", "other current assets",
	},
	model.KeyCurrentAssetsTotal: {
		"donen varliklar", "donen varliklar toplami", "toplam donen varliklar",
		"current assets", "current assets total",
		"donen varliklar toplam", "donen varliklar toplamı",
	},
	model.KeyPPE: {
		"maddi duran varliklar", "tesis makine ve cihazlar", "binalar", "arazi ve arsalar",
		"tasitlar", "demirbaslar", "property plant and equipment", "tangible fixed assets",
	},
	model.KeyIntangibleAssets: {
		"maddi olmayan duran varliklar", "haklar", "serefiye", "gelistirme giderleri",
		"intangible assets", "goodwill",
	},
	model.KeyRightOfUseAssets: {
		"kullanim hakki varliklari", "right of use assets", "kiralama konusu varliklar",
	},
	model.KeyInvestmentProperties: {
		"yatirim amacli gayrimenkuller", "investment properties", "yatirim amacli gayrimenkul",
	},
	model.KeyFinancialInvestments: {
		"finansal yatirimlar", "bagli ortakliklar", "istirakler", "financial investments",
		"uzun vadeli finansal yatirimlar",
	},
	model.KeyOtherNonCurrentAssets: {
		"diger duran varliklar", "other non current assets", "gelecek yillara ait giderler",
	},
	model.KeyNonCurrentAssetsTotal: {
		"duran varliklar", "duran varliklar toplami", "toplam duran varliklar",
		"non current assets", "fixed assets total",
	},
	model.KeyTotalAssets: {
		"toplam varliklar", "aktif toplami", "varliklar toplami", "toplam aktifler",
		"total assets", "aktif toplam",
	},
	model.KeyShortTermLiabilities: {
		"kisa vadeli yukumlulukler", "kisa vadeli borclar", "kv yukumlulukler",
		"cari yukumlulukler", "current liabilities", "short term liabilities",
		"kisa vadeli yukumlulukler toplami", "toplam kisa vadeli yukumlulukler",
		"kisa vadeli yabanci kaynaklar", "toplam kisa vadeli yabanci kaynaklar",
	},
	model.KeyLongTermLiabilities: {
		"uzun vadeli yukumlulukler", "uzun vadeli borclar",
		"non current liabilities", "long term liabilities",
		"uzun vadeli yabanci kaynaklar", "toplam uzun vadeli yabanci kaynaklar",
	},
	model.KeyTradePayables: {
		"ticari borclar", "saticilar", "satıcılar",
		"accounts payable", "trade payables", "ap",
		"tedarikci borclari", "tedarikçi borçları",
	},
	model.KeyShortTermFinDebt: {
		"kisa vadeli finansal borclar", "kisa vadeli banka kredileri", "kv kredi",
		"short term debt", "short term loans",
		"kisa vadeli borclanma", "kv finansal borc", "kredi borclari (kisa)",
	},
	model.KeyLongTermFinDebt: {
		"uzun vadeli finansal borclar", "uzun vadeli banka kredileri", "uv kredi",
		"long term debt", "long term loans",
		"uzun vadeli borclanma", "uv finansal borc", "kredi borclari (uzun)",
	},
	model.KeyLeaseLiabilitiesST: {
		"kisa vadeli kiralama yukumlulukleri", "kisa vadeli kiralama islemlerinden borclar",
		"lease liabilities short term",
	},
	model.KeyLeaseLiabilitiesLT: {
		"uzun vadeli kiralama yukumlulukleri", "uzun vadeli kiralama islemlerinden borclar",
		"lease liabilities long term",
	},
	model.KeyTaxLiabilities: {
		"vergi yukumlulukleri", "vergi borclari", "tax payable",
		"kdv borcu", "stopaj borcu", "sgk borcu", "muhtasar",
	},
	model.KeyProvisionsST: {
		"kisa vadeli karsiliklar", "borc ve gider karsiliklari", "short term provisions",
	},
	model.KeyProvisionsLT: {
		"uzun vadeli karsiliklar", "kidem tazminati karsiligi", "long term provisions",
	},
	model.KeyTotalLiabilities: {
		"toplam yukumlulukler", "toplam borclar", "borclar toplami",
		"liabilities total", "total liabilities",
		"yabanci kaynaklar toplami", "toplam yabanci kaynaklar",
	},
	model.KeyEquityTotal: {
		"ozkaynak", "ozkaynaklar", "oz sermaye", "ozsermaye",
		"equity", "total equity",
		"ozkaynaklar toplami", "toplam ozkaynaklar", "ozkaynak toplam",
		"toplam ozsermaye", "ana ortakliga ait ozkaynak",
		"ozkaynaklar toplamı",
	},
	model.KeyPaidInCapital: {
		"odenmis sermaye", "sermaye", "share capital", "paid in capital",
	},
	model.KeyRetainedEarnings: {
		"gecmis yillar kar zararlari", "retained earnings", "yedekler",
		"birikmis karlar", "birikmis zararlar",
	},
	model.KeyNetProfit: {
		"donem net kari", "donem net zarari", "net kar", "net zarar",
		"profit for the period", "net profit",
	},
	model.KeyTotalLiabilitiesAndEquity: {
		"toplam kaynaklar", "kaynaklar toplami", "pasif toplami",
		"total liabilities and equity", "liabilities and equity total",
		"pasif toplam", "toplam pasif",
	},

	model.KeyRevenue: {
		"hasilat", "net satislar", "ciro", "sales", "revenue",
		"satis gelirleri", "net sales",
	},
	model.KeyCOGS: {
		"satislarin maliyeti", "cost of sales", "cogs", "satilan malin maliyeti",
	},
	model.KeyGrossProfit: {
		"brut kar", "gross profit", "brut kar zarar",
	},
	model.KeyOpex: {
		"faaliyet giderleri", "genel yonetim giderleri", "pazarlama satis dagitim giderleri",
		"operating expenses", "opex",
	},
	model.KeyEBITDA: {
		"favok", "favök", "ebitda", "amortisman oncesi faaliyet kari",
	},
	model.KeyEBIT: {
		"faaliyet kari", "esas faaliyet kari", "ebit", "operating profit",
	},
	model.KeyDepreciation: {
		"amortisman", "amortisman giderleri", "amortisman ve itfa paylari",
		"itfa paylari", "depreciation", "depreciation and amortization",
	},
	model.KeyFinanceIncome: {
		"finansman gelirleri", "finansal gelirler", "finance income", "faiz geliri",
	},
	model.KeyFinanceExpense: {
		"finansman giderleri", "financial expenses", "finance expense",
		"finansal giderler", "borclanma giderleri",
	},
	model.KeyInterestExpense: {
		"faiz gideri", "interest expense", "faiz giderleri",
	},
	model.KeyFxGainLoss: {
		"kur farki gelir gider", "kambiyo karlari", "kambiyo zararlari",
		"fx gain loss", "kur farki",
	},
	model.KeyTaxExpense: {
		"vergi gideri", "donem karinin vergi yukumlulugu", "tax expense",
		"surdurulen faaliyetler vergi gideri",
	},
	model.KeyNetProfitIS: {
		"net donem kari", "net donem zarari", "donem kari zarari",
		"net profit for the period",
	},
}
