// Package mapping resolves free-text line-item labels to canonical keys.
//
// Matching runs three tiers in fixed precedence: exact, guarded substring,
// fuzzy similarity. Each tier is an independent strategy with the same
// contract, so reordering or adding one is a local change.
package mapping

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/osmanekinci26/cashguardtr/internal/model"
	"github.com/osmanekinci26/cashguardtr/internal/normalize"
)

const (
	// minSubstringTermLen guards the substring tier against short, accidental
	// containments. Historical variants used 6 and 8; 9 is the defensive choice.
	minSubstringTermLen = 9

	// fuzzyThreshold is the minimum SequenceMatcher ratio (percent) accepted.
	fuzzyThreshold = 86
)

// bareAggregatePhrases are section headers that legitimately stand for a total
// without carrying the word "toplam".
var bareAggregatePhrases = map[string]bool{
	"donen varliklar":               true,
	"duran varliklar":               true,
	"kisa vadeli yukumlulukler":     true,
	"uzun vadeli yukumlulukler":     true,
	"kisa vadeli borclar":           true,
	"uzun vadeli borclar":           true,
	"kv yukumlulukler":              true,
	"cari yukumlulukler":            true,
	"kisa vadeli yabanci kaynaklar": true,
	"uzun vadeli yabanci kaynaklar": true,
	"ozkaynak":                      true,
	"ozkaynaklar":                   true,
	"oz sermaye":                    true,
	"ozsermaye":                     true,
	"ana ortakliga ait ozkaynak":    true,
	"aktif":                         true,
	"pasif":                         true,
	"current assets":                true,
	"non current assets":            true,
	"current liabilities":           true,
	"short term liabilities":        true,
	"long term liabilities":         true,
	"non current liabilities":       true,
	"equity":                        true,
	"liabilities and equity":        true,
}

// strategy tries to resolve one normalized label. Uniform contract across tiers.
type strategy func(normalized string) (model.CanonicalKey, bool)

// Mapper maps raw labels to canonical keys over an immutable synonym index.
type Mapper struct {
	idx        *Index
	strategies []strategy
}

// NewMapper creates a mapper bound to idx. Tier order is fixed: exact,
// guarded substring, fuzzy.
func NewMapper(idx *Index) *Mapper {
	m := &Mapper{idx: idx}
	m.strategies = []strategy{
		m.matchExact,
		m.matchSubstring,
		m.matchFuzzy,
	}
	return m
}

// MapLabel resolves a raw spreadsheet label. The second return is false when
// no tier produced a key; callers treat that as diagnostic, not fatal.
func (m *Mapper) MapLabel(raw string) (model.CanonicalKey, bool) {
	n := normalize.Normalize(raw)
	if n == "" {
		return "", false
	}
	for _, try := range m.strategies {
		if key, ok := try(n); ok {
			return key, ok
		}
	}
	return "", false
}

func (m *Mapper) matchExact(n string) (model.CanonicalKey, bool) {
	key, ok := m.idx.Lookup(n)
	if !ok {
		return "", false
	}
	if !totalGuardOK(key, n) {
		return "", false
	}
	return key, true
}

// matchSubstring scans index terms longest first and accepts the first term
// contained in the label on word boundaries. Short and purely generic terms
// are skipped; they produce false positives, not matches.
func (m *Mapper) matchSubstring(n string) (model.CanonicalKey, bool) {
	padded := " " + n + " "
	for _, term := range m.idx.byLenDesc {
		if len(term) < minSubstringTermLen {
			break // sorted by length, nothing longer follows
		}
		if isGenericTerm(term) {
			continue
		}
		if !strings.Contains(padded, " "+term+" ") {
			continue
		}
		key := m.idx.termToKey[term]
		if !totalGuardOK(key, n) {
			continue
		}
		return key, true
	}
	return "", false
}

// matchFuzzy accepts the best similarity candidate at or above the threshold.
func (m *Mapper) matchFuzzy(n string) (model.CanonicalKey, bool) {
	bestTerm := ""
	bestScore := 0
	for _, term := range m.idx.terms {
		score := fuzzy.Ratio(n, term)
		if score > bestScore {
			bestScore = score
			bestTerm = term
		}
	}
	if bestScore < fuzzyThreshold {
		return "", false
	}
	key := m.idx.termToKey[bestTerm]
	if !totalGuardOK(key, n) {
		return "", false
	}
	return key, true
}

// totalGuardOK rejects aggregate-total keys for rows that are not structurally
// total lines. Guards the "diğer dönen varlıklar" class of false positive.
func totalGuardOK(key model.CanonicalKey, n string) bool {
	if !key.IsAggregate() {
		return true
	}
	return looksLikeTotalRow(n)
}

func looksLikeTotalRow(n string) bool {
	if strings.Contains(n, "toplam") || strings.Contains(n, "total") {
		return true
	}
	return bareAggregatePhrases[n]
}
