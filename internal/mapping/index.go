package mapping

import (
	"sort"
	"strings"

	"github.com/osmanekinci26/cashguardtr/internal/model"
	"github.com/osmanekinci26/cashguardtr/internal/normalize"
)

// Index is the normalized synonym index. Built once, never mutated afterwards,
// safe for concurrent readers.
type Index struct {
	termToKey map[string]model.CanonicalKey
	terms     []string // every normalized term
	byLenDesc []string // terms sorted longest first (substring tier order)
}

// NewIndex builds the index from the static synonym dictionary. Each key also
// indexes its canonical label and its own key string.
func NewIndex() *Index {
	idx := &Index{
		termToKey: make(map[string]model.CanonicalKey),
	}

	// Deterministic key order so duplicate terms resolve stably.
	keys := make([]model.CanonicalKey, 0, len(synonyms))
	for k := range synonyms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		variants := append([]string{}, synonyms[key]...)
		variants = append(variants, key.Label(), string(key))
		for _, v := range variants {
			term := normalize.Normalize(v)
			if term == "" {
				continue
			}
			if _, seen := idx.termToKey[term]; seen {
				continue
			}
			idx.termToKey[term] = key
			idx.terms = append(idx.terms, term)
		}
	}

	idx.byLenDesc = append([]string{}, idx.terms...)
	sort.Slice(idx.byLenDesc, func(i, j int) bool {
		a, b := idx.byLenDesc[i], idx.byLenDesc[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	return idx
}

// Lookup returns the key registered for an exactly normalized term.
func (idx *Index) Lookup(term string) (model.CanonicalKey, bool) {
	key, ok := idx.termToKey[term]
	return key, ok
}

// genericStopwords are terms too generic to drive a substring match on their own.
var genericStopwords = map[string]bool{
	"toplam": true, "diger": true, "genel": true, "varliklar": true,
	"borclar": true, "kaynaklar": true, "tutar": true, "tl": true, "try": true,
	"bilanco": true, "gelir": true, "tablosu": true, "kalem": true,
}

// isGenericTerm reports whether a term consists solely of generic stopwords.
func isGenericTerm(term string) bool {
	toks := strings.Fields(term)
	if len(toks) == 0 {
		return true
	}
	for _, t := range toks {
		if !genericStopwords[t] {
			return false
		}
	}
	return true
}
