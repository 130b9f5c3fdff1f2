// Package normalize canonicalizes raw spreadsheet cell text for matching.
//
// Every comparison in the engine goes through Normalize; there is exactly one
// definition. The function is pure and idempotent.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// turkishFold maps Turkish letters to their ASCII equivalents after lowering.
var turkishFold = strings.NewReplacer(
	"ı", "i",
	"ş", "s",
	"ğ", "g",
	"ç", "c",
	"ö", "o",
	"ü", "u",
)

// stripMarks decomposes and drops combining marks (ö → o, â → a).
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// romanPrefixes are row-numbering tokens I–X stripped from label heads.
var romanPrefixes = map[string]bool{
	"i": true, "ii": true, "iii": true, "iv": true, "v": true,
	"vi": true, "vii": true, "viii": true, "ix": true, "x": true,
}

// Normalize lower-cases, folds Turkish letters, strips combining marks,
// collapses non-alphanumeric runs to single spaces and removes leading
// ordinal/letter prefixes ("I.", "A)", "3 "). Empty input yields "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = turkishFold.Replace(s)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	s = nonAlnum.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	tokens := strings.Fields(s)
	for len(tokens) > 0 && isPrefixNoise(tokens[0]) {
		tokens = tokens[1:]
	}
	return strings.Join(tokens, " ")
}

// isPrefixNoise reports whether a leading token is row-numbering noise:
// a Roman numeral I–X, a bare number, or a single letter.
func isPrefixNoise(tok string) bool {
	if romanPrefixes[tok] {
		return true
	}
	if isDigits(tok) {
		return true
	}
	return len(tok) == 1 && tok[0] >= 'a' && tok[0] <= 'z'
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
