package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds case and diacritics and strips everything but
// letters and digits, producing the comparison key used for catalog
// matching. "Kálium", "KALIUM" and "kalium" all normalize to the same
// key. The function is total and idempotent.
//
// Both sides of every fuzzy comparison must go through Normalize;
// comparing a normalized key against raw text is a bug.
func Normalize(s string) string {
	// NFD, drop combining marks, recompose. Transformers carry state,
	// so build the chain per call rather than sharing one.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))

	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}
