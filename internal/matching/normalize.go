// Package matching provides the name normalization used for every
// cross-aggregate comparison. The pantry, catalog, shopping list, cook
// engine, and buy matching all key on NormalizeName; using anything
// else makes lookups silently miss.
package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName lowers, trims, and singularizes an ingredient or recipe
// name into a matching key. The plural handling is a small heuristic,
// not a stemmer: it covers the common English patterns and accepts the
// odd false positive ("molasses" -> "molass").
func NormalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.HasSuffix(n, "ies") && len(n) > 3:
		n = n[:len(n)-3] + "y" // candies -> candy
	case strings.HasSuffix(n, "oes") && len(n) > 3:
		n = n[:len(n)-3] + "o" // tomatoes -> tomato
	case strings.HasSuffix(n, "ses") && len(n) > 3:
		n = n[:len(n)-2] // classes -> class, buses -> bus
	case strings.HasSuffix(n, "es") && len(n) > 2 && !isVowel(n[len(n)-3]):
		n = n[:len(n)-2] // boxes -> box, dishes -> dish
	case strings.HasSuffix(n, "s") && !strings.HasSuffix(n, "ss") && len(n) > 1:
		n = n[:len(n)-1]
	}
	return n
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// SearchKey folds a display name for user-facing search: lowercase plus
// diacritics removed (NFD, strip combining marks). This is deliberately
// NOT the matching key; stock lookups stay byte-exact on NormalizeName.
func SearchKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
