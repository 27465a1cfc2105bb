package sheet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// keyTransformer strips combining marks after NFKD decomposition, so
// accented and unaccented spellings normalize to the same key.
var keyTransformer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeKey normalizes a header cell to its lookup key: diacritics
// stripped, whitespace collapsed, upper-cased. It is idempotent.
func NormalizeKey(s string) string {
	out, _, err := transform.String(keyTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(strings.Join(strings.Fields(out), " "))
}
