package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	// Letters with no canonical decomposition, folded to their usual Latin spelling.
	foldLetters = strings.NewReplacer(
		"ß", "ss",
		"æ", "ae",
		"œ", "oe",
		"ø", "o",
		"ł", "l",
		"đ", "d",
		"ð", "d",
		"þ", "th",
		"ı", "i",
	)

	connectorDe = regexp.MustCompile(`\bde\b`)
)

// Normalize turns a material name into its catalog key: lower case, no
// accents, no standalone "de", hyphens as spaces, single spaces.
// "Couro-de-Jacaré" and "couro jacare" share the key "couro jacare".
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	s := foldAccents(strings.ToLower(raw))
	s = connectorDe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

func foldAccents(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return foldLetters.Replace(out)
}
