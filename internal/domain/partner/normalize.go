package partner

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// CollapseWhitespace folds every whitespace run into a single space and trims both ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeName produces the stored display form of a person or company name:
// NFC composed, whitespace collapsed, and each word title-cased on its first
// rune and lower-cased on the rest ("  john   o'NEIL " -> "John O'neil").
// Title-casing may lengthen a word ("ß" -> "Ss"), so length rules apply to the result.
func NormalizeName(raw string) string {
	words := strings.Fields(norm.NFC.String(raw))
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	// Casers keep state between calls and are not safe to share.
	title := cases.Title(language.Und, cases.NoLower)
	lower := cases.Lower(language.Und)
	return title.String(string(r)) + lower.String(w[size:])
}

// NormalizeReference trims and upper-cases a customer reference.
func NormalizeReference(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizeText trims free text and composes it to NFC.
func NormalizeText(raw string) string {
	return norm.NFC.String(strings.TrimSpace(raw))
}
