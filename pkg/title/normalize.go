// Package title normalizes movie titles and scores how closely two titles match.
package title

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Roman numerals II-IX after a space. Standalone "I" and "X" are left alone
// ("I, Robot", "American History X"), as is a numeral opening the title.
var romanNumeralRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"ii": "2", "iii": "3", "iv": "4", "v": "5",
	"vi": "6", "vii": "7", "viii": "8", "ix": "9",
}

var leadingArticles = []string{"the ", "a ", "an "}

// punctuationReplacer runs before articles are stripped so "Spider-Man" and
// "Spider Man" clean to the same string.
var punctuationReplacer = strings.NewReplacer(
	"&", " and ",
	"-", " ",
	"'", "",
	".", " ",
)

// Clean normalizes a title for comparison: lowercase, Arabic sequel numbers,
// no accents, no leading articles, letters/digits/spaces only.
func Clean(s string) string {
	s = strings.ToLower(s)
	s = replaceRomanNumerals(s)
	s = foldAccents(s)
	s = punctuationReplacer.Replace(s)

	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripArticle(part)
	}
	s = strings.Join(parts, " ")

	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

func replaceRomanNumerals(s string) string {
	return romanNumeralRegex.ReplaceAllStringFunc(s, func(match string) string {
		if arabic, ok := romanToArabic[strings.ToLower(strings.TrimSpace(match))]; ok {
			return " " + arabic
		}
		return match
	})
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func stripArticle(s string) string {
	s = strings.TrimSpace(s)
	for _, art := range leadingArticles {
		if rest, ok := strings.CutPrefix(s, art); ok {
			return rest
		}
	}
	return s
}
