// Package slug derives ASCII URL slugs from arbitrary Unicode titles.
//
// Slugs identify articles and library publications in URLs. Cyrillic input is
// transliterated to Latin first, then normalized and hyphenated. The result is
// a pure function of the input: equal titles always produce equal slugs, and
// no uniqueness check is performed here.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// translit maps Cyrillic letters to their Latin transliteration.
// Ukrainian letters follow the official КМУ 2010 romanization table;
// the few Russian-only letters are included so mixed input degrades sanely.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g", 'д': "d",
	'е': "e", 'є': "ie", 'ж': "zh", 'з': "z", 'и': "y", 'і': "i",
	'ї': "i", 'й': "i", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ь': "", 'ю': "iu", 'я': "ia",
	'ё': "e", 'ъ': "", 'ы': "y", 'э': "e",
}

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// The pipeline: transliterate Cyrillic to Latin, decompose accented
// characters and strip combining marks, lowercase, replace everything that is
// not a letter or digit with a hyphen, collapse hyphen runs and trim.
func From(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := translit[unicode.ToLower(r)]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, b.String())

	result = strings.ToLower(result)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
