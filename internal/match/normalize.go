package match

import (
	"strings"
	"unicode"
)

// Normalize folds a C++ name for fuzzy comparison: scope separators,
// underscores, destructor tildes and case are dropped, so "QtCore::QString"
// and "qtcore_qstring" compare equal.
func Normalize(name string) string {
	return strings.Join(Tokens(name), "")
}

// Tokens splits a C++ name at scope separators, underscores and camel
// case boundaries and lowercases the parts. "QXmlStreamReader::readNext"
// gives [q xml stream reader read next].
func Tokens(name string) []string {
	var (
		tokens  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current = append(current, r)
	}

	flush()

	return tokens
}

// startsToken reports a camel case boundary before runes[i]: a lower to
// upper transition, or the last capital of an acronym followed by a
// lowercase letter ("XMLParser" splits before 'P').
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return unicode.IsLetter(prev) || unicode.IsDigit(prev)
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
