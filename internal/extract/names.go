package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// codeVarDisplayName turns "basicUsageCode" into "Basic Usage".
func codeVarDisplayName(name string) string {
	name = strings.TrimSuffix(name, "Code")
	name = strings.TrimSpace(upperRe.ReplaceAllString(name, " $1"))
	return titleLetterRuns(name)
}

// titleLetterRuns title-cases every run of letters on its own, so any
// non-letter starts a new word: "my_example" gives "My_Example" and
// "v2beta" gives "V2Beta".
func titleLetterRuns(s string) string {
	// Casers carry state, so each call gets its own.
	caser := cases.Title(language.Und)
	var b strings.Builder
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}
	return b.String()
}

// apiDisplayName turns "buttonGroupApi" into "Button Group". Runs of
// capitals stay together: "qrCodeApi" gives "Qr Code", "APIApi" gives "API".
func apiDisplayName(name string) string {
	name = strings.TrimSuffix(name, "Api")
	name = camelBoundRe.ReplaceAllString(name, "$1 $2")
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
