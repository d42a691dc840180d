package envfile

import (
	"strings"
	"unicode"
)

// FormatAssignment renders KEY=value, double-quoting the value when Parse
// would otherwise read it back differently.
func FormatAssignment(key, value string) string {
	if needsQuotes(value) {
		return key + `="` + value + `"`
	}
	return key + "=" + value
}

func needsQuotes(value string) bool {
	if value == "" || startsWithQuote(value) {
		return true
	}
	return strings.ContainsRune(value, '#') || strings.IndexFunc(value, unicode.IsSpace) >= 0
}

// Generate renders entries as dotenv text, one assignment per line.
func Generate(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(FormatAssignment(e.Key, e.Value))
		b.WriteString("\n")
	}
	return b.String()
}
