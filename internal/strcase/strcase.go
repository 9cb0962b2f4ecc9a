package strcase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitle turns a snake_case name into TitleCase: underscores are dropped and
// every word is title-cased, so "vehicle_type" becomes "VehicleType". Inner
// capitals are kept: "paymentMethod" becomes "PaymentMethod".
func ToTitle(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_'
	})
	caser := cases.Title(language.English, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(caser.String(w))
	}
	return b.String()
}

// CommonPrefix returns the longest case-sensitive prefix shared by all names,
// compared rune by rune.
func CommonPrefix(names ...string) string {
	if len(names) == 0 {
		return ""
	}
	prefix := []rune(names[0])
	for _, name := range names[1:] {
		runes := []rune(name)
		n := min(len(prefix), len(runes))
		i := 0
		for i < n && prefix[i] == runes[i] {
			i++
		}
		prefix = prefix[:i]
		if len(prefix) == 0 {
			break
		}
	}
	return string(prefix)
}
