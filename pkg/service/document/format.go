package document

import (
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// badgeSuffix is appended to generated inspector badge codes. Inspectors in
// the current roster have no formal badge number, so the code is derived
// from the name.
const badgeSuffix = "001"

// FormatCurrency renders a monetary value in Brazilian convention:
// thousands separated by "." and two decimals after ",". 1500.5 becomes
// "1.500,50".
func FormatCurrency(v float64) string {
	s := humanize.CommafWithDigits(v, 2)
	// humanize emits US separators; swap them.
	s = strings.ReplaceAll(s, ",", "\x00")
	s = strings.ReplaceAll(s, ".", ",")
	s = strings.ReplaceAll(s, "\x00", ".")
	if !strings.Contains(s, ",") {
		s += ",00"
	}
	if i := strings.IndexByte(s, ','); len(s)-i == 2 {
		s += "0"
	}
	return s
}

// SanitizeFilename derives a download filename from a document number:
// every non-alphanumeric rune becomes "_". The ".pdf" suffix is appended by
// the caller's Document.
func SanitizeFilename(number string) string {
	var b strings.Builder
	for _, r := range number {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// BadgeCode builds the inspector badge shown on documents: the upper-cased
// initial of each name token plus a fixed numeric suffix. "João Silva"
// yields "JS001".
func BadgeCode(inspectorName string) string {
	var b strings.Builder
	for _, token := range strings.Fields(inspectorName) {
		r := []rune(token)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String() + badgeSuffix
}
