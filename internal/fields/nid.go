package fields

import (
	"strings"

	"github.com/joseph-ayodele/idparse/internal/match"
)

// National-ID candidates in priority order: grouped digits, a bare long run,
// then label-anchored forms. The grouped pattern deliberately outranks the
// labels, so "NID: 123 456 7890" resolves by grouping before the NID label
// is ever consulted.
var nidMatchers = []match.Matcher{
	match.NewGroup(`(?i)\b(\d{2,6}(?:\s\d{2,6}){2,5})\b`),
	match.NewGroup(`(?i)\b(\d{10,17})\b`),
	match.NewGroup(`(?i)\bNID[:\s]*(\d[\d\s]+)\b`),
	match.NewGroup(`(?i)\bID[:\s]*(\d[\d\s]+)\b`),
	match.NewGroup(`(?i)\bNational\s+ID[:\s]*(\d[\d\s]+)\b`),
}

// NIDNumber returns the first national-ID-shaped digit run in text, trimmed
// of leading/trailing whitespace. Interior spacing is preserved as-is.
func NIDNumber(text string) (string, bool) {
	v, ok := match.First(text, nidMatchers...)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}
