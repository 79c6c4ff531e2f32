package fields

import (
	"strings"

	"github.com/joseph-ayodele/idparse/internal/match"
)

// Labeled is a single labeled-pattern lookup: label text plus the expected
// digit-group shape. Document-specific fields do not get the multi-strategy
// cascade the core identity fields do.
type Labeled struct {
	m match.Matcher
}

func NewLabeled(expr string) *Labeled {
	return &Labeled{m: match.NewGroup(expr)}
}

func (l *Labeled) Extract(text string) (string, bool) {
	v, ok := l.m.Match(text)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// BO (beneficiary owner) account numbers appear on brokerage statements as
// an 8-18 digit run after a "BO", "BO ID" or "BO A/C" label.
var boAccount = NewLabeled(`(?i)\bBO(?:\s*(?:ID|A/?C|Account))?(?:\s*(?:No|Number))?\.?[:\s]*(\d(?:\s?\d){7,17})\b`)

// BOAccountNumber returns the first BO-account-shaped match in text.
func BOAccountNumber(text string) (string, bool) {
	return boAccount.Extract(text)
}

// e-TIN certificates carry a 9-12 digit taxpayer identification number after
// a "TIN" or "e-TIN" label.
var tin = NewLabeled(`(?i)\b(?:e[-\s]?)?TIN(?:\s*(?:No|Number))?\.?[:\s]*(\d(?:\s?\d){8,11})\b`)

// TINNumber returns the first taxpayer-identification match in text.
func TINNumber(text string) (string, bool) {
	return tin.Extract(text)
}
