// Package ocrtext assembles and cleans raw OCR engine output before field
// extraction. Extraction itself consumes text exactly as given; everything
// here is an opt-in pre-step at the input boundary.
package ocrtext

import (
	"regexp"
	"strings"
)

// Join concatenates per-token OCR fragments with single spaces, in the order
// the engine reported them.
func Join(fragments []string) string {
	return strings.Join(fragments, " ")
}

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)

	// "O" misread as a digit inside an otherwise numeric run. Whitespace and
	// date separators survive untouched; identity numbers and dates are the
	// whole point of the text, so this is the only substitution we risk.
	reDigitO = regexp.MustCompile(`(\d)[Oo](\d)`)
)

// Normalize collapses noisy whitespace and fixes common OCR artifacts.
// Conservative: keeps line breaks; collapses >2 newlines into a single blank
// line.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	s = strings.Join(lines, "\n")
	s = reDigitO.ReplaceAllString(s, "${1}0${2}")
	return strings.TrimSpace(s)
}
