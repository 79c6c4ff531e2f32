// Package fields holds the per-field extractors: independent, total
// functions from OCR text to an optional matched value. Every extractor
// evaluates an ordered candidate list where the first pattern to match
// anywhere in the text wins.
package fields

// Options carries the tunables for name extraction. The stoplists and the
// honorific form are configuration rather than package globals so tests can
// inject alternates.
type Options struct {
	// Honorific is the canonical title prefix applied to names detected with
	// an adjacent honorific token.
	Honorific string

	// ContextStoplist rejects uppercase runs sitting before "Date of Birth"
	// that are really UI chrome captured alongside the document.
	ContextStoplist []string

	// Stoplist filters known non-name words out of fallback all-caps
	// candidates.
	Stoplist []string
}

// DefaultOptions returns the stock tables, tuned for identity documents
// photographed or screen-captured inside a browser.
func DefaultOptions() Options {
	return Options{
		Honorific:       "MD.",
		ContextStoplist: []string{"SCREENSHOT", "RECORDER", "CHROME", "EXTENSION"},
		Stoplist: []string{
			"SCREENSHOT", "RECORDER", "CHROME", "EXTENSION", "DEVELOPMENT",
			"INTERVIEW", "COMPANY", "REPOSITORIES", "RESEARCH", "TRANSLATE",
			"FEEDBACK", "OPTIONS", "PEOPLE", "REPUBLIC",
		},
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
