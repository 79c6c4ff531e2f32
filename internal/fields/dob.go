package fields

import (
	"github.com/joseph-ayodele/idparse/internal/match"
)

// Date candidates in priority order: numeric day-first, numeric year-first,
// then the two month-name layouts. Month names are matched case-insensitively.
var dobMatchers = []match.Matcher{
	match.NewPattern(`(?i)\b(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})\b`),
	match.NewPattern(`(?i)\b(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})\b`),
	match.NewPattern(`(?i)\b(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+(\d{2,4})\b`),
	match.NewPattern(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+(\d{1,2}),?\s+(\d{2,4})\b`),
}

// DateOfBirth returns the first date-shaped substring of text. No semantic
// validation is applied: "32/13/2099" is accepted verbatim.
func DateOfBirth(text string) (string, bool) {
	return match.First(text, dobMatchers...)
}
