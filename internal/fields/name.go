package fields

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/idparse/internal/match"
)

var (
	// The honorific anchor stops before known trailing noise: the
	// date-of-birth phrase, its usual OCR misreads ("Data", "0t", "ara",
	// "@ue"), or a digit. That needs a lookahead, which the stdlib engine
	// cannot express, hence the lookaround matcher.
	reHonorific = match.NewLookaround(`MD:\s*([A-Z][A-Z]+(?:\s+[A-Z]+)*?)(?=\s+(?:Data|Date|of|Birth|0t|ara|@ue|\d|$))`)

	reNameLabel  = regexp.MustCompile(`Name[:\s]+((?:MD[\.,\-]?\s*)?(?:[A-Z][A-Z]+(?:\s+|\.|$))+)`)
	reDOBContext = regexp.MustCompile(`([A-Z][A-Z]+(?:\s+[A-Z]+)*)\s+(?:Data|Date)\s+of\s+Birth`)
	reAllCapsRun = regexp.MustCompile(`(MD[\.,-]?\s*)?([A-Z]{2,}(?:\s+[A-Z]{2,})*)`)

	reHonorificTok = regexp.MustCompile(`^MD[\.,-]?$`)
	reUpperTok     = regexp.MustCompile(`^[A-Z]+$`)
)

// NameExtractor pulls a personal name out of unordered, noisy OCR text. It
// is a cascade of increasingly permissive heuristics, tried in order with
// first success winning:
//
//  1. honorific anchor ("MD:" + capitalized words, noise lookahead)
//  2. "Name" label + uppercase words
//  3. capitalized run immediately before the date-of-birth phrase
//  4. longest all-caps run anywhere, stoplist-filtered
//
// The stoplists exist because screen captures routinely include browser and
// tool chrome text next to the document itself.
type NameExtractor struct {
	opts            Options
	contextStoplist map[string]struct{}
	stoplist        map[string]struct{}
}

// NewNameExtractor fills any zero Options entries from DefaultOptions.
func NewNameExtractor(opts Options) *NameExtractor {
	def := DefaultOptions()
	if opts.Honorific == "" {
		opts.Honorific = def.Honorific
	}
	if opts.ContextStoplist == nil {
		opts.ContextStoplist = def.ContextStoplist
	}
	if opts.Stoplist == nil {
		opts.Stoplist = def.Stoplist
	}
	return &NameExtractor{
		opts:            opts,
		contextStoplist: toSet(opts.ContextStoplist),
		stoplist:        toSet(opts.Stoplist),
	}
}

// Extract returns the first heuristic hit, or absence if all four miss.
func (e *NameExtractor) Extract(text string) (string, bool) {
	return match.First(text,
		match.Func(e.honorificAnchored),
		match.Func(e.labelAnchored),
		match.Func(e.contextAnchored),
		match.Func(e.fallback),
	)
}

func (e *NameExtractor) honorificAnchored(text string) (string, bool) {
	name, ok := reHonorific.Match(text)
	if !ok {
		return "", false
	}
	parts := strings.Fields(strings.TrimSpace(name))
	// OCR sometimes glues a stray single letter onto the tail.
	if len(parts) > 1 && len(parts[len(parts)-1]) == 1 {
		parts = parts[:len(parts)-1]
	}
	return "MD: " + strings.Join(parts, " "), true
}

func (e *NameExtractor) labelAnchored(text string) (string, bool) {
	m := reNameLabel.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	// Keep honorific tokens (canonicalized) and all-uppercase words; drop
	// anything else the label regex swept up.
	var kept []string
	for _, w := range strings.Fields(m[1]) {
		switch {
		case reHonorificTok.MatchString(w):
			kept = append(kept, e.opts.Honorific)
		case reUpperTok.MatchString(w):
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return "", false
	}
	return strings.Join(kept, " "), true
}

func (e *NameExtractor) contextAnchored(text string) (string, bool) {
	m := reDOBContext.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	words := strings.Fields(name)
	if len(words) > 3 {
		return "", false
	}
	for _, w := range words {
		if _, noise := e.contextStoplist[w]; noise {
			return "", false
		}
	}
	return name, true
}

func (e *NameExtractor) fallback(text string) (string, bool) {
	var (
		found      bool
		best       string
		bestRank   int
		bestPrefix bool
	)
	for _, m := range reAllCapsRun.FindAllStringSubmatch(text, -1) {
		prefix, run := m[1], m[2]
		var kept []string
		for _, w := range strings.Fields(run) {
			if _, noise := e.stoplist[w]; !noise {
				kept = append(kept, w)
			}
		}
		if len(kept) == 0 {
			continue
		}
		candidate := strings.Join(kept, " ")
		rank := len(strings.TrimSpace(prefix + candidate))
		if !found || rank > bestRank {
			found = true
			best = candidate
			bestRank = rank
			bestPrefix = strings.TrimSpace(prefix) != ""
		}
	}
	if !found {
		return "", false
	}
	if bestPrefix {
		return e.opts.Honorific + " " + best, true
	}
	return best, true
}
