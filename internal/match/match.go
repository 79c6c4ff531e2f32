// Package match provides the ordered first-match-wins pattern cascade the
// field extractors are built from.
package match

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// Matcher reports the first occurrence of its pattern in text.
type Matcher interface {
	Match(text string) (string, bool)
}

// First runs matchers in declared priority order and returns the first hit.
// Later matchers, and later matches of the same pattern, are never consulted
// once a hit occurs.
func First(text string, matchers ...Matcher) (string, bool) {
	for _, m := range matchers {
		if v, ok := m.Match(text); ok {
			return v, true
		}
	}
	return "", false
}

// Pattern yields the full text of the first regexp hit.
type Pattern struct {
	re *regexp.Regexp
}

func NewPattern(expr string) *Pattern {
	return &Pattern{re: regexp.MustCompile(expr)}
}

func (p *Pattern) Match(text string) (string, bool) {
	loc := p.re.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:loc[1]], true
}

// Group yields the first capture group of the first regexp hit.
type Group struct {
	re *regexp.Regexp
}

func NewGroup(expr string) *Group {
	return &Group{re: regexp.MustCompile(expr)}
}

func (g *Group) Match(text string) (string, bool) {
	m := g.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Lookaround yields the first capture group of a regexp2 hit. The stdlib
// engine cannot express lookahead, which the honorific-anchored name pattern
// depends on.
type Lookaround struct {
	re *regexp2.Regexp
}

func NewLookaround(expr string) *Lookaround {
	return &Lookaround{re: regexp2.MustCompile(expr, regexp2.None)}
}

func (l *Lookaround) Match(text string) (string, bool) {
	m, err := l.re.FindStringMatch(text)
	if err != nil || m == nil {
		return "", false
	}
	if g := m.GroupByNumber(1); g != nil && len(g.Captures) > 0 {
		return g.String(), true
	}
	return m.String(), true
}

// Func adapts a plain function into a Matcher.
type Func func(text string) (string, bool)

func (f Func) Match(text string) (string, bool) { return f(text) }
