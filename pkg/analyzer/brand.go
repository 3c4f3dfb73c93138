package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Matcher finds whole-word, case-insensitive occurrences of a set of names.
// Multi-word names tolerate hyphens standing in for spaces ("Acme Analytics"
// matches "acme-analytics"), and a trailing possessive counts as a hit.
type Matcher struct {
	patterns []*regexp.Regexp
}

// NewMatcher compiles patterns for the given names. Blank names are skipped;
// a Matcher with no usable names matches nothing.
func NewMatcher(names ...string) *Matcher {
	patterns := make([]*regexp.Regexp, 0, len(names))
	for _, name := range names {
		if p := wordPattern(name); p != nil {
			patterns = append(patterns, p)
		}
	}
	return &Matcher{patterns: patterns}
}

func wordPattern(name string) *regexp.Regexp {
	words := strings.Fields(strings.TrimSpace(name))
	if len(words) == 0 {
		return nil
	}
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp.QuoteMeta(w)
	}
	p, err := regexp.Compile(`(?i)\b` + strings.Join(escaped, `[\s-]+`) + `(?:['’]s)?\b`)
	if err != nil {
		return nil
	}
	return p
}

// Match reports whether any name occurs in text, and the character offset
// of the first occurrence (-1 when absent).
func (m *Matcher) Match(text string) (bool, int) {
	first := -1
	for _, p := range m.patterns {
		if loc := p.FindStringIndex(text); loc != nil && (first == -1 || loc[0] < first) {
			first = loc[0]
		}
	}
	if first < 0 {
		return false, -1
	}
	return true, utf8.RuneCountInString(text[:first])
}

// Count returns the number of occurrences across all names. Overlapping
// matches from different names ("Acme" inside "Acme Analytics") collapse
// into a single occurrence.
func (m *Matcher) Count(text string) int {
	var spans [][]int
	for _, p := range m.patterns {
		spans = append(spans, p.FindAllStringIndex(text, -1)...)
	}
	if len(spans) == 0 {
		return 0
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i][0] != spans[j][0] {
			return spans[i][0] < spans[j][0]
		}
		return spans[i][1] > spans[j][1]
	})
	count, end := 0, -1
	for _, s := range spans {
		if s[0] >= end {
			count++
			end = s[1]
		} else if s[1] > end {
			end = s[1]
		}
	}
	return count
}
