package analyzer

import (
	"context"
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/specularhq/specular/pkg/analyzer/domainfetch"
)

// Generative-engine optimization: how likely a response is to surface well in
// AI-generated answers, from citation presence, structural quality, and
// entity completeness.
const (
	citationWeight  = 0.4
	structureWeight = 0.3
	entityWeight    = 0.3
)

var (
	headingPattern = regexp.MustCompile(`(?m)^(?:#{1,6} +\S|\*\*[^*\n]+\*\*)`)
	listPattern    = regexp.MustCompile(`(?m)^[ \t]*(?:[-*•]|\d+[.)]) +\S`)
	urlPattern     = regexp.MustCompile(`https?://[^\s)>"']+`)
	titlePattern   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
)

// geoScore blends the three signals for one response. The homepage corpus,
// when reachable, contributes extra entities from the site's own title.
func (a *Analyzer) geoScore(ctx context.Context, text string, profile *brandProfile) float64 {
	entities := profile.entities
	if profile.domain != "" {
		if corpus, ok := a.fetcher.Fetch(ctx, profile.domain); ok {
			entities = append(append([]*Matcher(nil), entities...), titleEntityMatchers(corpus)...)
		}
	}

	score := citationWeight*citationScore(text, profile.domain) +
		structureWeight*structureScore(text) +
		entityWeight*entityCompleteness(text, entities)
	return score
}

// citationScore is 100 when the answer cites the brand's own domain, 40 when
// it links anywhere at all, 0 for an unsourced answer.
func citationScore(text, domain string) float64 {
	if host := domainfetch.NormalizeHost(domain); host != "" && strings.Contains(strings.ToLower(text), host) {
		return 100
	}
	if urlPattern.MatchString(text) {
		return 40
	}
	return 0
}

// structureScore rewards the formatting generative engines quote from:
// headings, lists, and an answer-first opening line.
func structureScore(text string) float64 {
	score := 0.0
	if headingPattern.MatchString(text) {
		score += 30
	}
	if listPattern.MatchString(text) {
		score += 30
	}
	if answersFirst(text) {
		score += 40
	}
	return score
}

// answersFirst reports whether the response opens with direct prose rather
// than a heading or list item.
func answersFirst(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return !headingPattern.MatchString(line) && !listPattern.MatchString(line)
	}
	return false
}

// entityCompleteness is the percentage of brand entities the answer mentions.
func entityCompleteness(text string, entities []*Matcher) float64 {
	if len(entities) == 0 {
		return 0
	}
	found := 0
	for _, m := range entities {
		if ok, _ := m.Match(text); ok {
			found++
		}
	}
	return 100 * float64(found) / float64(len(entities))
}

// titleEntityMatchers pulls distinctive terms from the homepage <title> so
// completeness can reward answers that echo the site's own vocabulary.
func titleEntityMatchers(corpus string) []*Matcher {
	sub := titlePattern.FindStringSubmatch(corpus)
	if sub == nil {
		return nil
	}
	title := html.UnescapeString(sub[1])

	words := strings.FieldsFunc(title, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	seen := make(map[string]struct{})
	matchers := make([]*Matcher, 0, maxTitleEntities)
	for _, w := range words {
		key := strings.ToLower(w)
		if len(key) < 4 || titleStopwords[key] {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		matchers = append(matchers, NewMatcher(w))
		if len(matchers) == maxTitleEntities {
			break
		}
	}
	return matchers
}

const maxTitleEntities = 5

// titleStopwords are filler words common in homepage titles.
var titleStopwords = map[string]bool{
	"home": true, "official": true, "website": true, "welcome": true,
	"with": true, "your": true, "that": true, "this": true, "from": true,
	"best": true, "free": true, "more": true,
}
