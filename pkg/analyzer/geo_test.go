package analyzer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/ent"
	"github.com/specularhq/specular/pkg/analyzer/domainfetch"
)

func TestCitationScore(t *testing.T) {
	assert.Equal(t, 100.0, citationScore("details at https://acme.io/docs", "acme.io"))
	assert.Equal(t, 100.0, citationScore("ACME.IO covers this", "https://acme.io"))
	assert.Equal(t, 40.0, citationScore("see https://example.com/reviews", "acme.io"))
	assert.Equal(t, 40.0, citationScore("see http://example.com", ""))
	assert.Equal(t, 0.0, citationScore("no links at all", "acme.io"))
	assert.Equal(t, 0.0, citationScore("", ""))
}

func TestStructureScore(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected float64
	}{
		{
			name:     "plain prose answers first",
			text:     "Acme is the strongest option for mid-market retail.",
			expected: 40,
		},
		{
			name:     "everything",
			text:     "Acme is the strongest option.\n\n## Why\n1. Accuracy\n2. Price",
			expected: 100,
		},
		{
			name:     "opens with heading",
			text:     "# Top picks\n- Acme\n- Rival",
			expected: 60,
		},
		{
			name:     "bold line counts as heading",
			text:     "**Overview**\nSome detail follows.",
			expected: 30,
		},
		{
			name:     "bullet variants",
			text:     "Options:\n• Acme\n* Rival",
			expected: 70,
		},
		{
			name:     "empty",
			text:     "",
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, structureScore(tc.text))
		})
	}
}

func TestEntityCompleteness(t *testing.T) {
	entities := []*Matcher{NewMatcher("Acme"), NewMatcher("DemandPlanner")}

	assert.Equal(t, 100.0, entityCompleteness("Acme ships DemandPlanner", entities))
	assert.Equal(t, 50.0, entityCompleteness("Acme ships something else", entities))
	assert.Equal(t, 0.0, entityCompleteness("unrelated", entities))
	assert.Equal(t, 0.0, entityCompleteness("anything", nil))
}

func TestTitleEntityMatchers(t *testing.T) {
	t.Run("extracts distinctive terms", func(t *testing.T) {
		corpus := `<html><head><title>Acme Analytics &amp; Retail Forecasting</title></head></html>`
		matchers := titleEntityMatchers(corpus)
		require.Len(t, matchers, 4)

		text := "acme offers retail forecasting analytics"
		for _, m := range matchers {
			ok, _ := m.Match(text)
			assert.True(t, ok)
		}
	})

	t.Run("filters short words and stopwords", func(t *testing.T) {
		corpus := `<title>Best Free Home for You</title>`
		assert.Empty(t, titleEntityMatchers(corpus))
	})

	t.Run("caps the term count", func(t *testing.T) {
		corpus := `<title>Alpha Bravo Charlie Delta Echo Foxtrot Golf</title>`
		assert.Len(t, titleEntityMatchers(corpus), maxTitleEntities)
	})

	t.Run("no title", func(t *testing.T) {
		assert.Nil(t, titleEntityMatchers(`<html><body>bare</body></html>`))
	})
}

func TestAnalyzer_GeoScore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>Acme Analytics Inventory Forecasting Platform</title></head><body>ok</body></html>`)
	}))
	defer server.Close()

	newAnalyzer := func() *Analyzer {
		f := domainfetch.NewFetcher(0)
		f.OverrideForTest(server.Client(), "http")
		return &Analyzer{fetcher: f}
	}

	t.Run("homepage title enriches the entity set", func(t *testing.T) {
		a := newAnalyzer()
		profile := newBrandProfile(&ent.Company{
			Name:        "Acme Analytics",
			Domain:      strings.TrimPrefix(server.URL, "http://"),
			Description: "Retail inventory forecasting.",
		})

		// Entities: the brand name plus five title terms (acme, analytics,
		// inventory, forecasting, platform); the text hits four of six.
		text := "Acme Analytics forecasts inventory demand for retailers."
		score := a.geoScore(context.Background(), text, profile)

		assert.InDelta(t, 0.3*40+0.3*100*4/6, score, 0.001)
	})

	t.Run("unreachable site falls back to profile entities", func(t *testing.T) {
		a := newAnalyzer()
		profile := newBrandProfile(&ent.Company{
			Name:        "Acme Analytics",
			Domain:      "127.0.0.1:1",
			Description: "Retail inventory forecasting.",
		})

		text := "Acme Analytics forecasts inventory demand for retailers."
		score := a.geoScore(context.Background(), text, profile)

		// Structure 40, entities 1/1.
		assert.InDelta(t, 0.3*40+0.3*100, score, 0.001)
	})

	t.Run("no domain skips the fetch", func(t *testing.T) {
		a := newAnalyzer()
		profile := newBrandProfile(&ent.Company{
			Name:        "Acme Analytics",
			Description: "Retail inventory forecasting.",
		})

		score := a.geoScore(context.Background(), "Nothing about the brand.", profile)
		assert.InDelta(t, 0.3*40, score, 0.001)
	})
}
