package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_Match(t *testing.T) {
	testCases := []struct {
		name     string
		names    []string
		text     string
		found    bool
		position int
	}{
		{
			name:     "exact match at start",
			names:    []string{"Acme"},
			text:     "Acme is a solid pick",
			found:    true,
			position: 0,
		},
		{
			name:     "case insensitive",
			names:    []string{"Acme"},
			text:     "try ACME today",
			found:    true,
			position: 4,
		},
		{
			name:     "hyphen joins multi-word name",
			names:    []string{"Acme Analytics"},
			text:     "I use acme-analytics daily",
			found:    true,
			position: 6,
		},
		{
			name:     "possessive counts",
			names:    []string{"Acme"},
			text:     "Acme's dashboards are fast",
			found:    true,
			position: 0,
		},
		{
			name:     "curly possessive counts",
			names:    []string{"Acme"},
			text:     "Acme’s pricing is public",
			found:    true,
			position: 0,
		},
		{
			name:     "no substring match",
			names:    []string{"Acme"},
			text:     "Acmeify is a different product",
			found:    false,
			position: -1,
		},
		{
			name:     "earliest name wins",
			names:    []string{"Acme", "Zenith"},
			text:     "Zenith beats Acme here",
			found:    true,
			position: 0,
		},
		{
			name:     "position counts runes not bytes",
			names:    []string{"Acme"},
			text:     "café Acme",
			found:    true,
			position: 5,
		},
		{
			name:     "absent",
			names:    []string{"Acme"},
			text:     "nothing relevant here",
			found:    false,
			position: -1,
		},
		{
			name:     "blank names match nothing",
			names:    []string{"  "},
			text:     "anything",
			found:    false,
			position: -1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			found, position := NewMatcher(tc.names...).Match(tc.text)
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.position, position)
		})
	}
}

func TestMatcher_Count(t *testing.T) {
	m := NewMatcher("Acme")

	assert.Equal(t, 3, m.Count("Acme, then acme again, then Acme's"))
	assert.Equal(t, 0, m.Count("Acmeify only"))
	assert.Equal(t, 0, m.Count(""))

	multi := NewMatcher("Acme Analytics")
	assert.Equal(t, 2, multi.Count("Acme Analytics and acme-analytics"))
}

func TestMatcher_Count_OverlappingNames(t *testing.T) {
	// An alias containing the brand name counts each mention once.
	m := NewMatcher("Acme", "Acme Analytics")

	assert.Equal(t, 1, m.Count("Acme Analytics ships fast"))
	assert.Equal(t, 2, m.Count("Acme Analytics beats plain Acme"))
	assert.Equal(t, 1, m.Count("just Acme"))
}
