package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Best CRM for startups?", "best crm for startups?"},
		{"  padded  ", "padded"},
		{"\tTabs And Newlines\n", "tabs and newlines"},
		{"already lower", "already lower"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, NormalizeText(tc.input))
	}
}

func TestRound2(t *testing.T) {
	testCases := []struct {
		input    float64
		expected float64
	}{
		{61.4549, 61.45},
		{12.345678, 12.35},
		{100, 100},
		{0, 0},
		{-0.333, -0.33},
	}

	for _, tc := range testCases {
		assert.InDelta(t, tc.expected, Round2(tc.input), 1e-9)
	}
}
