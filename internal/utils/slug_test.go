package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "Accents folded",
			title:    "Tamales Oaxaqueños",
			expected: "tamales-oaxaquenos",
		},
		{
			name:     "Punctuation collapses to single hyphens",
			title:    "Pastel  de  3 leches!!",
			expected: "pastel-de-3-leches",
		},
		{
			name:     "Leading and trailing separators trimmed",
			title:    " ¡Café recién tostado! ",
			expected: "cafe-recien-tostado",
		},
		{
			name:     "Already clean title untouched",
			title:    "empanadas-argentinas",
			expected: "empanadas-argentinas",
		},
		{
			name:     "Empty title stays empty",
			title:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.title))
		})
	}
}
