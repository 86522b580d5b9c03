package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "empty_text_returns_empty_set",
			text:     "",
			expected: nil,
		},
		{
			name:     "all_stopwords_returns_empty_set",
			text:     "this that with have what",
			expected: nil,
		},
		{
			name:     "short_tokens_dropped",
			text:     "how do I fix my dry bob cut",
			expected: nil,
		},
		{
			name:     "punctuation_stripped",
			text:     "Balayage, ombre... or babylights?!",
			expected: []string{"babylights", "balayage", "ombre"},
		},
		{
			name:     "lowercased_and_deduplicated",
			text:     "Keratin KERATIN keratin treatment",
			expected: []string{"keratin", "treatment"},
		},
		{
			name:     "example_query",
			text:     "How do I fix damaged hair naturally?",
			expected: []string{"damaged", "hair", "naturally"},
		},
		{
			name:     "alphanumeric_tokens_kept",
			text:     "is spf50 enough for daily wear",
			expected: []string{"daily", "enough", "spf50", "wear"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			keywords := ExtractKeywords(tc.text)

			assert.Len(t, keywords, len(tc.expected))
			for _, keyword := range tc.expected {
				assert.Contains(t, keywords, keyword)
			}
		})
	}
}

func TestExtractKeywords_LengthBoundary(t *testing.T) {
	// Exactly four characters survives, exactly three does not.
	keywords := ExtractKeywords("wig wigs")
	assert.NotContains(t, keywords, "wig")
	assert.Contains(t, keywords, "wigs")
}
