package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityScore(t *testing.T) {
	cases := []struct {
		name          string
		queryText     string
		candidateText string
		expected      float64
	}{
		{
			name:          "identical_text_scores_one",
			queryText:     "How do I fix damaged hair naturally?",
			candidateText: "How do I fix damaged hair naturally?",
			expected:      1.0,
		},
		{
			name:          "no_keyword_overlap_scores_length_only",
			queryText:     "damaged hair",
			candidateText: "nail designs",
			// keywordScore = 0, lengthScore = 1 (equal lengths)
			expected: 0.3,
		},
		{
			name:          "partial_keyword_overlap",
			queryText:     "damaged hair naturally",
			candidateText: "my damaged hair needs a trim",
			// 2 of 3 keywords contained; lengths 22 vs 28
			expected: 0.7*(2.0/3.0) + 0.3*(1.0-6.0/28.0),
		},
		{
			name:          "compound_word_substring_match",
			queryText:     "hair care",
			candidateText: "haircare routines",
			// "hair" and "care" both match inside "haircare"
			expected: 0.7 + 0.3*(1.0-8.0/17.0),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := SimilarityScore(tc.queryText, tc.candidateText, ExtractKeywords(tc.queryText))
			assert.InDelta(t, tc.expected, score, 0.0001)
		})
	}
}

func TestSimilarityScore_Bounds(t *testing.T) {
	queries := []string{
		"",
		"hair",
		"How do I fix damaged hair naturally?",
		strings.Repeat("balayage keratin ", 50),
	}
	candidates := []string{
		"",
		"What nail design matches my outfit?",
		"I fixed my damaged hair using natural oils and a trim",
		strings.Repeat("x", 2000),
	}

	for _, query := range queries {
		keywords := ExtractKeywords(query)
		for _, candidate := range candidates {
			score := SimilarityScore(query, candidate, keywords)
			assert.GreaterOrEqual(t, score, 0.0, "query %q candidate %q", query, candidate)
			assert.LessOrEqual(t, score, 1.0, "query %q candidate %q", query, candidate)
		}
	}
}

func TestSimilarityScore_EmptyKeywordSet(t *testing.T) {
	// Guarding the keyword denominator: no keywords means keywordScore 0,
	// not a division by zero.
	score := SimilarityScore("my bob", "my bob", ExtractKeywords("my bob"))
	assert.InDelta(t, 0.3, score, 0.0001)
}

func TestMatchTopics(t *testing.T) {
	cases := []struct {
		name          string
		queryText     string
		candidateText string
		candidateTags []string
		expected      []string
	}{
		{
			name:          "no_overlap_returns_empty",
			queryText:     "damaged hair naturally",
			candidateText: "What nail design matches my outfit?",
			expected:      nil,
		},
		{
			name:          "keywords_present_in_candidate",
			queryText:     "damaged hair naturally",
			candidateText: "I fixed my damaged hair using natural oils",
			expected:      []string{"damaged", "hair"},
		},
		{
			name:          "tags_counted_when_present_in_text",
			queryText:     "routine",
			candidateText: "my morning skincare routine for oily skin",
			candidateTags: []string{"skincare", "makeup"},
			expected:      []string{"routine", "skincare"},
		},
		{
			name:          "capped_at_three",
			queryText:     "keratin balayage ombre babylights",
			candidateText: "keratin balayage ombre babylights compared",
			expected:      []string{"babylights", "balayage", "keratin"},
		},
		{
			name:          "duplicate_tag_and_keyword_deduplicated",
			queryText:     "skincare",
			candidateText: "my skincare shelf",
			candidateTags: []string{"Skincare"},
			expected:      []string{"skincare"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			topics := MatchTopics(ExtractKeywords(tc.queryText), tc.candidateText, tc.candidateTags)

			require.LessOrEqual(t, len(topics), MaxSharedTopics)
			assert.Equal(t, tc.expected, topics)
		})
	}
}
