package domain

import (
	"sort"
	"strings"
)

// Weights for blending the two similarity sub-scores. Fixed design constants.
const (
	keywordWeight = 0.7
	lengthWeight  = 0.3
)

// MaxSharedTopics caps the number of shared topics shown per candidate.
const MaxSharedTopics = 3

// SimilarityScore computes a [0,1] similarity between a query and a candidate
// text. It blends the fraction of query keywords contained in the candidate
// text with the normalized closeness of the two raw text lengths.
//
// Keyword matching is case-insensitive substring containment rather than
// token-set intersection. This rewards partial and compound-word matches
// ("hair" matches "haircare") and is intentional; changing it would change
// recommendation outcomes.
func SimilarityScore(queryText, candidateText string, queryKeywords map[string]struct{}) float64 {
	lowered := strings.ToLower(candidateText)

	matched := 0
	for keyword := range queryKeywords {
		if strings.Contains(lowered, keyword) {
			matched++
		}
	}

	denominator := len(queryKeywords)
	if denominator < 1 {
		denominator = 1
	}
	keywordScore := float64(matched) / float64(denominator)

	return keywordWeight*keywordScore + lengthWeight*lengthCloseness(len(queryText), len(candidateText))
}

// lengthCloseness returns max(0, 1 - |a-b| / max(a,b)), treating two empty
// texts as identical.
func lengthCloseness(a, b int) float64 {
	longer := a
	if b > longer {
		longer = b
	}
	if longer == 0 {
		return 1
	}

	diff := a - b
	if diff < 0 {
		diff = -diff
	}

	closeness := 1 - float64(diff)/float64(longer)
	if closeness < 0 {
		return 0
	}
	return closeness
}

// MatchTopics derives the shared topics between a query and a candidate post:
// the union of query keywords and candidate tags, filtered to terms present
// (case-insensitive substring) in the candidate text, deduplicated preserving
// first-seen order, and capped at MaxSharedTopics.
//
// Keywords are visited in sorted order so output is deterministic for a given
// input; an empty result is a normal no-overlap outcome.
func MatchTopics(queryKeywords map[string]struct{}, candidateText string, candidateTags []string) []string {
	terms := make([]string, 0, len(queryKeywords)+len(candidateTags))
	terms = append(terms, sortedKeywords(queryKeywords)...)
	terms = append(terms, candidateTags...)

	lowered := strings.ToLower(candidateText)

	seen := make(map[string]struct{}, len(terms))
	var topics []string
	for _, term := range terms {
		key := strings.ToLower(term)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		if !strings.Contains(lowered, key) {
			continue
		}

		seen[key] = struct{}{}
		topics = append(topics, term)
		if len(topics) == MaxSharedTopics {
			break
		}
	}

	return topics
}

func sortedKeywords(keywords map[string]struct{}) []string {
	sorted := make([]string, 0, len(keywords))
	for keyword := range keywords {
		sorted = append(sorted, keyword)
	}
	sort.Strings(sorted)
	return sorted
}
