package domain

import (
	"sort"
)

// ScoredCandidate is an author surviving the similarity threshold, carrying
// the best-scoring post seen for them.
type ScoredCandidate struct {
	AuthorID               string   `json:"author_id"`
	BestScore              float64  `json:"best_score"`
	RepresentativeQuestion string   `json:"representative_question"`
	SharedTopics           []string `json:"shared_topics"`
}

// RankedCandidates is ordered by descending BestScore, ties broken by the
// order in which authors were first encountered among the candidate posts.
type RankedCandidates []ScoredCandidate

// RankConfig holds the candidate selection thresholds.
type RankConfig struct {
	// MinSimilarity is the score a post must strictly exceed for its author
	// to be considered.
	MinSimilarity float64

	// TopK is the maximum number of authors returned.
	TopK int
}

// DefaultRankConfig returns the standard thresholds for the discovery widget.
func DefaultRankConfig() RankConfig {
	return RankConfig{
		MinSimilarity: 0.3,
		TopK:          3,
	}
}

// RankCandidates aggregates per-author best similarity scores across the
// candidate posts and selects the top-K authors.
//
// Posts by excludeAuthorID and posts with empty content are skipped. For each
// author only the highest-scoring post is retained; a post that merely ties
// the retained one does not replace it, so output is stable in the input
// order. An empty result means no author cleared the threshold and the caller
// should suppress the recommendation surface entirely.
func RankCandidates(queryText string, posts []Post, excludeAuthorID string, cfg RankConfig) RankedCandidates {
	queryKeywords := ExtractKeywords(queryText)

	type bestPost struct {
		score float64
		post  Post
	}
	bestByAuthor := make(map[string]*bestPost)
	var authorOrder []string

	for _, post := range posts {
		if post.AuthorID == "" || post.AuthorID == excludeAuthorID || post.Content == "" {
			continue
		}

		score := SimilarityScore(queryText, post.Content, queryKeywords)
		if score <= cfg.MinSimilarity {
			continue
		}

		entry, ok := bestByAuthor[post.AuthorID]
		if !ok {
			bestByAuthor[post.AuthorID] = &bestPost{score: score, post: post}
			authorOrder = append(authorOrder, post.AuthorID)
			continue
		}
		if score > entry.score {
			entry.score = score
			entry.post = post
		}
	}

	ranked := make(RankedCandidates, 0, len(authorOrder))
	for _, authorID := range authorOrder {
		entry := bestByAuthor[authorID]
		ranked = append(ranked, ScoredCandidate{
			AuthorID:               authorID,
			BestScore:              entry.score,
			RepresentativeQuestion: entry.post.Content,
			SharedTopics:           MatchTopics(queryKeywords, entry.post.Content, entry.post.Tags),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].BestScore > ranked[j].BestScore
	})

	if cfg.TopK > 0 && len(ranked) > cfg.TopK {
		ranked = ranked[:cfg.TopK]
	}

	return ranked
}
