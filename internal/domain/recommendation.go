package domain

// Profile is the display profile resolved for a candidate author.
type Profile struct {
	AuthorID  string `json:"author_id"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

// RecommendedUser is the final presentation entity: a ranked candidate with
// their resolved profile and the viewer's follow state.
type RecommendedUser struct {
	AuthorID               string   `json:"author_id"`
	FullName               string   `json:"full_name"`
	AvatarURL              string   `json:"avatar_url"`
	BestScore              float64  `json:"best_score"`
	RepresentativeQuestion string   `json:"representative_question"`
	SharedTopics           []string `json:"shared_topics"`
	IsFollowing            bool     `json:"is_following"`
}

// JoinFollowState annotates ranked candidates with the viewer's follow state
// and resolved profiles, preserving the ranked order. Candidates without a
// resolved profile are dropped rather than failing the batch.
func JoinFollowState(
	ranked RankedCandidates,
	profiles map[string]Profile,
	following map[string]struct{},
) []RecommendedUser {
	users := make([]RecommendedUser, 0, len(ranked))
	for _, candidate := range ranked {
		profile, ok := profiles[candidate.AuthorID]
		if !ok {
			continue
		}

		_, isFollowing := following[candidate.AuthorID]
		users = append(users, RecommendedUser{
			AuthorID:               candidate.AuthorID,
			FullName:               profile.FullName,
			AvatarURL:              profile.AvatarURL,
			BestScore:              candidate.BestScore,
			RepresentativeQuestion: candidate.RepresentativeQuestion,
			SharedTopics:           candidate.SharedTopics,
			IsFollowing:            isFollowing,
		})
	}
	return users
}
