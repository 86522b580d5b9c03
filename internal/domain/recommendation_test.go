package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinFollowState(t *testing.T) {
	ranked := RankedCandidates{
		{AuthorID: "A", BestScore: 0.9, RepresentativeQuestion: "q1"},
		{AuthorID: "B", BestScore: 0.7, RepresentativeQuestion: "q2"},
		{AuthorID: "C", BestScore: 0.5, RepresentativeQuestion: "q3"},
	}
	profiles := map[string]Profile{
		"A": {AuthorID: "A", FullName: "Amara Osei", AvatarURL: "https://cdn.example/a.png"},
		"B": {AuthorID: "B", FullName: "Bianca Reyes", AvatarURL: "https://cdn.example/b.png"},
		"C": {AuthorID: "C", FullName: "Chloe Tan", AvatarURL: "https://cdn.example/c.png"},
	}

	users := JoinFollowState(ranked, profiles, map[string]struct{}{"B": {}})

	require.Len(t, users, 3)

	// Ranked order preserved.
	assert.Equal(t, "A", users[0].AuthorID)
	assert.Equal(t, "B", users[1].AuthorID)
	assert.Equal(t, "C", users[2].AuthorID)

	assert.False(t, users[0].IsFollowing)
	assert.True(t, users[1].IsFollowing)
	assert.False(t, users[2].IsFollowing)

	assert.Equal(t, "Amara Osei", users[0].FullName)
	assert.Equal(t, "q1", users[0].RepresentativeQuestion)
	assert.InDelta(t, 0.9, users[0].BestScore, 0.0001)
}

func TestJoinFollowState_MissingProfileDropped(t *testing.T) {
	ranked := RankedCandidates{
		{AuthorID: "A", BestScore: 0.9},
		{AuthorID: "B", BestScore: 0.7},
	}
	profiles := map[string]Profile{
		"B": {AuthorID: "B", FullName: "Bianca Reyes"},
	}

	users := JoinFollowState(ranked, profiles, nil)

	require.Len(t, users, 1)
	assert.Equal(t, "B", users[0].AuthorID)
}

func TestJoinFollowState_EmptyInputs(t *testing.T) {
	assert.Empty(t, JoinFollowState(nil, nil, nil))
	assert.Empty(t, JoinFollowState(RankedCandidates{{AuthorID: "A"}}, nil, nil))
}
