package command

import (
	"context"
	"fmt"

	"github.com/glowcircle/askmatch/internal/datasources"
	"github.com/glowcircle/askmatch/internal/domain"
)

// SetFollowStateRequest is the request for the SetFollowState command.
// Recommended, when non-nil, is the viewer's currently displayed
// recommendation list; its follow annotation is updated in place.
type SetFollowStateRequest struct {
	ViewerID    string
	AuthorID    string
	Following   bool
	Recommended []domain.RecommendedUser
}

// SetFollowState toggles a single follow edge. The displayed annotation is
// updated before the mutation is issued; if the mutation fails the
// annotation is rolled back, so the surface never shows a follow state the
// store rejected.
type SetFollowState struct {
	EdgeSetter datasources.FollowEdgeSetter
}

// NewSetFollowState creates a properly initialized SetFollowState command.
func NewSetFollowState(edgeSetter datasources.FollowEdgeSetter) *SetFollowState {
	return &SetFollowState{EdgeSetter: edgeSetter}
}

func (c *SetFollowState) Execute(ctx context.Context, req SetFollowStateRequest) (Empty, error) {
	previous := annotateFollowState(req.Recommended, req.AuthorID, req.Following)

	if err := c.EdgeSetter.SetFollowEdge(ctx, req.ViewerID, req.AuthorID, req.Following); err != nil {
		annotateFollowState(req.Recommended, req.AuthorID, previous)
		return Empty{}, fmt.Errorf("setting follow edge: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "set follow state",
		"authorID", req.AuthorID, "following", req.Following)

	return Empty{}, nil
}

// annotateFollowState sets IsFollowing for the given author across the
// displayed recommendations and returns the prior value so a failed
// mutation can be compensated.
func annotateFollowState(recommended []domain.RecommendedUser, authorID string, following bool) bool {
	previous := !following
	for i := range recommended {
		if recommended[i].AuthorID != authorID {
			continue
		}
		previous = recommended[i].IsFollowing
		recommended[i].IsFollowing = following
	}
	return previous
}
