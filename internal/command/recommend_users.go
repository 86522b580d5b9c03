package command

import (
	"context"
	"fmt"
	"time"

	"github.com/glowcircle/askmatch/internal/datasources"
	"github.com/glowcircle/askmatch/internal/domain"
)

// RecommendUsersConfig bounds the recent-activity corpus scanned per request
// and carries the ranking thresholds.
type RecommendUsersConfig struct {
	WindowDays    int
	MaxCandidates int
	Rank          domain.RankConfig
}

// RecommendUsersRequest is the request for the RecommendUsers command.
type RecommendUsersRequest struct {
	ViewerID  string
	QueryText string
}

// RecommendUsersResult carries the recommendations and the presentation
// state the discovery surface should adopt.
type RecommendUsersResult struct {
	Users []domain.RecommendedUser
	State domain.PresentationState
}

// RecommendUsers surfaces community members who recently asked questions
// similar to the viewer's query, annotated with the viewer's follow state.
//
// Every upstream fetch failure is absorbed as an empty collection: the
// visible effect is fewer or no recommendations, never an error to the
// caller.
type RecommendUsers struct {
	PostLister     datasources.RecentPostLister
	FollowLister   datasources.FollowedAuthorLister
	ProfileFetcher datasources.ProfileFetcher
	Config         RecommendUsersConfig

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewRecommendUsers creates a properly initialized RecommendUsers command.
func NewRecommendUsers(
	postLister datasources.RecentPostLister,
	followLister datasources.FollowedAuthorLister,
	profileFetcher datasources.ProfileFetcher,
	config RecommendUsersConfig,
) *RecommendUsers {
	return &RecommendUsers{
		PostLister:     postLister,
		FollowLister:   followLister,
		ProfileFetcher: profileFetcher,
		Config:         config,
		Now:            time.Now,
	}
}

func (c *RecommendUsers) Execute(ctx context.Context, req RecommendUsersRequest) (RecommendUsersResult, error) {
	logger := domain.LoggerFromContext(ctx)

	lifecycle := domain.NewDiscoveryLifecycle()
	if err := lifecycle.Begin(); err != nil {
		return RecommendUsersResult{}, fmt.Errorf("starting discovery request: %w", err)
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	window := domain.PostWindow{
		Since: now().AddDate(0, 0, -c.Config.WindowDays),
		Limit: c.Config.MaxCandidates,
	}

	posts, err := c.PostLister.ListRecentPosts(ctx, req.ViewerID, window)
	if err != nil {
		logger.WarnContext(ctx, "unable to fetch candidate posts, proceeding with none", "error", err)
		posts = nil
	}

	ranked := domain.RankCandidates(req.QueryText, posts, req.ViewerID, c.Config.Rank)
	if len(ranked) == 0 {
		if err := lifecycle.Complete(0); err != nil {
			return RecommendUsersResult{}, fmt.Errorf("completing discovery request: %w", err)
		}
		return RecommendUsersResult{State: lifecycle.State()}, nil
	}

	authorIDs := make([]string, 0, len(ranked))
	for _, candidate := range ranked {
		authorIDs = append(authorIDs, candidate.AuthorID)
	}

	profiles, err := c.ProfileFetcher.FetchProfilesByID(ctx, authorIDs)
	if err != nil {
		logger.WarnContext(ctx, "unable to fetch candidate profiles, dropping unresolved candidates", "error", err)
		profiles = nil
	}

	following, err := c.FollowLister.ListFollowedAuthors(ctx, req.ViewerID, authorIDs)
	if err != nil {
		logger.WarnContext(ctx, "unable to fetch follow state, annotating as not followed", "error", err)
		following = nil
	}

	users := domain.JoinFollowState(ranked, profiles, following)

	if err := lifecycle.Complete(len(users)); err != nil {
		return RecommendUsersResult{}, fmt.Errorf("completing discovery request: %w", err)
	}

	logger.DebugContext(ctx, "produced recommendations",
		"candidates", len(posts), "ranked", len(ranked), "recommended", len(users))

	return RecommendUsersResult{Users: users, State: lifecycle.State()}, nil
}
