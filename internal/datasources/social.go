package datasources

import (
	"context"

	"github.com/glowcircle/askmatch/internal/domain"
)

// SocialRepository combines every collaborator the discovery pipeline reads
// from or writes to.
type SocialRepository interface {
	RecentPostLister
	LatestPostLister
	FollowedAuthorLister
	FollowEdgeSetter
	ProfileFetcher
}

// LatestPostLister pages through recent community posts for display surfaces.
type LatestPostLister interface {
	ListLatestPosts(ctx context.Context, options domain.PostListOptions) ([]domain.Post, error)
}

// RecentPostLister returns recent community posts authored by users other
// than excludeAuthorID, bounded by the given window.
type RecentPostLister interface {
	ListRecentPosts(ctx context.Context, excludeAuthorID string, window domain.PostWindow) ([]domain.Post, error)
}

// FollowedAuthorLister returns, from the given author IDs, the set the viewer
// already follows.
type FollowedAuthorLister interface {
	ListFollowedAuthors(ctx context.Context, viewerID string, authorIDs []string) (map[string]struct{}, error)
}

// FollowEdgeSetter sets or clears a single follow edge. The operation is
// idempotent: setting an existing edge or clearing a missing one is a no-op.
type FollowEdgeSetter interface {
	SetFollowEdge(ctx context.Context, viewerID, authorID string, following bool) error
}

// ProfileFetcher resolves display profiles for the given author IDs. Authors
// without a profile are absent from the result rather than an error.
type ProfileFetcher interface {
	FetchProfilesByID(ctx context.Context, authorIDs []string) (map[string]domain.Profile, error)
}

// NullSocialRepository is a null implementation of SocialRepository for
// running without a backing store.
type NullSocialRepository struct{}

var _ SocialRepository = NullSocialRepository{}

func (NullSocialRepository) ListRecentPosts(
	_ context.Context, _ string, _ domain.PostWindow,
) ([]domain.Post, error) {
	return nil, nil
}

func (NullSocialRepository) ListLatestPosts(
	_ context.Context, _ domain.PostListOptions,
) ([]domain.Post, error) {
	return nil, nil
}

func (NullSocialRepository) ListFollowedAuthors(
	_ context.Context, _ string, _ []string,
) (map[string]struct{}, error) {
	return nil, nil
}

func (NullSocialRepository) SetFollowEdge(_ context.Context, _, _ string, _ bool) error {
	return nil
}

func (NullSocialRepository) FetchProfilesByID(
	_ context.Context, _ []string,
) (map[string]domain.Profile, error) {
	return nil, nil
}
