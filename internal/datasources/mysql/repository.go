package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/huandu/go-sqlbuilder"

	"github.com/glowcircle/askmatch/internal/datasources"
	"github.com/glowcircle/askmatch/internal/domain"
)

var _ datasources.SocialRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// tagsSeparator joins a post's tags into a single column. Tags are
// normalized slugs, so a comma never appears inside one.
const tagsSeparator = ","

func (r *Repository) ListRecentPosts(
	ctx context.Context,
	excludeAuthorID string,
	window domain.PostWindow,
) ([]domain.Post, error) {
	sb := sqlbuilder.Select("author_id", "content", "tags", "created_at")
	sb.From("posts")

	conds := []string{
		sb.GreaterEqualThan("created_at", window.Since),
	}
	if excludeAuthorID != "" {
		conds = append(conds, sb.NotEqual("author_id", excludeAuthorID))
	}
	sb.Where(conds...)
	sb.OrderBy("created_at DESC")
	sb.Limit(window.Limit)

	query, args := sb.Build()
	return r.queryPosts(ctx, query, args)
}

func (r *Repository) ListLatestPosts(
	ctx context.Context,
	options domain.PostListOptions,
) ([]domain.Post, error) {
	sb := sqlbuilder.Select("author_id", "content", "tags", "created_at")
	sb.From("posts")
	sb.OrderBy("created_at DESC")
	sb.Offset((options.Page - 1) * options.PageSize)
	sb.Limit(options.PageSize)

	query, args := sb.Build()
	return r.queryPosts(ctx, query, args)
}

func (r *Repository) queryPosts(ctx context.Context, query string, args []interface{}) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running posts query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := []domain.Post{}
	for rows.Next() {
		var post domain.Post
		var tags sql.NullString
		if err := rows.Scan(&post.AuthorID, &post.Content, &tags, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning posts: %w", err)
		}
		post.Tags = splitTags(tags)
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) ListFollowedAuthors(
	ctx context.Context,
	viewerID string,
	authorIDs []string,
) (map[string]struct{}, error) {
	followed := make(map[string]struct{}, len(authorIDs))
	if len(authorIDs) == 0 {
		return followed, nil
	}

	sb := sqlbuilder.Select("author_id")
	sb.From("follows")
	sb.Where(
		sb.Equal("viewer_id", viewerID),
		sb.In("author_id", stringArgs(authorIDs)...),
	)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running followed authors query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var authorID string
		if err := rows.Scan(&authorID); err != nil {
			return nil, fmt.Errorf("scanning follows: %w", err)
		}
		followed[authorID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating follows: %w", err)
	}

	return followed, nil
}

func (r *Repository) SetFollowEdge(ctx context.Context, viewerID, authorID string, following bool) error {
	if following {
		ib := sqlbuilder.InsertIgnoreInto("follows")
		ib.Cols("viewer_id", "author_id")
		ib.Values(viewerID, authorID)

		query, args := ib.Build()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting follow edge: %w", err)
		}
		return nil
	}

	delb := sqlbuilder.DeleteFrom("follows")
	delb.Where(
		delb.Equal("viewer_id", viewerID),
		delb.Equal("author_id", authorID),
	)

	query, args := delb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting follow edge: %w", err)
	}
	return nil
}

func (r *Repository) FetchProfilesByID(
	ctx context.Context,
	authorIDs []string,
) (map[string]domain.Profile, error) {
	profiles := make(map[string]domain.Profile, len(authorIDs))
	if len(authorIDs) == 0 {
		return profiles, nil
	}

	sb := sqlbuilder.Select("author_id", "full_name", "avatar_url")
	sb.From("profiles")
	sb.Where(sb.In("author_id", stringArgs(authorIDs)...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running profiles query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var profile domain.Profile
		var avatarURL sql.NullString
		if err := rows.Scan(&profile.AuthorID, &profile.FullName, &avatarURL); err != nil {
			return nil, fmt.Errorf("scanning profiles: %w", err)
		}
		profile.AvatarURL = avatarURL.String
		profiles[profile.AuthorID] = profile
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}

	return profiles, nil
}

func splitTags(tags sql.NullString) []string {
	if !tags.Valid || tags.String == "" {
		return nil
	}
	return strings.Split(tags.String, tagsSeparator)
}

func stringArgs(values []string) []interface{} {
	args := make([]interface{}, 0, len(values))
	for _, v := range values {
		args = append(args, v)
	}
	return args
}
