package mysql

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowcircle/askmatch/internal/domain"
)

func setupTestDB(t *testing.T) *sql.DB {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}

	db, err := Connect(context.Background(), os.Getenv("MYSQL_URI"))
	if err != nil {
		t.Fatal(err)
	}

	seed := []struct {
		query string
		args  []interface{}
	}{
		{
			query: "INSERT INTO posts (author_id, content, tags, created_at) VALUES (?, ?, ?, ?)",
			args: []interface{}{
				"author-amara",
				"I fixed my damaged hair using natural oils and a trim",
				"haircare",
				time.Date(2025, 8, 20, 9, 30, 0, 0, time.UTC),
			},
		},
		{
			query: "INSERT INTO posts (author_id, content, tags, created_at) VALUES (?, ?, ?, ?)",
			args: []interface{}{
				"author-bianca",
				"What nail design matches my outfit?",
				"nails,design",
				time.Date(2025, 8, 22, 14, 0, 0, 0, time.UTC),
			},
		},
		{
			query: "INSERT INTO profiles (author_id, full_name, avatar_url) VALUES (?, ?, ?)",
			args:  []interface{}{"author-amara", "Amara Osei", "https://cdn.example/amara.png"},
		},
		{
			query: "INSERT INTO follows (viewer_id, author_id) VALUES (?, ?)",
			args:  []interface{}{"viewer-1", "author-amara"},
		},
	}

	for _, s := range seed {
		_, err := db.ExecContext(context.Background(), s.query, s.args...)
		require.NoError(t, err)
	}

	return db
}

func teardownTestDB(t *testing.T, db *sql.DB) {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}

	for _, table := range []string{"follows", "profiles", "posts"} {
		_, err := db.ExecContext(context.Background(), "DELETE FROM "+table)
		require.NoError(t, err)
	}

	require.NoError(t, db.Close())
}

func TestRepository_ListRecentPosts(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	repo := New(db)

	posts, err := repo.ListRecentPosts(context.Background(), "author-bianca", domain.PostWindow{
		Since: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Limit: 50,
	})
	require.NoError(t, err)

	require.Len(t, posts, 1)
	assert.Equal(t, "author-amara", posts[0].AuthorID)
	assert.Equal(t, []string{"haircare"}, posts[0].Tags)
}

func TestRepository_ListRecentPosts_WindowExcludesOld(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	repo := New(db)

	posts, err := repo.ListRecentPosts(context.Background(), "", domain.PostWindow{
		Since: time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC),
		Limit: 50,
	})
	require.NoError(t, err)

	require.Len(t, posts, 1)
	assert.Equal(t, "author-bianca", posts[0].AuthorID)
}

func TestRepository_FollowEdgeRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	repo := New(db)
	ctx := context.Background()

	followed, err := repo.ListFollowedAuthors(ctx, "viewer-1", []string{"author-amara", "author-bianca"})
	require.NoError(t, err)
	assert.Contains(t, followed, "author-amara")
	assert.NotContains(t, followed, "author-bianca")

	// Setting an existing edge is idempotent.
	require.NoError(t, repo.SetFollowEdge(ctx, "viewer-1", "author-amara", true))

	require.NoError(t, repo.SetFollowEdge(ctx, "viewer-1", "author-bianca", true))
	followed, err = repo.ListFollowedAuthors(ctx, "viewer-1", []string{"author-bianca"})
	require.NoError(t, err)
	assert.Contains(t, followed, "author-bianca")

	require.NoError(t, repo.SetFollowEdge(ctx, "viewer-1", "author-bianca", false))
	// Clearing a missing edge is a no-op.
	require.NoError(t, repo.SetFollowEdge(ctx, "viewer-1", "author-bianca", false))

	followed, err = repo.ListFollowedAuthors(ctx, "viewer-1", []string{"author-bianca"})
	require.NoError(t, err)
	assert.Empty(t, followed)
}

func TestRepository_FetchProfilesByID(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	repo := New(db)

	profiles, err := repo.FetchProfilesByID(context.Background(),
		[]string{"author-amara", "author-missing"})
	require.NoError(t, err)

	require.Len(t, profiles, 1)
	assert.Equal(t, "Amara Osei", profiles["author-amara"].FullName)
}

func TestRepository_EmptyIDLists(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	repo := New(db)
	ctx := context.Background()

	followed, err := repo.ListFollowedAuthors(ctx, "viewer-1", nil)
	require.NoError(t, err)
	assert.Empty(t, followed)

	profiles, err := repo.FetchProfilesByID(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
