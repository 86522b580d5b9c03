package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"

	"github.com/glowcircle/askmatch/internal/datasources"
	"github.com/glowcircle/askmatch/internal/domain"
)

// questionTitleLimit truncates long questions for use as feed item titles.
const questionTitleLimit = 80

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.LatestPostLister
	Profiles        datasources.ProfileFetcher
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	feed := &feeds.Feed{
		Title:       "Community Questions",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of new questions asked in the community",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	posts, err := c.Lister.ListLatestPosts(ctx, domain.PostListOptions{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch posts for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	profiles := c.fetchAuthorNames(r, posts)

	for _, post := range posts {
		authorName := post.AuthorID
		if profile, ok := profiles[post.AuthorID]; ok {
			authorName = profile.FullName
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Id:          fmt.Sprintf("%s:%d", post.AuthorID, post.CreatedAt.Unix()),
			IsPermaLink: "false",
			Title:       truncateQuestion(post.Content),
			Description: post.Content,
			Author:      &feeds.Author{Name: authorName},
			Created:     post.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

// fetchAuthorNames resolves author display names, falling back to raw IDs if
// the profile store is unavailable.
func (c RSS) fetchAuthorNames(r *http.Request, posts []domain.Post) map[string]domain.Profile {
	seen := make(map[string]struct{}, len(posts))
	authorIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		if _, ok := seen[post.AuthorID]; ok {
			continue
		}
		seen[post.AuthorID] = struct{}{}
		authorIDs = append(authorIDs, post.AuthorID)
	}

	profiles, err := c.Profiles.FetchProfilesByID(r.Context(), authorIDs)
	if err != nil {
		logger := domain.LoggerFromContext(r.Context())
		logger.WarnContext(r.Context(), "unable to fetch author profiles for feed", "error", err)
		return nil
	}
	return profiles
}

func truncateQuestion(content string) string {
	runes := []rune(content)
	if len(runes) <= questionTitleLimit {
		return content
	}
	return string(runes[:questionTitleLimit]) + "…"
}
