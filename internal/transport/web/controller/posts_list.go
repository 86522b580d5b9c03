package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/glowcircle/askmatch/internal/datasources"
	"github.com/glowcircle/askmatch/internal/domain"
)

type PostsList struct {
	Lister      datasources.LatestPostLister
	CacheMaxAge time.Duration
}

type PostsListResponse struct {
	Data []domain.Post `json:"data"`
}

func (c PostsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

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
		logger.ErrorContext(ctx, "unable to fetch posts", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(PostsListResponse{
		Data: posts,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write posts to response", "error", err)
	}
}
