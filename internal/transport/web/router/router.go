package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/glowcircle/askmatch/internal/command"
	"github.com/glowcircle/askmatch/internal/datasources"
	"github.com/glowcircle/askmatch/internal/transport/web/controller"
)

func MakeRouter(
	social datasources.SocialRepository,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	latestCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
	recommendUsersCmd *command.RecommendUsers,
	setFollowStateCmd *command.SetFollowState,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/posts", controller.PostsList{
		Lister:      social,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/recommendations", requireAuthMiddleware(controller.RecommendationsList{
		Command: recommendUsersCmd,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/{author_id}/follow/{following}", requireAuthMiddleware(controller.FollowSet{
		SetFollowCmd: setFollowStateCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Lister:          social,
			Profiles:        social,
			CacheMaxAge:     latestCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
