package app

import (
	"context"
	"fmt"

	"github.com/glowcircle/askmatch/internal/command"
	"github.com/glowcircle/askmatch/internal/datasources"
	"github.com/glowcircle/askmatch/internal/datasources/mysql"
	"github.com/glowcircle/askmatch/internal/transport/web/router"
	"github.com/glowcircle/askmatch/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	social, err := setupSocialRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up social repository: %w", err)
	}

	authMiddleware, err := router.SetupAuth0Middleware(
		MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
		MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
	)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	recommendUsersCmd := command.NewRecommendUsers(
		social,
		social,
		social,
		DefaultRecommendUsersConfig(),
	)

	setFollowStateCmd := command.NewSetFollowState(social)

	httpRouter, err := router.MakeRouter(
		social,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "POSTS_LATEST_CACHE_MAX_AGE"),
		authMiddleware,
		recommendUsersCmd,
		setFollowStateCmd,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
	}, nil
}

func setupSocialRepository(ctx context.Context) (datasources.SocialRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "SOCIAL_DRIVER"); driver {
	case "null":
		return datasources.NullSocialRepository{}, nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		return mysql.New(db), nil
	default:
		return nil, fmt.Errorf("unknown social driver [%s]", driver)
	}
}
