package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/platziflix/catalog/internal/auth"
	"github.com/platziflix/catalog/internal/command"
	"github.com/platziflix/catalog/internal/datasources/mysql"
	"github.com/platziflix/catalog/internal/transport/web/router"
	"github.com/platziflix/catalog/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	repo := mysql.New(db)

	issuer := auth.TokenIssuer{
		Secret: []byte(MustGetEnvAsString(ctx, "JWT_SECRET_KEY")),
		TTL:    MustGetEnvAsDuration(ctx, "JWT_ACCESS_TOKEN_TTL"),
	}

	submitRatingCmd := command.NewSubmitRating(repo, repo)
	updateRatingCmd := command.NewUpdateRating(repo, repo)
	deleteRatingCmd := command.NewDeleteRating(repo, repo)

	httpRouter, err := router.MakeRouter(router.Config{
		Catalog:  repo,
		Ratings:  repo,
		Issuer:   issuer,
		DevToken: MustGetEnvAsBoolean(ctx, "AUTH_DEV_TOKEN_ENABLED"),

		RSSFeedBaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		RSSFeedAuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		RSSFeedAuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),

		CatalogCacheMaxAge: MustGetEnvAsDuration(ctx, "CATALOG_CACHE_MAX_AGE"),

		AuthMiddleware: setupAuthMiddleware(issuer),

		SubmitRatingCmd: submitRatingCmd,
		UpdateRatingCmd: updateRatingCmd,
		DeleteRatingCmd: deleteRatingCmd,
	})
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

func setupAuthMiddleware(issuer auth.TokenIssuer) func(http.Handler) http.Handler {
	validators := []router.AuthValidator{
		router.NewJWTValidator(issuer),
	}
	return router.NewAuthMiddleware(validators)
}
