package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/platziflix/catalog/internal/auth"
	"github.com/platziflix/catalog/internal/command"
	"github.com/platziflix/catalog/internal/datasources"
	"github.com/platziflix/catalog/internal/domain"
	"github.com/platziflix/catalog/internal/transport/web/controller"
)

type Config struct {
	Catalog  datasources.CatalogRepository
	Ratings  datasources.RatingRepository
	Issuer   auth.TokenIssuer
	DevToken bool

	RSSFeedBaseURL     string
	RSSFeedAuthorName  string
	RSSFeedAuthorEmail string

	CatalogCacheMaxAge time.Duration

	AuthMiddleware func(http.Handler) http.Handler

	SubmitRatingCmd command.Command[command.SubmitRatingRequest, domain.Rating]
	UpdateRatingCmd command.Command[command.UpdateRatingRequest, domain.Rating]
	DeleteRatingCmd command.Command[command.DeleteRatingRequest, command.Empty]
}

func MakeRouter(cfg Config) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(cfg.AuthMiddleware)

	r.Handle("/health", controller.Health{}).
		Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/courses", controller.CoursesList{
		Lister:      cfg.Catalog,
		CacheMaxAge: cfg.CatalogCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/courses/{course_id:[0-9]+}/ratings", controller.RatingsList{
		Courses: cfg.Catalog,
		Ratings: cfg.Ratings,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/courses/{course_id:[0-9]+}/ratings/stats", controller.RatingStatsGet{
		Courses: cfg.Catalog,
		Ratings: cfg.Ratings,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/courses/{course_id:[0-9]+}/ratings/user/{user_id}", controller.UserRatingGet{
		Courses: cfg.Catalog,
		Ratings: cfg.Ratings,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/courses/{course_id:[0-9]+}/ratings", requireAuthMiddleware(controller.RatingCreate{
		SubmitCmd: cfg.SubmitRatingCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/courses/{course_id:[0-9]+}/ratings/{user_id}", requireAuthMiddleware(controller.RatingUpdate{
		UpdateCmd: cfg.UpdateRatingCmd,
	})).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/courses/{course_id:[0-9]+}/ratings/{user_id}", requireAuthMiddleware(controller.RatingDelete{
		DeleteCmd: cfg.DeleteRatingCmd,
	})).Methods(http.MethodDelete, http.MethodOptions)

	r.Handle("/courses/{course_slug}", controller.CourseGet{
		Fetcher: cfg.Catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/courses/{course_slug}/classes/{class_id}", controller.ClassGet{
		Fetcher: cfg.Catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/teachers", controller.TeachersList{
		Lister: cfg.Catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/teachers/{teacher_id}", controller.TeacherGet{
		Fetcher: cfg.Catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	if cfg.DevToken {
		r.Handle("/auth/token", controller.TokenCreate{
			Issuer: cfg.Issuer,
		}).Methods(http.MethodPost, http.MethodOptions)
	}

	r.Handle("/rss", controller.RSS{
		FeedHostname:    cfg.RSSFeedBaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  cfg.RSSFeedAuthorName,
		FeedAuthorEmail: cfg.RSSFeedAuthorEmail,
		Lister:          cfg.Catalog,
		CacheMaxAge:     cfg.CatalogCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
