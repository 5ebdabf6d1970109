package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/platziflix/catalog/internal/datasources"
	"github.com/platziflix/catalog/internal/domain"
)

type CourseGet struct {
	Fetcher datasources.CourseFetcher
}

func (c CourseGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["course_slug"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("course_slug", slug))

	course, err := c.Fetcher.FetchCourseBySlug(ctx, slug)
	if err != nil {
		writeError(w, r.WithContext(ctx), err)
		return
	}

	writeJSON(w, r, http.StatusOK, course)
}
