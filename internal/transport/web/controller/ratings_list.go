package controller

import (
	"net/http"

	"github.com/platziflix/catalog/internal/datasources"
	"github.com/platziflix/catalog/internal/domain"
)

type RatingsList struct {
	Courses datasources.CourseFetcher
	Ratings datasources.RatingReader
}

func (c RatingsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathInt64(r, "course_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("course_id", courseID))
	r = r.WithContext(ctx)

	if _, err := c.Courses.FetchCourseByID(ctx, courseID); err != nil {
		writeError(w, r, err)
		return
	}

	ratings, err := c.Ratings.ListRatings(ctx, courseID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, ratings)
}
