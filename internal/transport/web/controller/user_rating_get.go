package controller

import (
	"net/http"

	"github.com/platziflix/catalog/internal/datasources"
)

type UserRatingGet struct {
	Courses datasources.CourseFetcher
	Ratings datasources.RatingReader
}

func (c UserRatingGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathInt64(r, "course_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	userID, err := pathInt64(r, "user_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := c.Courses.FetchCourseByID(r.Context(), courseID); err != nil {
		writeError(w, r, err)
		return
	}

	rating, err := c.Ratings.GetRating(r.Context(), courseID, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// Absence is an expected state, not an error.
	if rating == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, r, http.StatusOK, rating)
}
