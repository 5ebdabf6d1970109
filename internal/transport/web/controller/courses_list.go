package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/platziflix/catalog/internal/datasources"
	"github.com/platziflix/catalog/internal/domain"
)

type CoursesList struct {
	Lister      datasources.CourseLister
	CacheMaxAge time.Duration
}

func (c CoursesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	courses, err := c.Lister.ListCourses(r.Context())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list courses", "error", err)

		writeError(w, r, err)
		return
	}

	if c.CacheMaxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	writeJSON(w, r, http.StatusOK, courses)
}
