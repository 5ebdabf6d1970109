package controller

import (
	"net/http"

	"github.com/platziflix/catalog/internal/datasources"
)

type TeacherGet struct {
	Fetcher datasources.TeacherFetcher
}

func (c TeacherGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	teacherID, err := pathInt64(r, "teacher_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	teacher, err := c.Fetcher.FetchTeacherByID(r.Context(), teacherID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, teacher)
}
