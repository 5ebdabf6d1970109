package controller

import (
	"net/http"

	"github.com/platziflix/catalog/internal/datasources"
)

type TeachersList struct {
	Lister datasources.TeacherLister
}

func (c TeachersList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	teachers, err := c.Lister.ListTeachers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, teachers)
}
