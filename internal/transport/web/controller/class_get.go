package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/platziflix/catalog/internal/datasources"
)

type ClassGet struct {
	Fetcher datasources.ClassFetcher
}

func (c ClassGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["course_slug"]

	classID, err := pathInt64(r, "class_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	class, err := c.Fetcher.FetchClass(r.Context(), slug, classID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, class)
}
