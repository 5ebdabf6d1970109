package controller

import (
	"net/http"
)

type Health struct{}

func (c Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
