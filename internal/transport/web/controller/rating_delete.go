package controller

import (
	"net/http"

	"github.com/platziflix/catalog/internal/command"
	"github.com/platziflix/catalog/internal/domain"
)

type RatingDelete struct {
	DeleteCmd command.Command[command.DeleteRatingRequest, command.Empty]
}

func (c RatingDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	_, err = c.DeleteCmd.Execute(r.Context(), command.DeleteRatingRequest{
		CourseID: courseID,
		UserID:   userID,
		CallerID: domain.UserIDFromContext(r.Context()),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
