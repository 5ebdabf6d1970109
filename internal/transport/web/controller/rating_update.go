package controller

import (
	"encoding/json"
	"net/http"

	"github.com/platziflix/catalog/internal/command"
	"github.com/platziflix/catalog/internal/domain"
)

type RatingUpdate struct {
	UpdateCmd command.Command[command.UpdateRatingRequest, domain.Rating]
}

func (c RatingUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var payload ratingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, r, domain.ValidationError{Message: "malformed request body"})
		return
	}

	rating, err := c.UpdateCmd.Execute(r.Context(), command.UpdateRatingRequest{
		CourseID: courseID,
		UserID:   userID,
		CallerID: domain.UserIDFromContext(r.Context()),
		Score:    payload.Rating,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, rating)
}
