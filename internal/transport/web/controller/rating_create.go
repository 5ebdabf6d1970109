package controller

import (
	"encoding/json"
	"net/http"

	"github.com/platziflix/catalog/internal/command"
	"github.com/platziflix/catalog/internal/domain"
)

// ratingPayload is the request body for creating or updating a rating.
type ratingPayload struct {
	Rating int `json:"rating"`
}

type RatingCreate struct {
	SubmitCmd command.Command[command.SubmitRatingRequest, domain.Rating]
}

func (c RatingCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathInt64(r, "course_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var payload ratingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, r, domain.ValidationError{Message: "malformed request body"})
		return
	}

	rating, err := c.SubmitCmd.Execute(r.Context(), command.SubmitRatingRequest{
		CourseID: courseID,
		UserID:   domain.UserIDFromContext(r.Context()),
		Score:    payload.Rating,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, rating)
}
