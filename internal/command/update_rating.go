package command

import (
	"context"
	"fmt"

	"github.com/platziflix/catalog/internal/datasources"
	"github.com/platziflix/catalog/internal/domain"
)

// UpdateRatingRequest is the request for the UpdateRating command. CallerID
// is the authenticated user; UserID is the rating owner named in the request
// path. The two must match.
type UpdateRatingRequest struct {
	CourseID int64
	UserID   int64
	CallerID int64
	Score    int
}

// UpdateRating mutates an existing active rating. Unlike SubmitRating it
// never creates one.
type UpdateRating struct {
	Courses datasources.CourseFetcher
	Ratings datasources.RatingUpdater
}

// NewUpdateRating creates a properly initialized UpdateRating command.
func NewUpdateRating(
	courses datasources.CourseFetcher,
	ratings datasources.RatingUpdater,
) *UpdateRating {
	return &UpdateRating{
		Courses: courses,
		Ratings: ratings,
	}
}

func (c *UpdateRating) Execute(ctx context.Context, req UpdateRatingRequest) (domain.Rating, error) {
	// Ownership is checked before score validity so a foreign caller always
	// sees a 403, never a validation failure.
	if req.CallerID != req.UserID {
		return domain.Rating{}, domain.ForbiddenError{
			Message: "ratings may only be updated by their owner",
		}
	}

	if !domain.ValidScore(req.Score) {
		return domain.Rating{}, domain.ValidationError{
			Message: fmt.Sprintf("rating must be an integer between %d and %d", domain.MinRatingScore, domain.MaxRatingScore),
		}
	}

	if _, err := c.Courses.FetchCourseByID(ctx, req.CourseID); err != nil {
		return domain.Rating{}, fmt.Errorf("fetching course: %w", err)
	}

	rating, err := c.Ratings.UpdateRating(ctx, req.CourseID, req.UserID, req.Score)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("updating rating: %w", err)
	}

	return rating, nil
}
