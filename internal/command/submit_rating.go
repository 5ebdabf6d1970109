package command

import (
	"context"
	"fmt"

	"github.com/platziflix/catalog/internal/datasources"
	"github.com/platziflix/catalog/internal/domain"
)

// SubmitRatingRequest is the request for the SubmitRating command.
type SubmitRatingRequest struct {
	CourseID int64
	UserID   int64
	Score    int
}

// SubmitRating creates the caller's rating for a course, or mutates the
// existing active one in place.
type SubmitRating struct {
	Courses datasources.CourseFetcher
	Ratings datasources.RatingUpserter
}

// NewSubmitRating creates a properly initialized SubmitRating command.
func NewSubmitRating(
	courses datasources.CourseFetcher,
	ratings datasources.RatingUpserter,
) *SubmitRating {
	return &SubmitRating{
		Courses: courses,
		Ratings: ratings,
	}
}

func (c *SubmitRating) Execute(ctx context.Context, req SubmitRatingRequest) (domain.Rating, error) {
	logger := domain.LoggerFromContext(ctx)

	if !domain.ValidScore(req.Score) {
		return domain.Rating{}, domain.ValidationError{
			Message: fmt.Sprintf("rating must be an integer between %d and %d", domain.MinRatingScore, domain.MaxRatingScore),
		}
	}

	if _, err := c.Courses.FetchCourseByID(ctx, req.CourseID); err != nil {
		return domain.Rating{}, fmt.Errorf("fetching course: %w", err)
	}

	rating, err := c.Ratings.UpsertRating(ctx, req.CourseID, req.UserID, req.Score)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("upserting rating: %w", err)
	}

	logger.DebugContext(ctx, "submitted rating",
		"course_id", req.CourseID, "user_id", req.UserID, "score", req.Score)

	return rating, nil
}
